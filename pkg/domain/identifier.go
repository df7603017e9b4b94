package domain

// IdentifierKind classifies the decoded text of an identifier.
type IdentifierKind string

const (
	// KindEmail marks decoded text matching an email address shape.
	KindEmail IdentifierKind = "email"
	// KindPhone marks decoded text matching a phone number shape.
	KindPhone IdentifierKind = "phone"
	// KindGeneric marks decoded printable text that matched no specific
	// pattern but is still treated as a secret.
	KindGeneric IdentifierKind = "generic"
	// KindUnrecognized marks a span that decoded but whose content could not
	// be classified as text.
	KindUnrecognized IdentifierKind = "unrecognized"
)

// Identifier is a decoded, classified sensitive value found inside a URL.
// It is immutable once built by the codec.
type Identifier struct {
	// Raw is the base64 span exactly as it appeared in the URL.
	Raw string `json:"value"`
	// Decoded is the UTF-8 text the span decoded to. Empty when the span
	// decoded to non-text bytes.
	Decoded string `json:"decodedValue,omitempty"`
	// Kind is the classification of Decoded.
	Kind IdentifierKind `json:"kind"`
	// Anonymized is the replacement written into the anonymized URL.
	Anonymized string `json:"anonymizedValue"`
}
