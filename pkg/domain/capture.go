package domain

import (
	"time"

	"github.com/google/uuid"
)

// CaptureID uniquely identifies a processed capture request.
// It wraps uuid.UUID to provide type safety at the domain layer.
type CaptureID uuid.UUID

// String returns the canonical UUID form.
func (id CaptureID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes the ID in its canonical UUID form.
func (id CaptureID) MarshalText() ([]byte, error) {
	return []byte(uuid.UUID(id).String()), nil
}

// UnmarshalText parses an ID from its canonical UUID form.
func (id *CaptureID) UnmarshalText(b []byte) error {
	u, err := uuid.Parse(string(b))
	if err != nil {
		return err //nolint: wrapcheck
	}
	*id = CaptureID(u)

	return nil
}

// CaptureStatus is the terminal outcome of a capture request.
type CaptureStatus string

const (
	// CaptureStatusSuccess indicates the full pipeline completed, including
	// both screenshots.
	CaptureStatusSuccess CaptureStatus = "success"
	// CaptureStatusError indicates the pipeline terminated early or a
	// screenshot failed; Message carries the reason. URL analysis computed
	// before the failure is still present.
	CaptureStatusError CaptureStatus = "error"
)

// TerminateReason explains why the redirect crawler stopped.
type TerminateReason string

const (
	// ReasonResolvedNonRedirect means a non-3xx response was reached.
	ReasonResolvedNonRedirect TerminateReason = "resolved"
	// ReasonMaxHopsExceeded means the hop limit was hit or a redirect cycle
	// was detected.
	ReasonMaxHopsExceeded TerminateReason = "max_hops_exceeded"
	// ReasonTimeout means a per-hop request exceeded its deadline.
	ReasonTimeout TerminateReason = "timeout"
	// ReasonNetworkError means a connection or DNS failure ended the crawl.
	ReasonNetworkError TerminateReason = "network_error"
)

// RedirectChain records the URLs visited while resolving redirects.
// Steps always starts with the URL the crawl began at; FinalURL is the last
// URL that was successfully resolved.
type RedirectChain struct {
	Steps    []string        `json:"steps"`
	FinalURL string          `json:"finalUrl"`
	Reason   TerminateReason `json:"terminatedReason"`
}

// Hops returns the number of redirects that were followed.
func (c RedirectChain) Hops() int {
	if len(c.Steps) == 0 {
		return 0
	}

	return len(c.Steps) - 1
}

// Capture is the complete result record for one screenshot request. It is
// assembled once by the pipeline, immutable afterwards, and is the unit
// handed back across the system boundary.
type Capture struct {
	// ID is the unique identifier of the capture.
	ID CaptureID `json:"id"`

	// OriginalURL is the URL exactly as submitted.
	OriginalURL string `json:"originalUrl"`
	// AnonymizedURL is OriginalURL with every sensitive span replaced by the
	// placeholder token.
	AnonymizedURL string `json:"anonymizedUrl"`
	// DecodedURL is OriginalURL with every encoded span replaced by its
	// decoded value.
	DecodedURL string `json:"decodedUrl"`
	// FinalURL is where the redirect chain ended up.
	FinalURL string `json:"finalUrl"`

	// RedirectChain lists all URLs visited while resolving redirects.
	RedirectChain RedirectChain `json:"redirectChain"`
	// Identifiers holds the sensitive values found in the URL, in first
	// occurrence order.
	Identifiers []Identifier `json:"identifiers"`

	// OriginalScreenshot is the PNG of the anonymized URL, base64-encoded.
	// Empty when the capture did not happen or failed.
	OriginalScreenshot string `json:"originalScreenshot,omitempty"`
	// FinalScreenshot is the PNG of the final URL, base64-encoded. Empty when
	// the final URL equals the original or its capture failed.
	FinalScreenshot string `json:"finalScreenshot,omitempty"`

	// Status is "success" or "error".
	Status CaptureStatus `json:"status"`
	// Message describes the failure when Status is "error".
	Message string `json:"message,omitempty"`

	// CreatedAt is when the capture request was processed.
	CreatedAt time.Time `json:"createdAt"`
}
