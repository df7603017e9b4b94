// Package urlid detects, decodes and anonymizes sensitive identifiers that
// are embedded in URLs as base64-encoded spans. Detection covers query
// parameter values (in declaration order) and path segments (left to right);
// classification of decoded text is driven by an ordered rule table.
package urlid

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"urlshot/pkg/domain"
	"urlshot/pkg/serrors"
)

const (
	// DefaultMinCandidateLength is the minimum encoded length for a span to
	// be considered a base64 candidate. Shorter spans are overwhelmingly
	// false positives.
	DefaultMinCandidateLength = 8

	// DefaultPlaceholder is the literal written into anonymized URLs in
	// place of each sensitive span. It is deliberately plain text: it never
	// classifies as an email or phone, so anonymization is idempotent.
	DefaultPlaceholder = "anonymized_value"
)

// Options configure span detection and anonymization.
type Options struct {
	// MinCandidateLength is the minimum encoded span length considered.
	// Zero means DefaultMinCandidateLength.
	MinCandidateLength int
	// Placeholder replaces each sensitive span in the anonymized URL.
	// Empty means DefaultPlaceholder.
	Placeholder string
}

// Codec scans URLs for base64-encoded identifiers and rewrites them.
// It is stateless and safe for concurrent use.
type Codec struct {
	minLen      int
	placeholder string
}

// New constructs a Codec, applying defaults for zero option values.
func New(opts Options) *Codec {
	if opts.MinCandidateLength <= 0 {
		opts.MinCandidateLength = DefaultMinCandidateLength
	}
	if opts.Placeholder == "" {
		opts.Placeholder = DefaultPlaceholder
	}

	return &Codec{minLen: opts.MinCandidateLength, placeholder: opts.Placeholder}
}

// Scan extracts identifiers from rawURL in first-occurrence order: query
// parameter values in declaration order, then non-empty path segments left
// to right. Spans that decode to non-text bytes or that are not plausible
// base64 are silently skipped; that is a normal outcome, not an error.
func (c *Codec) Scan(rawURL string) ([]domain.Identifier, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid URL")
	}

	ids := make([]domain.Identifier, 0)

	for _, p := range splitQuery(u.RawQuery) {
		if id, ok := c.analyze(p.value); ok {
			ids = append(ids, id)
		}
	}

	for _, seg := range strings.Split(u.EscapedPath(), "/") {
		// Segments containing a dot are almost always file names.
		if seg == "" || strings.Contains(seg, ".") {
			continue
		}
		if id, ok := c.analyze(seg); ok {
			ids = append(ids, id)
		}
	}

	return ids, nil
}

// analyze decides whether span is a base64-encoded identifier and builds the
// Identifier record for it.
func (c *Codec) analyze(span string) (domain.Identifier, bool) {
	if !c.isCandidate(span) {
		return domain.Identifier{}, false
	}

	decoded, ok := decodeBase64(span)
	if !ok {
		return domain.Identifier{}, false
	}
	text, ok := decodedText(decoded)
	if !ok {
		// Valid base64, but the payload is not text. Discard rather than
		// surface binary noise as an identifier.
		return domain.Identifier{}, false
	}

	return domain.Identifier{
		Raw:        span,
		Decoded:    text,
		Kind:       Classify(text),
		Anonymized: c.placeholder,
	}, true
}

// isCandidate applies the cheap structural checks before any decode attempt:
// minimum length, padding-aware length validity and base64 alphabet
// membership (standard or URL-safe).
func (c *Codec) isCandidate(span string) bool {
	if len(span) < c.minLen {
		return false
	}

	padded := strings.Contains(span, "=")
	if padded && len(span)%4 != 0 {
		return false
	}
	// An unpadded base64 string can never have length 1 mod 4.
	if !padded && len(span)%4 == 1 {
		return false
	}

	seenPad := false
	for _, r := range span {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		case r == '+' || r == '/' || r == '-' || r == '_':
		case r == '=':
			seenPad = true

			continue
		default:
			return false
		}
		// Padding only occurs at the end.
		if seenPad {
			return false
		}
	}

	return true
}

// decodeBase64 attempts the standard alphabet first, then the URL-safe
// variant, each with and without padding.
func decodeBase64(span string) ([]byte, bool) {
	encodings := []*base64.Encoding{
		base64.StdEncoding,
		base64.RawStdEncoding,
		base64.URLEncoding,
		base64.RawURLEncoding,
	}
	for _, enc := range encodings {
		if b, err := enc.DecodeString(span); err == nil {
			return b, true
		}
	}

	return nil, false
}

// decodedText reports whether b is valid, printable UTF-8 text and returns it.
func decodedText(b []byte) (string, bool) {
	if len(b) == 0 || !utf8.Valid(b) {
		return "", false
	}
	s := string(b)
	for _, r := range s {
		if !unicode.IsPrint(r) && r != '\t' {
			return "", false
		}
	}

	return s, true
}

// queryPair is one key=value entry from a raw query string. raw is the
// original encoded fragment, preserved so that untouched parameters survive
// URL reconstruction byte for byte.
type queryPair struct {
	raw   string
	key   string
	value string
}

// splitQuery parses rawQuery preserving parameter declaration order, which
// url.Values discards.
func splitQuery(rawQuery string) []queryPair {
	if rawQuery == "" {
		return nil
	}

	parts := strings.Split(rawQuery, "&")
	pairs := make([]queryPair, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		k, v, _ := strings.Cut(part, "=")
		key, err := url.QueryUnescape(k)
		if err != nil {
			key = k
		}
		value, err := url.QueryUnescape(v)
		if err != nil {
			value = v
		}
		pairs = append(pairs, queryPair{raw: part, key: key, value: value})
	}

	return pairs
}

// String implements fmt.Stringer for debugging.
func (p queryPair) String() string {
	return fmt.Sprintf("%s=%s", p.key, p.value)
}
