package urlid

import (
	"net/url"
	"strings"

	"urlshot/pkg/domain"
	"urlshot/pkg/serrors"
)

// Result is the outcome of anonymizing one URL. Identifiers is never nil and
// follows first-occurrence order; when it is empty, AnonymizedURL equals
// OriginalURL.
type Result struct {
	OriginalURL   string
	AnonymizedURL string
	Identifiers   []domain.Identifier
}

// Anonymize rewrites rawURL, replacing the raw span of every identifier with
// the configured placeholder. Replacement happens per query parameter and per
// path segment, so URL structure (delimiters, percent-encoding of untouched
// parts) is never corrupted. Spans can therefore not overlap; a duplicate
// raw value simply anonymizes everywhere it appears.
func (c *Codec) Anonymize(rawURL string, ids []domain.Identifier) (Result, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return Result{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid URL")
	}
	if ids == nil {
		ids = make([]domain.Identifier, 0)
	}

	res := Result{OriginalURL: rawURL, AnonymizedURL: rawURL, Identifiers: ids}
	if len(ids) == 0 {
		return res, nil
	}

	replacements := make(map[string]string, len(ids))
	for _, id := range ids {
		replacements[id.Raw] = id.Anonymized
	}

	// Rebuild the query preserving declaration order. Untouched parameters
	// keep their original encoded bytes.
	if u.RawQuery != "" {
		pairs := splitQuery(u.RawQuery)
		encoded := make([]string, 0, len(pairs))
		for _, p := range pairs {
			if repl, ok := replacements[p.value]; ok {
				encoded = append(encoded, p.raw[:strings.IndexByte(p.raw, '=')+1]+url.QueryEscape(repl))

				continue
			}
			encoded = append(encoded, p.raw)
		}
		u.RawQuery = strings.Join(encoded, "&")
	}

	// Path segments were scanned from the escaped path, so compare verbatim.
	if u.Path != "" {
		segs := strings.Split(u.EscapedPath(), "/")
		changed := false
		for i, seg := range segs {
			if repl, ok := replacements[seg]; ok {
				segs[i] = url.PathEscape(repl)
				changed = true
			}
		}
		if changed {
			u.RawPath = strings.Join(segs, "/")
			if unescaped, err := url.PathUnescape(u.RawPath); err == nil {
				u.Path = unescaped
			}
		}
	}

	res.AnonymizedURL = u.String()

	return res, nil
}

// ExpandDecoded returns rawURL with every identifier's raw span replaced by
// its decoded value. This is a display variant of the URL; it makes no
// attempt at re-encoding and mirrors what a human would read.
func ExpandDecoded(rawURL string, ids []domain.Identifier) string {
	out := rawURL
	for _, id := range ids {
		if id.Decoded == "" {
			continue
		}
		out = strings.ReplaceAll(out, id.Raw, id.Decoded)
	}

	return out
}
