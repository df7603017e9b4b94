package urlid

import (
	"regexp"

	"urlshot/pkg/domain"
)

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+`)
	phonePattern = regexp.MustCompile(`^\+?\d[\d ().-]{7,}\d$`)
)

// classifyRule pairs an identifier kind with its match predicate. Rules are
// evaluated in order; the first match wins. New kinds are added by extending
// this table.
type classifyRule struct {
	kind  domain.IdentifierKind
	match func(string) bool
}

var classifyRules = []classifyRule{ //nolint: gochecknoglobals
	{kind: domain.KindEmail, match: emailPattern.MatchString},
	{kind: domain.KindPhone, match: phonePattern.MatchString},
}

// Classify maps decoded text to an identifier kind. Text matching no rule is
// KindGeneric: it decoded to printable text inside a URL, which is treated
// as a secret of unknown shape.
func Classify(text string) domain.IdentifierKind {
	for _, r := range classifyRules {
		if r.match(text) {
			return r.kind
		}
	}

	return domain.KindGeneric
}
