// skillz/normalizer.go
package skillz

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

////////////////////////////////////////////////////////////////////////
// Alias Normalizer
////////////////////////////////////////////////////////////////////////

// Normalizer turns raw skill names (as extracted from a CV by the LLM) into
// canonical display names. Known aliases map to their canonical name, e.g.
// "golang" -> "Go"; everything else is title cased.
type Normalizer struct {
	aliasMap map[string]string // lowercase alias -> canonical name
	caser    cases.Caser       // unicode-correct title casing
}

// NewNormalizer creates a Normalizer. Alias keys are matched case-insensitively.
func NewNormalizer(aliasMap map[string]string) *Normalizer {
	lowered := make(map[string]string, len(aliasMap))
	for alias, canonical := range aliasMap {
		lowered[NormalizeName(alias)] = canonical
	}

	return &Normalizer{
		aliasMap: lowered,
		caser:    cases.Title(language.English),
	}
}

// Normalize returns the canonical, deduplicated names in first-seen order.
// Blank entries are dropped.
func (n *Normalizer) Normalize(rawSkills []string) []string {
	seen := make(map[string]struct{}, len(rawSkills))
	normalized := make([]string, 0, len(rawSkills))

	for _, raw := range rawSkills {
		lookup := NormalizeName(raw)
		if lookup == "" {
			continue
		}

		canonical, ok := n.aliasMap[lookup]
		if !ok {
			// Unknown skill: title case as the default formatting rule.
			canonical = n.caser.String(lookup)
		}

		key := strings.ToLower(canonical)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		normalized = append(normalized, canonical)
	}

	return normalized
}
