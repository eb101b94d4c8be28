// skillz/matcher.go
package skillz

import (
	"context"
	"sort"
)

////////////////////////////////////////////////////////////////////////
// Catalog Contract
////////////////////////////////////////////////////////////////////////

// Catalog is the read side of the reference skill catalog.
// Implementations are responsible for logging their own failures; the
// Matcher only decides what a failure means for the caller.
type Catalog interface {
	FetchAllSkills(ctx context.Context) ([]Skill, error)
}

////////////////////////////////////////////////////////////////////////
// Matcher
////////////////////////////////////////////////////////////////////////

// GapResult is the tagged outcome of a skill-gap analysis.
// Missing is never nil. When Err is set the catalog could not be read and
// Missing is empty.
type GapResult struct {
	Missing []Skill
	Err     error
}

// Matcher computes which catalog skills a candidate does not have yet.
type Matcher struct {
	catalog Catalog
}

// NewMatcher creates a Matcher reading from the given catalog.
func NewMatcher(catalog Catalog) *Matcher {
	return &Matcher{catalog: catalog}
}

// FindMissingSkills returns the catalog skills whose normalized name is not
// among currentSkills, highest priority first. A catalog failure yields an
// empty list, so "nothing missing" and "catalog unavailable" look the same
// here; use Analyze to tell them apart.
func (m *Matcher) FindMissingSkills(ctx context.Context, currentSkills []string) []Skill {
	return m.Analyze(ctx, currentSkills).Missing
}

// Analyze is FindMissingSkills with the catalog error preserved.
func (m *Matcher) Analyze(ctx context.Context, currentSkills []string) GapResult {
	// 1. Build a set of what the candidate already has.
	have := make(map[string]struct{}, len(currentSkills))
	for _, skill := range currentSkills {
		have[NormalizeName(skill)] = struct{}{}
	}

	// 2. Read the whole catalog.
	all, err := m.catalog.FetchAllSkills(ctx)
	if err != nil {
		return GapResult{Missing: []Skill{}, Err: err}
	}

	// 3. Keep every record the candidate does not have.
	missing := make([]Skill, 0, len(all))
	for _, skill := range all {
		if _, ok := have[NormalizeName(skill.Name)]; !ok {
			missing = append(missing, skill)
		}
	}

	// 4. Highest priority first, catalog order among equals.
	SortByPriority(missing)

	return GapResult{Missing: missing}
}

// SortByPriority sorts skills in place by priority, descending.
// The sort is stable so equal priorities keep their relative order.
func SortByPriority(skills []Skill) {
	sort.SliceStable(skills, func(i, j int) bool {
		return skills[i].PriorityValue() > skills[j].PriorityValue()
	})
}
