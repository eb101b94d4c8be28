// Package catalog provides the reference skill catalog backing the skill-gap
// matcher: a PostgreSQL implementation for production and an in-memory one
// for tests and local runs.
package catalog

import (
	"context"
	"errors"

	"github.com/pranav244872/cvreview/skillz"
)

// ErrDuplicateSkill is returned when adding a skill whose normalized name is
// already in the catalog.
var ErrDuplicateSkill = errors.New("skill already exists")

// Catalog is the full catalog surface used by the API: the read contract the
// matcher depends on plus the admin write path.
type Catalog interface {
	skillz.Catalog
	ListByCategory(ctx context.Context, category string) ([]skillz.Skill, error)
	AddSkill(ctx context.Context, skill skillz.Skill) (string, error)
	AddSkills(ctx context.Context, skills []skillz.Skill) (int, error)
}

// BestEffort reads the whole catalog and returns an empty, non-nil list if
// the read fails. Callers that need to tell "empty" from "unavailable" should
// call FetchAllSkills directly.
func BestEffort(ctx context.Context, c skillz.Catalog) []skillz.Skill {
	skills, err := c.FetchAllSkills(ctx)
	if err != nil || skills == nil {
		return []skillz.Skill{}
	}
	return skills
}
