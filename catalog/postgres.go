// catalog/postgres.go
package catalog

import (
	"context"
	"fmt"
	"strconv"

	db "github.com/pranav244872/cvreview/db/sqlc"
	"github.com/pranav244872/cvreview/skillz"
	"github.com/sirupsen/logrus"
)

// Queries is the subset of the generated querier the catalog needs.
type Queries interface {
	ListAllSkills(ctx context.Context) ([]db.Skill, error)
	ListSkillsByCategory(ctx context.Context, category string) ([]db.Skill, error)
	CreateSkill(ctx context.Context, arg db.CreateSkillParams) (db.Skill, error)
	GetAllSkillAliases(ctx context.Context) ([]db.GetAllSkillAliasesRow, error)
}

// PostgresCatalog reads the reference catalog from the skills table.
type PostgresCatalog struct {
	queries Queries
	log     logrus.FieldLogger
}

// NewPostgresCatalog creates a catalog over the given queries.
func NewPostgresCatalog(queries Queries, log logrus.FieldLogger) *PostgresCatalog {
	return &PostgresCatalog{
		queries: queries,
		log:     log.WithField("component", "catalog"),
	}
}

var _ Catalog = (*PostgresCatalog)(nil)

////////////////////////////////////////////////////////////////////////
// Read Path
////////////////////////////////////////////////////////////////////////

// FetchAllSkills returns every skill in insertion order.
func (c *PostgresCatalog) FetchAllSkills(ctx context.Context) ([]skillz.Skill, error) {
	rows, err := c.queries.ListAllSkills(ctx)
	if err != nil {
		c.log.WithError(err).Error("Error fetching skills")
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	return fromRows(rows), nil
}

// ListByCategory returns the skills in one category, in insertion order.
func (c *PostgresCatalog) ListByCategory(ctx context.Context, category string) ([]skillz.Skill, error) {
	rows, err := c.queries.ListSkillsByCategory(ctx, category)
	if err != nil {
		c.log.WithError(err).WithField("category", category).Error("Error fetching skills by category")
		return nil, fmt.Errorf("failed to list skills in category '%s': %w", category, err)
	}
	return fromRows(rows), nil
}

// LoadAliasMap returns alias -> canonical skill name for the normalizer.
func (c *PostgresCatalog) LoadAliasMap(ctx context.Context) (map[string]string, error) {
	rows, err := c.queries.GetAllSkillAliases(ctx)
	if err != nil {
		c.log.WithError(err).Error("Error fetching skill aliases")
		return nil, fmt.Errorf("failed to list skill aliases: %w", err)
	}

	aliasMap := make(map[string]string, len(rows))
	for _, row := range rows {
		aliasMap[row.AliasName] = row.CanonicalName
	}
	return aliasMap, nil
}

////////////////////////////////////////////////////////////////////////
// Write Path
////////////////////////////////////////////////////////////////////////

// AddSkill inserts one skill and returns its new id.
func (c *PostgresCatalog) AddSkill(ctx context.Context, skill skillz.Skill) (string, error) {
	row, err := c.queries.CreateSkill(ctx, toCreateParams(skill))
	if err != nil {
		if db.ErrorCode(err) == db.UniqueViolation {
			return "", fmt.Errorf("failed to add skill '%s': %w", skill.Name, ErrDuplicateSkill)
		}
		c.log.WithError(err).WithField("skill", skill.Name).Error("Error adding skill")
		return "", fmt.Errorf("failed to add skill '%s': %w", skill.Name, err)
	}
	return strconv.FormatInt(row.ID, 10), nil
}

// AddSkills inserts each skill independently and reports how many succeeded.
// A failed insert is logged and does not stop the rest.
func (c *PostgresCatalog) AddSkills(ctx context.Context, skills []skillz.Skill) (int, error) {
	added := 0
	for _, skill := range skills {
		if err := ctx.Err(); err != nil {
			return added, err
		}
		if _, err := c.AddSkill(ctx, skill); err != nil {
			continue
		}
		added++
	}
	return added, nil
}
