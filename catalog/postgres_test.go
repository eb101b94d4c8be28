package catalog

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	db "github.com/pranav244872/cvreview/db/sqlc"
	"github.com/pranav244872/cvreview/skillz"
	"github.com/pranav244872/cvreview/util"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

////////////////////////////////////////////////////////////////////////
// Mock Queries
////////////////////////////////////////////////////////////////////////

type mockQueries struct {
	rows    []db.Skill
	aliases []db.GetAllSkillAliasesRow
	err     error
	created []db.CreateSkillParams
	failOn  string // CreateSkill fails for this name

	createErr error
}

func (m *mockQueries) ListAllSkills(ctx context.Context) ([]db.Skill, error) {
	return m.rows, m.err
}

func (m *mockQueries) ListSkillsByCategory(ctx context.Context, category string) ([]db.Skill, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []db.Skill{}
	for _, r := range m.rows {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockQueries) CreateSkill(ctx context.Context, arg db.CreateSkillParams) (db.Skill, error) {
	if m.createErr != nil {
		return db.Skill{}, m.createErr
	}
	if arg.Name == m.failOn {
		return db.Skill{}, errors.New("duplicate key value violates unique constraint")
	}
	m.created = append(m.created, arg)
	return db.Skill{ID: int64(len(m.created)), Name: arg.Name, Category: arg.Category}, nil
}

func (m *mockQueries) GetAllSkillAliases(ctx context.Context) ([]db.GetAllSkillAliasesRow, error) {
	return m.aliases, m.err
}

func quietLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

////////////////////////////////////////////////////////////////////////

func TestPostgresCatalogFetchAllSkills(t *testing.T) {
	q := &mockQueries{rows: []db.Skill{
		{
			ID:           1,
			Name:         "Go",
			Category:     "Programming Language",
			SkillUrl:     pgtype.Text{String: "https://go.dev/tour", Valid: true},
			Priority:     pgtype.Int4{Int32: 9, Valid: true},
			JobTags:      []string{"Backend Developer"},
			TimeLearning: pgtype.Int4{Int32: 40, Valid: true},
		},
		{ID: 2, Name: "Scrum", Category: "Methodology"},
	}}
	c := NewPostgresCatalog(q, quietLogger())

	skills, err := c.FetchAllSkills(context.Background())
	require.NoError(t, err)
	require.Len(t, skills, 2)

	require.Equal(t, "1", skills[0].ID)
	require.Equal(t, "https://go.dev/tour", skills[0].SkillURL)
	require.Equal(t, 9, skills[0].PriorityValue())
	require.Equal(t, 40, *skills[0].TimeLearning)
	require.Equal(t, []string{"Backend Developer"}, skills[0].JobTags)

	require.Nil(t, skills[1].Priority)
	require.Nil(t, skills[1].TimeLearning)
	require.Empty(t, skills[1].SkillURL)
}

func TestPostgresCatalogFailure(t *testing.T) {
	q := &mockQueries{err: errors.New("connection refused")}
	c := NewPostgresCatalog(q, quietLogger())

	_, err := c.FetchAllSkills(context.Background())
	require.ErrorIs(t, err, q.err)

	_, err = c.ListByCategory(context.Background(), "Database")
	require.ErrorIs(t, err, q.err)

	_, err = c.LoadAliasMap(context.Background())
	require.ErrorIs(t, err, q.err)

	require.NotNil(t, BestEffort(context.Background(), c))
	require.Empty(t, BestEffort(context.Background(), c))
}

func TestPostgresCatalogListByCategory(t *testing.T) {
	q := &mockQueries{rows: []db.Skill{
		{ID: 1, Name: "SQL", Category: "Database"},
		{ID: 2, Name: "Git", Category: "Version Control"},
		{ID: 3, Name: "MongoDB", Category: "Database"},
	}}
	c := NewPostgresCatalog(q, quietLogger())

	skills, err := c.ListByCategory(context.Background(), "Database")
	require.NoError(t, err)
	require.Len(t, skills, 2)
	require.Equal(t, "SQL", skills[0].Name)
	require.Equal(t, "MongoDB", skills[1].Name)
}

func TestPostgresCatalogAddSkills(t *testing.T) {
	q := &mockQueries{failOn: "Git"}
	c := NewPostgresCatalog(q, quietLogger())

	added, err := c.AddSkills(context.Background(), []skillz.Skill{
		{Name: "SQL", Category: "Database", Priority: util.Ptr(9)},
		{Name: "Git", Category: "Version Control"},
		{Name: "Docker", Category: "DevOps"},
	})
	require.NoError(t, err)
	require.Equal(t, 2, added)
	require.Len(t, q.created, 2)

	// Optional fields become NULL, array columns become empty arrays.
	require.Equal(t, int32(9), q.created[0].Priority.Int32)
	require.True(t, q.created[0].Priority.Valid)
	require.False(t, q.created[1].Priority.Valid)
	require.False(t, q.created[1].SkillUrl.Valid)
	require.NotNil(t, q.created[1].JobTags)
	require.NotNil(t, q.created[1].RelatedTools)
}

func TestPostgresCatalogAddSkillDuplicate(t *testing.T) {
	q := &mockQueries{createErr: &pgconn.PgError{Code: db.UniqueViolation}}
	c := NewPostgresCatalog(q, quietLogger())

	_, err := c.AddSkill(context.Background(), skillz.Skill{Name: "SQL", Category: "Database"})
	require.ErrorIs(t, err, ErrDuplicateSkill)
}

func TestPostgresCatalogLoadAliasMap(t *testing.T) {
	q := &mockQueries{aliases: []db.GetAllSkillAliasesRow{
		{AliasName: "js", CanonicalName: "JavaScript"},
		{AliasName: "javascript", CanonicalName: "JavaScript"},
	}}
	c := NewPostgresCatalog(q, quietLogger())

	aliasMap, err := c.LoadAliasMap(context.Background())
	require.NoError(t, err)
	require.Equal(t, map[string]string{"js": "JavaScript", "javascript": "JavaScript"}, aliasMap)
}
