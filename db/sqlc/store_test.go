package db

import (
	"context"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pranav244872/cvreview/util"
	"github.com/stretchr/testify/require"
)

////////////////////////////////////////////////////////////////////////

func TestSeedSkillsTx(t *testing.T) {
	requireDB(t)
	store := NewStore(testPool)

	name := util.RandomSkillName()
	alias := strings.ToLower(util.RandomString(8))
	arg := SeedSkillsTxParams{
		Skills: []SeedSkill{{
			Skill: UpsertSkillParams{
				Name:         name,
				Category:     util.RandomCategory(),
				Priority:     pgtype.Int4{Int32: 9, Valid: true},
				JobTags:      []string{"backend"},
				RelatedTools: []string{},
			},
			Aliases: []string{alias},
		}},
	}

	result, err := store.SeedSkillsTx(context.Background(), arg)
	require.NoError(t, err)
	require.Len(t, result.Skills, 1)
	require.Equal(t, 2, result.Aliases)
	t.Cleanup(func() {
		_ = testQueries.DeleteSkill(context.Background(), result.Skills[0].ID)
	})

	// Seeding again is a no-op on identity.
	again, err := store.SeedSkillsTx(context.Background(), arg)
	require.NoError(t, err)
	require.Equal(t, result.Skills[0].ID, again.Skills[0].ID)

	rows, err := testQueries.GetAllSkillAliases(context.Background())
	require.NoError(t, err)

	aliases := map[string]string{}
	for _, r := range rows {
		aliases[r.AliasName] = r.CanonicalName
	}
	require.Equal(t, name, aliases[alias])
	require.Equal(t, name, aliases[strings.ToLower(name)])
}

////////////////////////////////////////////////////////////////////////

func TestSeedSkillsTxRollsBack(t *testing.T) {
	requireDB(t)
	store := NewStore(testPool)

	before, err := testQueries.CountSkills(context.Background())
	require.NoError(t, err)

	// The second entry has a nil job_tags slice, which violates NOT NULL.
	_, err = store.SeedSkillsTx(context.Background(), SeedSkillsTxParams{
		Skills: []SeedSkill{
			{Skill: UpsertSkillParams{Name: util.RandomSkillName(), Category: "DevOps", JobTags: []string{}, RelatedTools: []string{}}},
			{Skill: UpsertSkillParams{Name: util.RandomSkillName(), Category: "DevOps"}},
		},
	})
	require.Error(t, err)

	after, err := testQueries.CountSkills(context.Background())
	require.NoError(t, err)
	require.Equal(t, before, after)
}
