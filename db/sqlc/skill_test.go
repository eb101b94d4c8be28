package db

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pranav244872/cvreview/util"
	"github.com/stretchr/testify/require"
)

////////////////////////////////////////////////////////////////////////

func createRandomSkill(t *testing.T) Skill {
	arg := CreateSkillParams{
		Name:            util.RandomSkillName(),
		Category:        util.RandomCategory(),
		SkillUrl:        pgtype.Text{String: util.RandomURL(), Valid: true},
		Description:     pgtype.Text{String: util.RandomString(20), Valid: true},
		Priority:        pgtype.Int4{Int32: int32(util.RandomInt(1, 10)), Valid: true},
		JobTags:         []string{"frontend"},
		DifficultyLevel: pgtype.Text{String: util.RandomDifficulty(), Valid: true},
		RelatedTools:    []string{},
		TimeLearning:    pgtype.Int4{Int32: int32(util.RandomInt(1, 200)), Valid: true},
	}

	skill, err := testQueries.CreateSkill(context.Background(), arg)
	require.NoError(t, err)
	require.NotEmpty(t, skill)

	require.NotZero(t, skill.ID)
	require.Equal(t, arg.Name, skill.Name)
	require.Equal(t, arg.Category, skill.Category)
	require.Equal(t, arg.Priority, skill.Priority)
	require.Equal(t, arg.JobTags, skill.JobTags)
	require.True(t, skill.CreatedAt.Valid)

	t.Cleanup(func() {
		_ = testQueries.DeleteSkill(context.Background(), skill.ID)
	})

	return skill
}

////////////////////////////////////////////////////////////////////////

func TestCreateSkill(t *testing.T) {
	requireDB(t)
	createRandomSkill(t)
}

////////////////////////////////////////////////////////////////////////

func TestGetSkill(t *testing.T) {
	requireDB(t)
	skill1 := createRandomSkill(t)

	skill2, err := testQueries.GetSkill(context.Background(), skill1.ID)
	require.NoError(t, err)
	require.Equal(t, skill1.ID, skill2.ID)
	require.Equal(t, skill1.Name, skill2.Name)
	require.Equal(t, skill1.SkillUrl, skill2.SkillUrl)
}

////////////////////////////////////////////////////////////////////////

func TestGetSkillByNameIgnoresCaseAndSpace(t *testing.T) {
	requireDB(t)
	skill1 := createRandomSkill(t)

	skill2, err := testQueries.GetSkillByName(context.Background(), "  "+skill1.Name+" ")
	require.NoError(t, err)
	require.Equal(t, skill1.ID, skill2.ID)
}

////////////////////////////////////////////////////////////////////////

func TestCreateSkillRejectsDuplicateName(t *testing.T) {
	requireDB(t)
	skill1 := createRandomSkill(t)

	_, err := testQueries.CreateSkill(context.Background(), CreateSkillParams{
		Name:         skill1.Name,
		Category:     skill1.Category,
		JobTags:      []string{},
		RelatedTools: []string{},
	})
	require.Error(t, err)
}

////////////////////////////////////////////////////////////////////////

func TestUpsertSkill(t *testing.T) {
	requireDB(t)
	skill1 := createRandomSkill(t)

	arg := UpsertSkillParams{
		Name:         skill1.Name,
		Category:     "Testing",
		Priority:     pgtype.Int4{Int32: 3, Valid: true},
		JobTags:      []string{"backend"},
		RelatedTools: []string{"Jest"},
	}
	skill2, err := testQueries.UpsertSkill(context.Background(), arg)
	require.NoError(t, err)
	require.Equal(t, skill1.ID, skill2.ID)
	require.Equal(t, "Testing", skill2.Category)
	require.Equal(t, int32(3), skill2.Priority.Int32)
	require.Equal(t, []string{"Jest"}, skill2.RelatedTools)
}

////////////////////////////////////////////////////////////////////////

func TestListSkillsByCategory(t *testing.T) {
	requireDB(t)
	skill1 := createRandomSkill(t)

	skills, err := testQueries.ListSkillsByCategory(context.Background(), skill1.Category)
	require.NoError(t, err)
	require.NotEmpty(t, skills)

	found := false
	for _, s := range skills {
		require.Equal(t, skill1.Category, s.Category)
		if s.ID == skill1.ID {
			found = true
		}
	}
	require.True(t, found)
}

////////////////////////////////////////////////////////////////////////

func TestListAllSkills(t *testing.T) {
	requireDB(t)
	createRandomSkill(t)
	createRandomSkill(t)

	skills, err := testQueries.ListAllSkills(context.Background())
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(skills), 2)

	count, err := testQueries.CountSkills(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(len(skills)), count)
}

////////////////////////////////////////////////////////////////////////

func TestDeleteSkill(t *testing.T) {
	requireDB(t)
	skill1 := createRandomSkill(t)

	err := testQueries.DeleteSkill(context.Background(), skill1.ID)
	require.NoError(t, err)

	skill2, err := testQueries.GetSkill(context.Background(), skill1.ID)
	require.ErrorIs(t, err, pgx.ErrNoRows)
	require.Empty(t, skill2)
}
