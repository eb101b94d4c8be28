package skillz_test

import (
	"context"
	"errors"
	"testing"

	"github.com/pranav244872/cvreview/skillz"
	"github.com/pranav244872/cvreview/util"
	"github.com/stretchr/testify/require"
)

// fakeCatalog is an in-memory stand-in for the real catalog.
// It returns a copy of its skills, or the configured error.
type fakeCatalog struct {
	skills []skillz.Skill
	err    error
	calls  int
}

func (f *fakeCatalog) FetchAllSkills(ctx context.Context) ([]skillz.Skill, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([]skillz.Skill, len(f.skills))
	copy(out, f.skills)
	return out, nil
}

func skill(name string, priority int) skillz.Skill {
	return skillz.Skill{Name: name, Category: "Test", Priority: util.Ptr(priority)}
}

func names(skills []skillz.Skill) []string {
	out := make([]string, len(skills))
	for i, s := range skills {
		out[i] = s.Name
	}
	return out
}

////////////////////////////////////////////////////////////////////////
// Test for FindMissingSkills
////////////////////////////////////////////////////////////////////////

func TestMatcher_FindMissingSkills(t *testing.T) {
	catalog := []skillz.Skill{
		skill("Git", 10),
		skill("Docker", 7),
		skill("SQL", 9),
	}

	testCases := []struct {
		name          string
		currentSkills []string
		want          []string
	}{
		{
			name:          "Scenario - Git Excluded, Sorted By Priority",
			currentSkills: []string{"git"},
			want:          []string{"SQL", "Docker"},
		},
		{
			name:          "Boundary - Empty Input Returns Whole Catalog",
			currentSkills: []string{},
			want:          []string{"Git", "SQL", "Docker"},
		},
		{
			name:          "Boundary - Nil Input Returns Whole Catalog",
			currentSkills: nil,
			want:          []string{"Git", "SQL", "Docker"},
		},
		{
			name:          "Boundary - Every Skill Present In Any Case",
			currentSkills: []string{"  GIT ", "docker", "\tSql\n"},
			want:          []string{},
		},
		{
			name:          "Duplicates And Unknown Input Are Harmless",
			currentSkills: []string{"Docker", "docker", "Rust", ""},
			want:          []string{"Git", "SQL"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := skillz.NewMatcher(&fakeCatalog{skills: catalog})

			got := m.FindMissingSkills(context.Background(), tc.currentSkills)

			require.NotNil(t, got)
			require.Equal(t, tc.want, names(got))
		})
	}
}

func TestMatcher_StableOrderForEqualPriorities(t *testing.T) {
	catalog := []skillz.Skill{
		skill("HTML", 10),
		{Name: "Unset A", Category: "Test"},
		skill("CSS", 10),
		skill("Jest", 6),
		{Name: "Unset B", Category: "Test"},
		skill("Git", 10),
		skill("Zero", 0),
	}
	m := skillz.NewMatcher(&fakeCatalog{skills: catalog})

	got := m.FindMissingSkills(context.Background(), nil)

	// Unset priorities rank as 0 and sort last, keeping catalog order with the explicit 0.
	require.Equal(t, []string{"HTML", "CSS", "Git", "Jest", "Unset A", "Unset B", "Zero"}, names(got))
}

func TestMatcher_Properties(t *testing.T) {
	catalog := make([]skillz.Skill, 0, 30)
	for i := 0; i < 30; i++ {
		catalog = append(catalog, skill(util.RandomSkillName(), int(util.RandomInt(1, 10))))
	}
	input := []string{catalog[0].Name, "  " + catalog[3].Name + " ", util.RandomString(8)}

	m := skillz.NewMatcher(&fakeCatalog{skills: catalog})
	first := m.FindMissingSkills(context.Background(), input)

	have := map[string]struct{}{}
	for _, s := range input {
		have[skillz.NormalizeName(s)] = struct{}{}
	}

	// No false inclusion.
	for _, s := range first {
		_, present := have[skillz.NormalizeName(s.Name)]
		require.False(t, present, "%q should have been excluded", s.Name)
	}

	// Sorted by priority, descending.
	for i := 1; i < len(first); i++ {
		require.GreaterOrEqual(t, first[i-1].PriorityValue(), first[i].PriorityValue())
	}

	// Every catalog skill not in the input is in the result.
	expected := 0
	for _, s := range catalog {
		if _, present := have[skillz.NormalizeName(s.Name)]; !present {
			expected++
		}
	}
	require.Len(t, first, expected)

	// Idempotent.
	second := m.FindMissingSkills(context.Background(), input)
	require.Equal(t, first, second)
}

func TestMatcher_DoesNotMutateInput(t *testing.T) {
	catalog := []skillz.Skill{skill("Docker", 7), skill("Git", 10)}
	fake := &fakeCatalog{skills: catalog}
	input := []string{" Docker "}

	skillz.NewMatcher(fake).FindMissingSkills(context.Background(), input)

	require.Equal(t, []string{" Docker "}, input)
	require.Equal(t, []string{"Docker", "Git"}, names(fake.skills))
}

func TestMatcher_CatalogFailure(t *testing.T) {
	catalogErr := errors.New("permission denied")
	m := skillz.NewMatcher(&fakeCatalog{err: catalogErr})

	// The plain contract swallows the failure.
	got := m.FindMissingSkills(context.Background(), []string{"Go"})
	require.NotNil(t, got)
	require.Empty(t, got)

	// The tagged result keeps it.
	result := m.Analyze(context.Background(), []string{"Go"})
	require.ErrorIs(t, result.Err, catalogErr)
	require.NotNil(t, result.Missing)
	require.Empty(t, result.Missing)
}

func TestNormalizeName(t *testing.T) {
	require.Equal(t, "node.js", skillz.NormalizeName("  Node.JS\t"))
	require.Equal(t, "", skillz.NormalizeName("   "))
}
