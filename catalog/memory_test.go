package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/pranav244872/cvreview/skillz"
	"github.com/pranav244872/cvreview/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCatalog(t *testing.T) {
	m := NewMemory(
		skillz.Skill{Name: "HTML", Category: "Web Technology", Priority: util.Ptr(10)},
		skillz.Skill{Name: "Jest", Category: "Testing", Priority: util.Ptr(6)},
	)

	skills, err := m.FetchAllSkills(context.Background())
	require.NoError(t, err)
	require.Len(t, skills, 2)
	require.Equal(t, "1", skills[0].ID)
	require.Equal(t, "2", skills[1].ID)

	// The returned slice is a copy.
	skills[0].Name = "changed"
	again, err := m.FetchAllSkills(context.Background())
	require.NoError(t, err)
	require.Equal(t, "HTML", again[0].Name)

	id, err := m.AddSkill(context.Background(), skillz.Skill{Name: "CSS", Category: "Web Technology"})
	require.NoError(t, err)
	require.Equal(t, "3", id)

	_, err = m.AddSkill(context.Background(), skillz.Skill{Name: " css ", Category: "Web Technology"})
	require.ErrorIs(t, err, ErrDuplicateSkill)

	web, err := m.ListByCategory(context.Background(), "Web Technology")
	require.NoError(t, err)
	require.Len(t, web, 2)

	none, err := m.ListByCategory(context.Background(), "Cooking")
	require.NoError(t, err)
	require.NotNil(t, none)
	require.Empty(t, none)
}

func TestMemoryCatalogAddSkills(t *testing.T) {
	m := NewMemory(skillz.Skill{Name: "Git", Category: "Version Control"})

	added, err := m.AddSkills(context.Background(), []skillz.Skill{
		{Name: "GitHub", Category: "Version Control"},
		{Name: "git", Category: "Version Control"},
	})
	require.NoError(t, err)
	require.Equal(t, 1, added)
}

func TestMemoryCatalogFailure(t *testing.T) {
	m := NewMemory(skillz.Skill{Name: "Git", Category: "Version Control"})
	boom := errors.New("catalog offline")
	m.FailWith(boom)

	_, err := m.FetchAllSkills(context.Background())
	require.ErrorIs(t, err, boom)
	require.Equal(t, []skillz.Skill{}, BestEffort(context.Background(), m))

	m.FailWith(nil)
	require.Len(t, BestEffort(context.Background(), m), 1)
}

func TestMemoryCatalogConcurrentReads(t *testing.T) {
	m := NewMemory(
		skillz.Skill{Name: "React", Category: "Frontend Framework", Priority: util.Ptr(10)},
		skillz.Skill{Name: "Vue.js", Category: "Frontend Framework", Priority: util.Ptr(7)},
	)
	matcher := skillz.NewMatcher(m)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			missing := matcher.FindMissingSkills(context.Background(), []string{"react"})
			if assert.Len(t, missing, 1) {
				assert.Equal(t, "Vue.js", missing[0].Name)
			}
		}()
	}
	wg.Wait()
}
