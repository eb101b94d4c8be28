package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pranav244872/cvreview/skillz"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultSeed(t *testing.T) {
	entries, err := LoadSeed("")
	require.NoError(t, err)
	require.Len(t, entries, 30)

	first := entries[0]
	require.Equal(t, "JavaScript", first.Name)
	require.Equal(t, "Programming Language", first.Category)
	require.Equal(t, "https://www.youtube.com/watch?v=PkZNo7MFNFg", first.SkillURL)
	require.Equal(t, 10, first.PriorityValue())
	require.Contains(t, first.Aliases, "js")
	require.NotNil(t, first.TimeLearning)

	for _, e := range entries {
		require.NotNil(t, e.Priority, e.Name)
		require.NotEmpty(t, e.JobTags, e.Name)
		for _, tag := range e.JobTags {
			require.Contains(t, skillz.JobTags, tag, e.Name)
		}
	}
}

func TestParseSeed(t *testing.T) {
	testCases := []struct {
		name    string
		yaml    string
		wantErr bool
		wantLen int
	}{
		{
			name:    "valid",
			yaml:    "- name: Go\n  category: Programming Language\n  priority: 8\n  aliases: [golang]\n",
			wantLen: 1,
		},
		{
			name:    "missing category",
			yaml:    "- name: Go\n",
			wantErr: true,
		},
		{
			name:    "duplicate after normalization",
			yaml:    "- name: Go\n  category: A\n- name: ' go '\n  category: B\n",
			wantErr: true,
		},
		{
			name:    "not a list",
			yaml:    "name: Go\n",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			entries, err := ParseSeed([]byte(tc.yaml))
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Len(t, entries, tc.wantLen)
		})
	}
}

func TestLoadSeedFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skills.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- name: Rust\n  category: Programming Language\n  aliases: [rs]\n"), 0o600))

	entries, err := LoadSeed(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Nil(t, entries[0].Priority)

	aliasMap := AliasMap(entries)
	require.Equal(t, "Rust", aliasMap["rust"])
	require.Equal(t, "Rust", aliasMap["rs"])

	arg := SeedParams(entries)
	require.Len(t, arg.Skills, 1)
	require.Equal(t, []string{"rs"}, arg.Skills[0].Aliases)
	require.False(t, arg.Skills[0].Skill.Priority.Valid)
	require.NotNil(t, arg.Skills[0].Skill.JobTags)

	_, err = LoadSeed(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
