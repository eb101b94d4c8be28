// catalog/seed.go
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	db "github.com/pranav244872/cvreview/db/sqlc"
	"github.com/pranav244872/cvreview/skillz"
	"gopkg.in/yaml.v3"
)

//go:embed seed_skills.yaml
var defaultSeed []byte

// SeedEntry is one skill in a seed file together with its aliases.
type SeedEntry struct {
	skillz.Skill `yaml:",inline"`
	Aliases      []string `yaml:"aliases"`
}

// LoadSeed reads a YAML seed file. An empty path loads the built-in catalog.
func LoadSeed(path string) ([]SeedEntry, error) {
	data := defaultSeed
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read seed file: %w", err)
		}
	}
	return ParseSeed(data)
}

// ParseSeed decodes and validates seed YAML. Every entry needs a name and a
// category, and names must be unique after normalization.
func ParseSeed(data []byte) ([]SeedEntry, error) {
	var entries []SeedEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	seen := make(map[string]int, len(entries))
	for i, e := range entries {
		if strings.TrimSpace(e.Name) == "" || strings.TrimSpace(e.Category) == "" {
			return nil, fmt.Errorf("seed entry %d: name and category are required", i+1)
		}
		key := skillz.NormalizeName(e.Name)
		if prev, ok := seen[key]; ok {
			return nil, fmt.Errorf("seed entry %d: duplicate of entry %d (%s)", i+1, prev+1, e.Name)
		}
		seen[key] = i
	}
	return entries, nil
}

// Skills returns just the skill records of the entries.
func Skills(entries []SeedEntry) []skillz.Skill {
	skills := make([]skillz.Skill, 0, len(entries))
	for _, e := range entries {
		skills = append(skills, e.Skill)
	}
	return skills
}

// AliasMap returns alias -> canonical name for the entries, including each
// canonical name mapped to itself.
func AliasMap(entries []SeedEntry) map[string]string {
	aliasMap := make(map[string]string)
	for _, e := range entries {
		aliasMap[skillz.NormalizeName(e.Name)] = e.Name
		for _, a := range e.Aliases {
			aliasMap[skillz.NormalizeName(a)] = e.Name
		}
	}
	return aliasMap
}

// SeedParams converts entries into the store's seed transaction input.
func SeedParams(entries []SeedEntry) db.SeedSkillsTxParams {
	arg := db.SeedSkillsTxParams{Skills: make([]db.SeedSkill, 0, len(entries))}
	for _, e := range entries {
		arg.Skills = append(arg.Skills, db.SeedSkill{
			Skill:   toUpsertParams(e.Skill),
			Aliases: e.Aliases,
		})
	}
	return arg
}
