// skillz/skill.go
package skillz

import "strings"

////////////////////////////////////////////////////////////////////////
// Skill Record
////////////////////////////////////////////////////////////////////////

// Skill is one reference skill in the catalog that an entry-level software
// engineering candidate might need. The JSON field names match the documents
// the catalog was originally seeded with, so existing clients keep working.
type Skill struct {
	ID              string   `json:"id,omitempty" yaml:"-"`
	Name            string   `json:"name" yaml:"name"`
	Category        string   `json:"category" yaml:"category"`
	SkillURL        string   `json:"skill_url,omitempty" yaml:"skill_url"`
	Description     string   `json:"description,omitempty" yaml:"description"`
	Priority        *int     `json:"priority,omitempty" yaml:"priority"` // nil means "not set" and ranks as 0
	JobTags         []string `json:"job_tags,omitempty" yaml:"job_tags"`
	DifficultyLevel string   `json:"difficulty_level,omitempty" yaml:"difficulty_level"`
	RelatedTools    []string `json:"related_tools,omitempty" yaml:"related_tools"`
	TimeLearning    *int     `json:"time-learning,omitempty" yaml:"time_learning"` // estimated hours
}

// PriorityValue returns the skill's priority, treating an unset priority as 0.
func (s Skill) PriorityValue() int {
	if s.Priority == nil {
		return 0
	}
	return *s.Priority
}

// HasJobTag reports whether the skill is tagged with the given job role.
// The comparison is exact, the same way the skills page filters.
func (s Skill) HasJobTag(tag string) bool {
	for _, t := range s.JobTags {
		if t == tag {
			return true
		}
	}
	return false
}

// NormalizeName turns a skill name into its comparison key:
// surrounding whitespace removed, lowercased.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
