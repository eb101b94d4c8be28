// skillz/selection.go
package skillz

// JobTags lists the job roles the skills page lets a user filter by.
var JobTags = []string{
	"Backend Developer",
	"Frontend Developer",
	"Full-Stack Developer",
	"DevOps / Cloud Engineer",
}

// FilterByJobTag keeps the skills tagged with tag. An empty tag keeps everything.
// The input slice is not modified.
func FilterByJobTag(skills []Skill, tag string) []Skill {
	if tag == "" {
		out := make([]Skill, len(skills))
		copy(out, skills)
		return out
	}

	out := make([]Skill, 0, len(skills))
	for _, s := range skills {
		if s.HasJobTag(tag) {
			out = append(out, s)
		}
	}
	return out
}

// TopN returns the n highest priority skills. n <= 0 or n >= len(skills)
// returns all of them, still sorted. The input slice is not modified.
func TopN(skills []Skill, n int) []Skill {
	out := make([]Skill, len(skills))
	copy(out, skills)
	SortByPriority(out)

	if n <= 0 || n >= len(out) {
		return out
	}
	return out[:n]
}
