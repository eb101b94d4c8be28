// skillz/processor.go
package skillz

import (
	"context"
)

////////////////////////////////////////////////////////////////////////
// Interface Definition
////////////////////////////////////////////////////////////////////////

// Processor is the public contract for the LLM-backed skill advice.
// Using an interface lets the API layer swap in a fake for tests.
type Processor interface {
	// RecommendSkills asks the model which skills the candidate should add to their CV.
	RecommendSkills(ctx context.Context, currentSkills []string) ([]string, error)

	// RecommendCourses asks the model for up to numberOfCourses learning resources
	// covering the given skills.
	RecommendCourses(ctx context.Context, skills []string, numberOfCourses int) ([]Course, error)
}

// Course is one learning resource recommended for a skill.
type Course struct {
	Skill                   string `json:"skill"`
	CourseName              string `json:"courseName"`
	Provider                string `json:"provider"`
	URL                     string `json:"url,omitempty"`
	IsFree                  *bool  `json:"isFree,omitempty"`
	Description             string `json:"description,omitempty"`
	ReasonForRecommendation string `json:"reasonForRecommendation,omitempty"`
}
