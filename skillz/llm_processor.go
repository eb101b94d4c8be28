// skillz/llm_processor.go
package skillz

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pranav244872/cvreview/llm"
	"google.golang.org/genai"
)

////////////////////////////////////////////////////////////////////////

// We define our LLM prompts as constants here to keep them organized and easy to modify.

const (
	// DefaultNumberOfCourses is used when the caller does not ask for a specific count.
	DefaultNumberOfCourses = 5

	// skillRecommendationPrompt asks for the skills a fresher software engineer
	// should add, given what their CV already shows.
	skillRecommendationPrompt = `
You are a senior technical recruiter reviewing the CV of a fresher software engineer.

The candidate already lists these skills: %s

RULES:
1.  Recommend skills the candidate should learn or add to improve their CV for entry-level software engineering roles.
2.  Do NOT repeat skills the candidate already has, under any spelling.
3.  Prefer concrete technologies and practices (e.g. "Docker", "Unit Testing") over vague traits.
4.  Order the list from most to least important.`

	// courseRecommendationPrompt asks for learning resources for a set of skills.
	courseRecommendationPrompt = `
Recommend exactly %d online courses or learning resources that together cover these skills: %s

For each course give the skill it targets, the course name, the provider, a URL if one is well known,
whether it is free, a one-sentence description and the reason it is recommended for a fresher.
Prefer reputable providers (Coursera, Udemy, freeCodeCamp, official documentation, YouTube channels of known educators).`
)

// skillRecommendationSchema is the response shape for RecommendSkills.
var skillRecommendationSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"recommendedSkills": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "Skills recommended to add to improve the CV",
		},
	},
	Required: []string{"recommendedSkills"},
}

// courseRecommendationSchema is the response shape for RecommendCourses.
var courseRecommendationSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"courses": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"skill":                   {Type: genai.TypeString},
					"courseName":              {Type: genai.TypeString},
					"provider":                {Type: genai.TypeString},
					"url":                     {Type: genai.TypeString},
					"isFree":                  {Type: genai.TypeBoolean},
					"description":             {Type: genai.TypeString},
					"reasonForRecommendation": {Type: genai.TypeString},
				},
				Required: []string{"skill", "courseName", "provider"},
			},
		},
	},
	Required: []string{"courses"},
}

////////////////////////////////////////////////////////////////////////
// Struct and Constructor
////////////////////////////////////////////////////////////////////////

// LLMProcessor implements the Processor interface using a Large Language Model.
type LLMProcessor struct {
	llmClient  llm.Client
	normalizer *Normalizer
}

// NewLLMProcessor creates a new LLMProcessor using the provided LLM client (real or mock).
// The normalizer tidies recommended skill names; it may be nil.
func NewLLMProcessor(llmClient llm.Client, normalizer *Normalizer) Processor {
	return &LLMProcessor{
		llmClient:  llmClient,
		normalizer: normalizer,
	}
}

////////////////////////////////////////////////////////////////////////
// Public Methods (Interface Implementation)
////////////////////////////////////////////////////////////////////////

// RecommendSkills builds the prompt, calls the LLM and decodes {recommendedSkills: [...]}.
func (p *LLMProcessor) RecommendSkills(ctx context.Context, currentSkills []string) ([]string, error) {
	// 1. Embed the current skills as a JSON array so names with commas survive.
	currentJSON, err := json.Marshal(currentSkills)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal current skills for prompt: %w", err)
	}

	// 2. Call the LLM with the prompt and the response schema.
	llmResponse, err := p.llmClient.Generate(ctx, llm.Request{
		Prompt: fmt.Sprintf(skillRecommendationPrompt, string(currentJSON)),
		Schema: skillRecommendationSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("skill recommendation LLM call failed: %w", err)
	}

	// 3. Parse the response.
	var out struct {
		RecommendedSkills []string `json:"recommendedSkills"`
	}
	if err := json.Unmarshal([]byte(llm.CleanJSON(llmResponse)), &out); err != nil {
		return nil, fmt.Errorf("failed to parse LLM skill recommendation as JSON object: %s", llmResponse)
	}

	// 4. Tidy the names if we can.
	if p.normalizer != nil {
		return p.normalizer.Normalize(out.RecommendedSkills), nil
	}
	if out.RecommendedSkills == nil {
		return []string{}, nil
	}
	return out.RecommendedSkills, nil
}

// RecommendCourses asks the LLM for courses covering the skills.
// numberOfCourses <= 0 falls back to DefaultNumberOfCourses.
func (p *LLMProcessor) RecommendCourses(ctx context.Context, skills []string, numberOfCourses int) ([]Course, error) {
	if numberOfCourses <= 0 {
		numberOfCourses = DefaultNumberOfCourses
	}

	prompt := fmt.Sprintf(courseRecommendationPrompt, numberOfCourses, strings.Join(skills, ", "))

	llmResponse, err := p.llmClient.Generate(ctx, llm.Request{
		Prompt: prompt,
		Schema: courseRecommendationSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("course recommendation LLM call failed: %w", err)
	}

	var out struct {
		Courses []Course `json:"courses"`
	}
	if err := json.Unmarshal([]byte(llm.CleanJSON(llmResponse)), &out); err != nil {
		return nil, fmt.Errorf("failed to parse LLM course recommendation as JSON object: %s", llmResponse)
	}

	// The model sometimes ignores the count; never hand back more than asked for.
	if len(out.Courses) > numberOfCourses {
		out.Courses = out.Courses[:numberOfCourses]
	}
	if out.Courses == nil {
		out.Courses = []Course{}
	}
	return out.Courses, nil
}
