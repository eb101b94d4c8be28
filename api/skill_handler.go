// api/skill_handler.go
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pranav244872/cvreview/catalog"
	"github.com/pranav244872/cvreview/skillz"
)

////////////////////////////////////////////////////////////////////////
// Skill Gap Analysis
////////////////////////////////////////////////////////////////////////

type analyzeSkillsRequest struct {
	CurrentSkills []string `json:"currentSkills" binding:"required"`
	JobTag        string   `json:"jobTag"`
	Limit         int      `json:"limit" binding:"min=0"`
}

// missingSkill is a catalog record as shown on the skill gap page.
type missingSkill struct {
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	SkillURL        string   `json:"skill_url"`
	Description     string   `json:"description"`
	Priority        *int     `json:"priority"`
	JobTags         []string `json:"job_tags,omitempty"`
	DifficultyLevel string   `json:"difficulty_level,omitempty"`
	RelatedTools    []string `json:"related_tools,omitempty"`
	TimeLearning    *int     `json:"time-learning,omitempty"`

	PriorityLabel   string `json:"priorityLabel"`
	PriorityLabelVI string `json:"priorityLabelVi"`
	PriorityBadge   string `json:"priorityBadge"`
	Important       bool   `json:"important"`
}

type analyzeSkillsResponse struct {
	CurrentSkills []string       `json:"currentSkills"`
	MissingSkills []missingSkill `json:"missingSkills"`
	TotalMissing  int            `json:"totalMissing"`
}

func newMissingSkills(skills []skillz.Skill) []missingSkill {
	out := make([]missingSkill, 0, len(skills))
	for _, s := range skills {
		out = append(out, missingSkill{
			Name:            s.Name,
			Category:        s.Category,
			SkillURL:        s.SkillURL,
			Description:     s.Description,
			Priority:        s.Priority,
			JobTags:         s.JobTags,
			DifficultyLevel: s.DifficultyLevel,
			RelatedTools:    s.RelatedTools,
			TimeLearning:    s.TimeLearning,
			PriorityLabel:   skillz.PriorityLabel(s.PriorityValue()),
			PriorityLabelVI: skillz.PriorityLabelVI(s.PriorityValue()),
			PriorityBadge:   skillz.PriorityBadge(s.PriorityValue()),
			Important:       skillz.IsImportant(s.PriorityValue()),
		})
	}
	return out
}

// analyzeSkills lists the catalog skills the candidate is missing, highest
// priority first. An unreadable catalog yields an empty list.
func (server *Server) analyzeSkills(ctx *gin.Context) {
	var req analyzeSkillsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorMessage("Missing or invalid currentSkills"))
		return
	}

	result := server.matcher.Analyze(ctx.Request.Context(), req.CurrentSkills)
	server.metrics.ObserveAnalysis(len(result.Missing), result.Err)
	if result.Err != nil {
		server.requestLogger(ctx).WithError(result.Err).Warn("Skill analysis ran without a catalog")
	}

	missing := skillz.TopN(skillz.FilterByJobTag(result.Missing, req.JobTag), req.Limit)

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": analyzeSkillsResponse{
			CurrentSkills: req.CurrentSkills,
			MissingSkills: newMissingSkills(missing),
			TotalMissing:  len(missing),
		},
	})
}

////////////////////////////////////////////////////////////////////////
// LLM Recommendations
////////////////////////////////////////////////////////////////////////

type recommendSkillsRequest struct {
	CurrentSkills []string `json:"currentSkills" binding:"required"`
}

// recommendSkills asks the model which skills the candidate should add.
func (server *Server) recommendSkills(ctx *gin.Context) {
	var req recommendSkillsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorMessage("Missing or invalid currentSkills"))
		return
	}

	recommended, err := server.processor.RecommendSkills(ctx.Request.Context(), req.CurrentSkills)
	server.metrics.ObserveLLM("recommend_skills", err)
	if err != nil {
		server.requestLogger(ctx).WithError(err).Error("Skill recommendation failed")
		ctx.JSON(http.StatusInternalServerError, errorMessage("Skill analysis failed"))
		return
	}
	if recommended == nil {
		recommended = []string{}
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"recommendedSkills": recommended},
	})
}

type recommendCoursesRequest struct {
	Skills          []string `json:"skills" binding:"required"`
	NumberOfCourses int      `json:"numberOfCourses" binding:"min=0,max=50"`
}

// recommendCourses asks the model for learning resources covering skills.
func (server *Server) recommendCourses(ctx *gin.Context) {
	var req recommendCoursesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorMessage("Missing or invalid skills"))
		return
	}
	if req.NumberOfCourses == 0 {
		req.NumberOfCourses = skillz.DefaultNumberOfCourses
	}

	courses, err := server.processor.RecommendCourses(ctx.Request.Context(), req.Skills, req.NumberOfCourses)
	server.metrics.ObserveLLM("recommend_courses", err)
	if err != nil {
		server.requestLogger(ctx).WithError(err).Error("Course recommendation failed")
		ctx.JSON(http.StatusInternalServerError, errorMessage("Course recommendation failed"))
		return
	}
	if courses == nil {
		courses = []skillz.Course{}
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": courses})
}

////////////////////////////////////////////////////////////////////////
// Catalog Listing
////////////////////////////////////////////////////////////////////////

type listSkillsRequest struct {
	Category string `form:"category"`
}

// listSkills returns the catalog, optionally narrowed to one category.
// Like the matcher it reports an unreadable catalog as an empty list.
func (server *Server) listSkills(ctx *gin.Context) {
	var req listSkillsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if req.Category == "" {
		ctx.JSON(http.StatusOK, gin.H{"success": true, "data": catalog.BestEffort(ctx.Request.Context(), server.catalog)})
		return
	}

	skills, err := server.catalog.ListByCategory(ctx.Request.Context(), req.Category)
	if err != nil || skills == nil {
		skills = []skillz.Skill{}
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": skills})
}
