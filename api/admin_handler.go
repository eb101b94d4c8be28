// api/admin_handler.go
package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pranav244872/cvreview/catalog"
	"github.com/pranav244872/cvreview/skillz"
)

////////////////////////////////////////////////////////////////////////
// Catalog Management
////////////////////////////////////////////////////////////////////////

type createSkillRequest struct {
	Name            string   `json:"name" binding:"required"`
	Category        string   `json:"category" binding:"required"`
	SkillURL        string   `json:"skill_url" binding:"omitempty,url"`
	Description     string   `json:"description"`
	Priority        *int     `json:"priority" binding:"omitempty,min=-2147483648,max=2147483647"` // any value the column can hold
	JobTags         []string `json:"job_tags"`
	DifficultyLevel string   `json:"difficulty_level"`
	RelatedTools    []string `json:"related_tools"`
	TimeLearning    *int     `json:"time-learning" binding:"omitempty,min=0,max=2147483647"`
}

func (req createSkillRequest) skill() skillz.Skill {
	return skillz.Skill{
		Name:            req.Name,
		Category:        req.Category,
		SkillURL:        req.SkillURL,
		Description:     req.Description,
		Priority:        req.Priority,
		JobTags:         req.JobTags,
		DifficultyLevel: req.DifficultyLevel,
		RelatedTools:    req.RelatedTools,
		TimeLearning:    req.TimeLearning,
	}
}

// createSkillAdmin adds one skill to the catalog.
func (server *Server) createSkillAdmin(ctx *gin.Context) {
	var req createSkillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	id, err := server.catalog.AddSkill(ctx.Request.Context(), req.skill())
	if err != nil {
		if errors.Is(err, catalog.ErrDuplicateSkill) {
			ctx.JSON(http.StatusConflict, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorMessage("Failed to add skill"))
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"id": id})
}

type createSkillsBatchRequest struct {
	Skills []createSkillRequest `json:"skills" binding:"required,min=1,dive"`
}

// createSkillsBatchAdmin adds several skills; entries that fail are skipped.
func (server *Server) createSkillsBatchAdmin(ctx *gin.Context) {
	var req createSkillsBatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	skills := make([]skillz.Skill, 0, len(req.Skills))
	for _, s := range req.Skills {
		skills = append(skills, s.skill())
	}

	added, err := server.catalog.AddSkills(ctx.Request.Context(), skills)
	if err != nil {
		server.requestLogger(ctx).WithError(err).Error("Batch skill insert stopped early")
		ctx.JSON(http.StatusInternalServerError, errorMessage("Failed to add skills"))
		return
	}

	server.requestLogger(ctx).WithField("added", added).WithField("total", len(skills)).Info("Added skills to catalog")
	ctx.JSON(http.StatusOK, gin.H{"added": added, "total": len(skills)})
}
