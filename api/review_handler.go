// api/review_handler.go
package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pranav244872/cvreview/review"
	"github.com/pranav244872/cvreview/storage"
)

////////////////////////////////////////////////////////////////////////
// CV Review
////////////////////////////////////////////////////////////////////////

type reviewRequest struct {
	OriginalFile string `json:"originalFile" binding:"required"`
}

// bindReviewRequest reads the file name and rejects names CleanName would change.
func bindReviewRequest(ctx *gin.Context) (string, bool) {
	var req reviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorMessage("Missing originalFile"))
		return "", false
	}
	name, err := storage.CleanName(req.OriginalFile)
	if err != nil || name != req.OriginalFile {
		ctx.JSON(http.StatusBadRequest, errorMessage("Invalid originalFile"))
		return "", false
	}
	return name, true
}

// reviewCV scores an uploaded CV. Besides the raw review text the response
// carries the normalized skills found in it, ready for analyze-skills.
func (server *Server) reviewCV(ctx *gin.Context) {
	name, ok := bindReviewRequest(ctx)
	if !ok {
		return
	}
	log := server.requestLogger(ctx).WithField("file", name)

	text, err := server.reviewer.Review(ctx.Request.Context(), name)
	server.metrics.ObserveLLM("review", err)
	if err != nil {
		log.WithError(err).Error("Review failed")
		switch {
		case errors.Is(err, storage.ErrNotFound):
			ctx.JSON(http.StatusNotFound, errorMessage("File not found"))
		case errors.Is(err, review.ErrUnsupportedFile):
			ctx.JSON(http.StatusBadRequest, errorResponse(review.ErrUnsupportedFile))
		default:
			ctx.JSON(http.StatusInternalServerError, errorMessage("Review failed"))
		}
		return
	}

	rsp := gin.H{"success": true, "text": text}
	if parsed, err := review.Parse(text); err == nil {
		skills := parsed.ExtractedSkills()
		if server.normalizer != nil {
			skills = server.normalizer.Normalize(skills)
		}
		rsp["skills"] = skills
	}
	ctx.JSON(http.StatusOK, rsp)
}

// fixCV returns the edit suggestions of the last review of a CV.
func (server *Server) fixCV(ctx *gin.Context) {
	name, ok := bindReviewRequest(ctx)
	if !ok {
		return
	}

	text, err := server.reviewer.Fix(ctx.Request.Context(), name)
	if err != nil {
		if errors.Is(err, review.ErrNoReview) {
			ctx.JSON(http.StatusBadRequest, errorResponse(err))
			return
		}
		server.requestLogger(ctx).WithError(err).WithField("file", name).Error("Fix failed")
		ctx.JSON(http.StatusInternalServerError, errorMessage("Fix failed"))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "text": text})
}
