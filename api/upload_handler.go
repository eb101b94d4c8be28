// api/upload_handler.go
package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pranav244872/cvreview/document"
	"github.com/pranav244872/cvreview/storage"
)

////////////////////////////////////////////////////////////////////////
// CV Upload
////////////////////////////////////////////////////////////////////////

const uploadField = "image"

type uploadResponse struct {
	Success      bool   `json:"success"`
	DisplayImage string `json:"displayImage"`
	OriginalFile string `json:"originalFile"`
	MIMEType     string `json:"mimeType"`
	Size         int    `json:"size"`
	PageCount    int    `json:"pageCount,omitempty"`
}

// uploadCV stores a CV under its base name. A file with the same name is
// replaced.
func (server *Server) uploadCV(ctx *gin.Context) {
	log := server.requestLogger(ctx)

	// 1. Cap the body before multipart parsing reads it.
	limit := server.config.MaxUploadBytes
	tooLarge := errorMessage(fmt.Sprintf("File exceeds %d bytes", limit))
	if ctx.Request.ContentLength > limit {
		ctx.JSON(http.StatusRequestEntityTooLarge, tooLarge)
		return
	}
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, limit)

	fileHeader, err := ctx.FormFile(uploadField)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			ctx.JSON(http.StatusRequestEntityTooLarge, tooLarge)
			return
		}
		ctx.JSON(http.StatusBadRequest, errorMessage("No file uploaded"))
		return
	}

	// 2. Reduce the name to something safe to store.
	name, err := storage.CleanName(fileHeader.Filename)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorMessage("Invalid file name"))
		return
	}
	if !document.IsAllowed(name) {
		ctx.JSON(http.StatusBadRequest, errorMessage("File type not allowed"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.WithError(err).Error("Failed to open uploaded file")
		ctx.JSON(http.StatusInternalServerError, errorMessage("Upload failed"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.WithError(err).Error("Failed to read uploaded file")
		ctx.JSON(http.StatusInternalServerError, errorMessage("Upload failed"))
		return
	}

	// 3. The content must be what the extension claims. PDFs must also
	// parse, and report their page count.
	mime := document.MIMEType(name)
	if !document.MatchesContent(mime, data) {
		log.WithField("file", name).WithField("mime_type", mime).Warn("Rejected upload with mismatched content")
		ctx.JSON(http.StatusBadRequest, errorMessage("File content does not match its type"))
		return
	}
	rsp := uploadResponse{
		Success:      true,
		DisplayImage: name,
		OriginalFile: name,
		MIMEType:     mime,
		Size:         len(data),
	}
	if mime == document.MIMEPDF {
		pages, err := document.PDFPageCount(data)
		if err != nil {
			log.WithError(err).WithField("file", name).Warn("Rejected unreadable PDF")
			ctx.JSON(http.StatusBadRequest, errorMessage("Invalid PDF file"))
			return
		}
		rsp.PageCount = pages
	}

	// 4. Store it.
	if err := server.storage.Save(ctx.Request.Context(), name, data, mime); err != nil {
		log.WithError(err).WithField("file", name).Error("Failed to store upload")
		ctx.JSON(http.StatusInternalServerError, errorMessage("Upload failed"))
		return
	}

	log.WithField("file", name).WithField("size", len(data)).Info("CV uploaded")
	ctx.JSON(http.StatusOK, rsp)
}
