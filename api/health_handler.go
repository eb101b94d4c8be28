// api/health_handler.go
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const healthTimeout = 2 * time.Second

// healthCheck reports ok, or 503 when the database cannot be reached.
func (server *Server) healthCheck(ctx *gin.Context) {
	if server.db != nil {
		pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), healthTimeout)
		defer cancel()

		if err := server.db.Ping(pingCtx); err != nil {
			server.requestLogger(ctx).WithError(err).Warn("Health check failed")
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "database unreachable"})
			return
		}
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
