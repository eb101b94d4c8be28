package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pranav244872/cvreview/logger"
	"github.com/pranav244872/cvreview/metrics"
	"github.com/pranav244872/cvreview/token"
	"github.com/sirupsen/logrus"
)

////////////////////////////////////////////////////////////////////////
// Constants used in authMiddleware
////////////////////////////////////////////////////////////////////////

const (
	authorizationHeaderKey  = "authorization"         // HTTP header where token is expected
	authorizationTypeBearer = "bearer"                // Authorization type: Bearer <token>
	authorizationPayloadKey = "authorization_payload" // Context key for storing the token payload

	correlationHeader = logger.CorrelationIDHeader
)

////////////////////////////////////////////////////////////////////////
// Middleware to authenticate JWTs
////////////////////////////////////////////////////////////////////////

// authMiddleware checks for a valid JWT token in the "Authorization" header.
// If valid, it stores the decoded payload in Gin's context for use in handlers.
// If invalid or missing, it blocks access with a 401 Unauthorized.
func authMiddleware(tokenMaker token.Maker) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		// 1. Get the value of the Authorization header
		authorizationHeader := ctx.GetHeader(authorizationHeaderKey)
		if len(authorizationHeader) == 0 {
			err := errors.New("authorization header is not provided")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse(err))
			return
		}

		// 2. The expected format is: "Bearer <token>"
		fields := strings.Fields(authorizationHeader)
		if len(fields) < 2 {
			err := errors.New("invalid authorization header format")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse(err))
			return
		}

		// 3. Check that the type is "Bearer" (case-insensitive)
		authType := strings.ToLower(fields[0])
		if authType != authorizationTypeBearer {
			err := fmt.Errorf("unsupported authorization type %s", authType)
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse(err))
			return
		}

		// 4. Validate the JWT token
		payload, err := tokenMaker.VerifyToken(fields[1])
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse(err))
			return
		}

		// 5. Save the payload for later handlers
		ctx.Set(authorizationPayloadKey, payload)
		ctx.Next()
	}
}

// requireRole blocks authenticated callers whose token lacks the role.
// It must run after authMiddleware.
func requireRole(role string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		payload, err := getAuthorizationPayload(ctx)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse(err))
			return
		}
		if payload.Role != role {
			err := fmt.Errorf("role %q is not allowed to access this resource", payload.Role)
			ctx.AbortWithStatusJSON(http.StatusForbidden, errorResponse(err))
			return
		}
		ctx.Next()
	}
}

// getAuthorizationPayload returns the token payload authMiddleware stored.
func getAuthorizationPayload(ctx *gin.Context) (*token.Payload, error) {
	value, exists := ctx.Get(authorizationPayloadKey)
	if !exists {
		return nil, errors.New("authorization payload not found")
	}

	payload, ok := value.(*token.Payload)
	if !ok {
		return nil, errors.New("invalid authorization payload type")
	}
	return payload, nil
}

////////////////////////////////////////////////////////////////////////
// Request logging and metrics
////////////////////////////////////////////////////////////////////////

// correlationMiddleware tags every request with a correlation id (taken from
// the X-Correlation-ID header or generated) and logs it when it completes.
func correlationMiddleware(log logrus.FieldLogger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		correlationID := ctx.GetHeader(correlationHeader)
		if correlationID == "" {
			correlationID = logger.NewCorrelationID()
		}
		ctx.Header(correlationHeader, correlationID)

		requestLog := log.WithField(logger.CorrelationIDFieldKey, correlationID)
		reqCtx := logger.WithCorrelationID(ctx.Request.Context(), correlationID)
		reqCtx = logger.WithLogger(reqCtx, requestLog)
		ctx.Request = ctx.Request.WithContext(reqCtx)

		ctx.Next()

		entry := requestLog.WithFields(logrus.Fields{
			"method":     ctx.Request.Method,
			"path":       ctx.Request.URL.Path,
			"status":     ctx.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  ctx.ClientIP(),
		})
		switch {
		case ctx.Writer.Status() >= http.StatusInternalServerError:
			entry.Error("HTTP request completed")
		case ctx.Writer.Status() >= http.StatusBadRequest:
			entry.Warn("HTTP request completed")
		default:
			entry.Info("HTTP request completed")
		}
	}
}

// metricsMiddleware counts requests by route template, not raw path, so
// static file names do not explode the label space.
func metricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequests.WithLabelValues(ctx.Request.Method, route, strconv.Itoa(ctx.Writer.Status())).Inc()
		m.HTTPDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

// requestLogger returns the request scoped logger.
func (server *Server) requestLogger(ctx *gin.Context) logrus.FieldLogger {
	return logger.FromContext(ctx.Request.Context(), server.log)
}
