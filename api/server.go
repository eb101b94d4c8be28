package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pranav244872/cvreview/catalog"
	"github.com/pranav244872/cvreview/config"
	"github.com/pranav244872/cvreview/metrics"
	"github.com/pranav244872/cvreview/skillz"
	"github.com/pranav244872/cvreview/storage"
	"github.com/pranav244872/cvreview/token"
	"github.com/sirupsen/logrus"
)

////////////////////////////////////////////////////////////////////////
// Collaborators
////////////////////////////////////////////////////////////////////////

// CVReviewer reviews uploaded CVs and derives fix suggestions.
type CVReviewer interface {
	Review(ctx context.Context, originalFile string) (string, error)
	Fix(ctx context.Context, originalFile string) (string, error)
}

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Dependencies are the services the HTTP layer is wired to.
type Dependencies struct {
	Catalog    catalog.Catalog
	Processor  skillz.Processor
	Normalizer *skillz.Normalizer // tidies skills extracted by a review; may be nil
	Reviewer   CVReviewer
	Storage    storage.Provider
	TokenMaker token.Maker
	DB         Pinger // may be nil
	Metrics    *metrics.Metrics
	Logger     logrus.FieldLogger
}

////////////////////////////////////////////////////////////////////////
// Server
////////////////////////////////////////////////////////////////////////

// Server serves HTTP requests for the CV review service.
type Server struct {
	config     config.Config
	catalog    catalog.Catalog
	matcher    *skillz.Matcher
	processor  skillz.Processor
	normalizer *skillz.Normalizer
	reviewer   CVReviewer
	storage    storage.Provider
	tokenMaker token.Maker
	db         Pinger
	metrics    *metrics.Metrics
	log        logrus.FieldLogger
	router     *gin.Engine
	httpServer *http.Server
}

// NewServer creates a new HTTP server and sets up routing.
func NewServer(cfg config.Config, deps Dependencies) (*Server, error) {
	if deps.Catalog == nil || deps.Processor == nil || deps.Reviewer == nil ||
		deps.Storage == nil || deps.TokenMaker == nil || deps.Logger == nil {
		return nil, errors.New("api: missing required dependency")
	}
	if deps.Metrics == nil {
		deps.Metrics = metrics.New()
	}

	server := &Server{
		config:     cfg,
		catalog:    deps.Catalog,
		matcher:    skillz.NewMatcher(deps.Catalog),
		processor:  deps.Processor,
		normalizer: deps.Normalizer,
		reviewer:   deps.Reviewer,
		storage:    deps.Storage,
		tokenMaker: deps.TokenMaker,
		db:         deps.DB,
		metrics:    deps.Metrics,
		log:        deps.Logger,
	}

	server.setupRouter()
	return server, nil
}

func (server *Server) setupRouter() {
	router := gin.New()
	router.MaxMultipartMemory = server.config.MaxUploadBytes

	router.Use(
		gin.Recovery(),
		correlationMiddleware(server.log),
		metricsMiddleware(server.metrics),
		cors.New(corsConfig(server.config.FrontendURL)),
	)

	// Public routes
	router.GET("/healthz", server.healthCheck)
	if server.config.MetricsEnabled {
		router.GET("/metrics", gin.WrapH(server.metrics.Handler()))
	}
	router.POST("/auth/login", server.loginAdmin)

	apiRoutes := router.Group("/api")
	apiRoutes.POST("/upload", server.uploadCV)
	apiRoutes.POST("/review", server.reviewCV)
	apiRoutes.POST("/fix", server.fixCV)
	apiRoutes.POST("/analyze-skills", server.analyzeSkills)
	apiRoutes.POST("/recommend-skills", server.recommendSkills)
	apiRoutes.POST("/recommend-courses", server.recommendCourses)
	apiRoutes.GET("/skills", server.listSkills)

	// Uploaded files are only served from local storage.
	if local, ok := server.storage.(*storage.LocalProvider); ok {
		router.Static("/uploads", local.Dir())
	}

	// Admin-only routes
	adminRoutes := router.Group("/admin").Use(
		authMiddleware(server.tokenMaker),
		requireRole(token.RoleAdmin),
	)
	adminRoutes.POST("/skills", server.createSkillAdmin)
	adminRoutes.POST("/skills/batch", server.createSkillsBatchAdmin)

	server.router = router
}

// corsConfig allows the frontend origin, or any origin when none is configured.
func corsConfig(frontendURL string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", correlationHeader},
		ExposeHeaders: []string{correlationHeader},
		MaxAge:        12 * time.Hour,
	}
	if frontendURL == "" {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = []string{frontendURL}
	cfg.AllowCredentials = true
	return cfg
}

// Handler returns the root HTTP handler.
func (server *Server) Handler() http.Handler {
	return server.router
}

// Start runs the HTTP server on the given address. It returns nil after a
// graceful Shutdown.
func (server *Server) Start(address string) error {
	server.httpServer = &http.Server{
		Addr:              address,
		Handler:           server.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	err := server.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (server *Server) Shutdown(ctx context.Context) error {
	if server.httpServer == nil {
		return nil
	}
	if err := server.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

////////////////////////////////////////////////////////////////////////
// Helpers
////////////////////////////////////////////////////////////////////////

// errorResponse wraps an error in the standard {"error": "..."} body.
func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}

// errorMessage is errorResponse for fixed user-facing messages.
func errorMessage(msg string) gin.H {
	return gin.H{"error": msg}
}
