package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pranav244872/cvreview/api"
	"github.com/pranav244872/cvreview/catalog"
	db "github.com/pranav244872/cvreview/db/sqlc"
	"github.com/pranav244872/cvreview/db/migration"
	"github.com/pranav244872/cvreview/llm"
	"github.com/pranav244872/cvreview/metrics"
	"github.com/pranav244872/cvreview/review"
	"github.com/pranav244872/cvreview/skillz"
	"github.com/pranav244872/cvreview/storage"
	"github.com/pranav244872/cvreview/token"
	"github.com/spf13/cobra"
)

var (
	serveMigrate bool
	serveMemory  bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Run the HTTP API until SIGINT or SIGTERM.

With --memory the catalog is loaded from the seed file instead of PostgreSQL,
which is enough to try the service locally.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&serveMigrate, "migrate", false, "apply database migrations before serving")
	serveCmd.Flags().BoolVar(&serveMemory, "memory", false, "serve the seed catalog from memory, without a database")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("✅ Configuration loaded successfully.")

	deps := api.Dependencies{
		Metrics: metrics.New(),
		Logger:  log,
	}

	// Step 1: Set up the catalog and its alias map
	var aliasMap map[string]string
	if serveMemory {
		entries, err := catalog.LoadSeed(cfg.SeedFile)
		if err != nil {
			return fmt.Errorf("could not load seed catalog: %w", err)
		}
		deps.Catalog = catalog.NewMemory(catalog.Skills(entries)...)
		aliasMap = catalog.AliasMap(entries)
		log.WithField("skills", len(entries)).Info("✅ In-memory catalog loaded from seed.")
	} else {
		pool, err := openPool(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()
		log.Info("✅ Database connection pool established.")

		if serveMigrate {
			if err := migration.NewManager(pool, log).Up(); err != nil {
				return err
			}
		}

		pgCatalog := catalog.NewPostgresCatalog(db.NewStore(pool), log)
		deps.Catalog = pgCatalog
		deps.DB = pool

		// Step 2: Load skill aliases to build the normalizer
		log.Info("🔄 Loading skill aliases from the database...")
		aliasMap, err = pgCatalog.LoadAliasMap(ctx)
		if err != nil {
			return fmt.Errorf("could not load skill aliases: %w", err)
		}
	}
	log.WithField("aliases", len(aliasMap)).Info("✅ Skill aliases loaded.")
	deps.Normalizer = skillz.NewNormalizer(aliasMap)

	// Step 3: Upload storage
	store, err := storage.New(ctx, storage.Config{
		Provider: cfg.StorageProvider,
		Dir:      cfg.UploadDir,
		S3: storage.S3Config{
			Bucket:    cfg.S3Bucket,
			Prefix:    cfg.S3Prefix,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		},
	})
	if err != nil {
		return fmt.Errorf("could not set up upload storage: %w", err)
	}
	deps.Storage = store
	log.WithField("provider", cfg.StorageProvider).Info("✅ Upload storage ready.")

	// Step 4: Gemini backed reviewer and skill processor
	geminiClient, err := llm.NewGeminiClient(ctx, llm.GeminiConfig{
		APIKey:      cfg.GeminiAPIKey,
		Model:       cfg.GeminiModel,
		MaxAttempts: cfg.LLMMaxAttempts,
	}, log)
	if err != nil {
		return err
	}
	deps.Reviewer = review.NewReviewer(geminiClient, store, log)
	deps.Processor = skillz.NewLLMProcessor(geminiClient, deps.Normalizer)
	log.Info("✅ Reviewer and skillz processor (Gemini) initialized.")

	// Step 5: Token maker for the admin API
	deps.TokenMaker, err = token.NewJWTMaker(cfg.TokenSymmetricKey)
	if err != nil {
		return fmt.Errorf("could not create token maker: %w", err)
	}

	// Step 6: Create the API server
	server, err := api.NewServer(cfg, deps)
	if err != nil {
		return fmt.Errorf("could not create the server: %w", err)
	}
	log.Info("✅ API server created.")

	// Step 7: Serve until a signal arrives, then drain
	errCh := make(chan error, 1)
	go func() {
		log.Infof("🚀 Starting server on %s", cfg.ServerAddress)
		errCh <- server.Start(cfg.ServerAddress)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("🛑 Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return <-errCh
}
