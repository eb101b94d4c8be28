// Package cmd holds the cvreview command line.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pranav244872/cvreview/config"
	"github.com/pranav244872/cvreview/logger"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configPath string

	cfg config.Config
	log *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:          "cvreview",
	Short:        "CV review service with skill-gap analysis",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `cvreview reviews uploaded CVs with Gemini and compares the skills found
in them against a PostgreSQL skill catalog.

Configuration is read from app.env in the config directory and the environment.`,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".", "directory containing app.env")
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("could not load configuration: %w", err)
	}
	cfg = loaded
	log = logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	return nil
}

// openPool connects to DB_SOURCE and checks the connection.
func openPool(ctx context.Context) (*pgxpool.Pool, error) {
	if cfg.DBSource == "" {
		return nil, fmt.Errorf("DB_SOURCE is not set")
	}

	pool, err := pgxpool.New(ctx, cfg.DBSource)
	if err != nil {
		return nil, fmt.Errorf("could not connect to the database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("could not reach the database: %w", err)
	}
	return pool, nil
}
