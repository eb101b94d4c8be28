// Package migration holds the database schema and applies it with golang-migrate.
package migration

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/sirupsen/logrus"
)

//go:embed *.sql
var migrationFS embed.FS

// Manager applies the embedded migrations to a database.
type Manager struct {
	pool *pgxpool.Pool
	log  logrus.FieldLogger
}

// NewManager creates a migration manager from a pgx pool.
func NewManager(pool *pgxpool.Pool, log logrus.FieldLogger) *Manager {
	return &Manager{pool: pool, log: log}
}

// Up applies every pending migration.
func (m *Manager) Up() error {
	migrator, err := m.createMigrator()
	if err != nil {
		return err
	}
	defer func() {
		_, _ = migrator.Close()
	}()

	m.log.Info("Starting database migrations")

	if err := migrator.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			m.log.Info("No new migrations to apply")
			return nil
		}
		return fmt.Errorf("run migrations: %w", err)
	}

	m.log.Info("Successfully applied migrations")
	return nil
}

// Down rolls back the given number of migrations.
func (m *Manager) Down(steps int) error {
	migrator, err := m.createMigrator()
	if err != nil {
		return err
	}
	defer func() {
		_, _ = migrator.Close()
	}()

	if err := migrator.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("roll back %d migrations: %w", steps, err)
	}

	m.log.WithField("steps", steps).Info("Rolled back migrations")
	return nil
}

func (m *Manager) createMigrator() (*migrate.Migrate, error) {
	sourceDriver, err := iofs.New(migrationFS, ".")
	if err != nil {
		return nil, fmt.Errorf("create embedded migration source: %w", err)
	}

	driver, err := postgres.WithInstance(stdlib.OpenDBFromPool(m.pool), &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("create postgres driver: %w", err)
	}

	migrator, err := migrate.NewWithInstance("iofs", sourceDriver, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("create migrator: %w", err)
	}

	return migrator, nil
}
