// db/main_test.go
package db

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
)

// testQueries is used for direct, simple queries in tests.
var testQueries *Queries

// testPool backs both testQueries and the Store under test.
var testPool *pgxpool.Pool

// TestMain connects to TEST_DB_SOURCE when it is set. Without it the
// database tests skip, so `go test ./...` works on a laptop without Postgres.
func TestMain(m *testing.M) {
	dbSource := os.Getenv("TEST_DB_SOURCE")
	if dbSource != "" {
		var err error
		testPool, err = pgxpool.New(context.Background(), dbSource)
		if err != nil {
			log.Fatalf("cannot create db pool: %v", err)
		}
		testQueries = New(testPool)
	}

	code := m.Run()
	if testPool != nil {
		testPool.Close()
	}
	os.Exit(code)
}

func requireDB(t *testing.T) {
	t.Helper()
	if testPool == nil {
		t.Skip("TEST_DB_SOURCE not set; skipping database test")
	}
}
