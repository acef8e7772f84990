//go:build integration

package testdb

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/phrazzld/flashcards-api/internal/config"
	"github.com/phrazzld/flashcards-api/internal/platform/postgres"
	"github.com/phrazzld/flashcards-api/internal/redact"
	"github.com/stretchr/testify/require"
)

// TestTimeout bounds each setup step against the test database.
const TestTimeout = 10 * time.Second

// Open connects to the test database, applies all migrations and empties
// the flashcards table. The pool is closed when the test ends.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		if IsCI() {
			t.Fatalf("%s must be set for integration tests in CI", EnvDatabaseURL)
		}
		t.Skipf("%s not set; skipping postgres integration test", EnvDatabaseURL)
	}

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	db, err := postgres.Open(ctx, config.DatabaseConfig{
		Driver:       config.DriverPostgres,
		URL:          dbURL,
		MaxOpenConns: 5,
		MaxIdleConns: 2,
	}, nil)
	require.NoError(t, err, "failed to open test database at %s", redact.String(dbURL))
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, postgres.Migrate(ctx, db, "up", nil), "failed to migrate test database")
	Reset(t, db)

	return db
}

// Reset removes every flashcard row.
func Reset(t *testing.T, db *sql.DB) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	_, err := db.ExecContext(ctx, "TRUNCATE flashcards")
	require.NoError(t, err, "failed to truncate flashcards")
}
