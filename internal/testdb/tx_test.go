//go:build integration

package testdb

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countFlashcards(t *testing.T, q interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}) int {
	t.Helper()

	var n int
	require.NoError(t, q.QueryRowContext(context.Background(), "SELECT count(*) FROM flashcards").Scan(&n))
	return n
}

func TestWithTxRollsBack(t *testing.T) {
	db := Open(t)

	WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		_, err := tx.Exec(`INSERT INTO flashcards (document) VALUES ('{"question":"q","answer":"a"}')`)
		require.NoError(t, err)
		assert.Equal(t, 1, countFlashcards(t, tx))
	})

	assert.Equal(t, 0, countFlashcards(t, db))
}

func TestBeginTxRollsBackOnCleanup(t *testing.T) {
	db := Open(t)

	t.Run("insert inside tx", func(t *testing.T) {
		tx := BeginTx(t, db)
		_, err := tx.Exec(`INSERT INTO flashcards (document) VALUES ('{"question":"q","answer":"a"}')`)
		require.NoError(t, err)
	})

	assert.Equal(t, 0, countFlashcards(t, db))
}
