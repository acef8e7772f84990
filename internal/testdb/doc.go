//go:build integration

// Package testdb provides helpers for tests that run against a real
// PostgreSQL database.
//
// Tests call Open to obtain a migrated, empty database and then isolate
// their writes with WithTx or BeginTx, which roll back when the test ends:
//
//	db := testdb.Open(t)
//	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	    s := postgres.NewPostgresFlashcardStore(tx, nil)
//	    // ...
//	})
//
// When no database URL is configured the test is skipped locally and
// fails in CI.
package testdb
