//go:build integration

package testdb

import (
	"os"

	"github.com/phrazzld/flashcards-api/internal/platform/logger"
)

// Environment variables consulted for the test database URL, in order.
const (
	EnvDatabaseURL           = "DATABASE_URL"
	EnvFlashcardsDatabaseURL = "FLASHCARDS_DATABASE_URL"
)

// GetTestDatabaseURL returns the first non-empty database URL variable.
func GetTestDatabaseURL() string {
	for _, name := range []string{EnvDatabaseURL, EnvFlashcardsDatabaseURL} {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// IsCI reports whether the process runs under a CI provider.
func IsCI() bool {
	return logger.IsCI()
}
