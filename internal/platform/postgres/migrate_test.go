package postgres

import (
	"context"
	"io/fs"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var migrationNamePattern = regexp.MustCompile(`^\d{5}_[a-z0-9_]+\.sql$`)

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(migrationsFS, migrationsDir+"/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files, "migrations must be embedded in the binary")

	for _, name := range files {
		base := strings.TrimPrefix(name, migrationsDir+"/")
		assert.Regexp(t, migrationNamePattern, base)

		body, err := fs.ReadFile(migrationsFS, name)
		require.NoError(t, err)
		assert.Contains(t, string(body), "-- +goose Up", "%s has no Up section", base)
		assert.Contains(t, string(body), "-- +goose Down", "%s has no Down section", base)
	}
}

func TestMigrateRejectsUnknownCommand(t *testing.T) {
	err := Migrate(context.Background(), nil, "sideways", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown migration command "sideways"`)
}
