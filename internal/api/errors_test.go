package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/flashcards-api/internal/api/shared"
	"github.com/phrazzld/flashcards-api/internal/domain"
	"github.com/phrazzld/flashcards-api/internal/platform/postgres"
	"github.com/phrazzld/flashcards-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"flashcard not found", store.ErrFlashcardNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", store.ErrNotFound), http.StatusNotFound},
		{"store invalid id", store.ErrInvalidID, http.StatusNotFound},
		{"domain invalid id", domain.NewValidationError("id", "has invalid format", domain.ErrInvalidID), http.StatusNotFound},
		{"validation", domain.NewValidationError("question", "is required", domain.ErrValidation), http.StatusBadRequest},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"store error", store.NewStoreError("flashcard", "list", "failed", errors.New("io")), http.StatusInternalServerError},
		{
			"invalid text on create is a server error",
			store.NewStoreError("flashcard", "create", "failed to insert document",
				postgres.MapError(&pgconn.PgError{Code: "22P02"})),
			http.StatusInternalServerError,
		},
		{
			"invalid text on id lookup is not found",
			postgres.MapLookupError(&pgconn.PgError{Code: "22P02"}),
			http.StatusNotFound,
		},
		{
			"nul rejected by jsonb is bad request",
			store.NewStoreError("flashcard", "update", "query failed",
				postgres.MapError(&pgconn.PgError{Code: "22P05"})),
			http.StatusBadRequest,
		},
		{"unknown", errors.New("something else"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil", nil, "An unexpected error occurred"},
		{"not found", store.ErrFlashcardNotFound, "Flashcard not found"},
		{"invalid id", store.ErrInvalidID, "Flashcard not found"},
		{"invalid entity", store.ErrInvalidEntity, "Invalid flashcard data"},
		{
			"internal details are hidden",
			errors.New("pq: relation \"flashcards\" does not exist at /var/lib/postgresql"),
			"An unexpected error occurred",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, GetSafeErrorMessage(tc.err))
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	t.Run("validation error names the json field", func(t *testing.T) {
		question := "q"
		err := shared.ValidateRequest(FlashcardRequest{Question: &question})
		assert.Equal(t, http.StatusBadRequest, MapErrorToStatusCode(err))
		assert.Equal(t, "Invalid answer: required field", SanitizeValidationError(err))
	})

	t.Run("decoder errors stay generic", func(t *testing.T) {
		assert.Equal(t, "Invalid request format", SanitizeValidationError(errors.New("unexpected EOF")))
		assert.Equal(t, "Invalid request format: unknown field",
			SanitizeValidationError(errors.New(`json: unknown field "secret-value"`)))
	})
}
