package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/phrazzld/flashcards-api/internal/domain"
	"github.com/phrazzld/flashcards-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes so that
// internal error types never reach clients.
//
// A malformed identifier is reported as not found: no such record can exist.
func MapErrorToStatusCode(err error) int {
	switch {
	case store.IsNotFoundError(err),
		errors.Is(err, domain.ErrInvalidID):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case store.IsNotFoundError(err),
		errors.Is(err, domain.ErrInvalidID):
		return "Flashcard not found"

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return "Invalid flashcard data"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError turns a request decoding or validation failure
// into a message that names the offending field without echoing input.
func SanitizeValidationError(err error) string {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return fmt.Sprintf("Invalid %s: %s", validationErr.Field, validationErr.Message)
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "unknown field"):
		return "Invalid request format: unknown field"
	case strings.Contains(msg, "cannot unmarshal"):
		return "Invalid request format: field has the wrong type"
	}
	return "Invalid request format"
}
