package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/flashcards-api/internal/store"
)

// PostgreSQL error codes
const (
	// invalidTextRepresentationCode is raised when a value, such as a UUID
	// literal, cannot be parsed into the column type.
	invalidTextRepresentationCode = "22P02"

	// untranslatableCharacterCode is raised when jsonb receives \u0000,
	// which PostgreSQL text cannot hold.
	untranslatableCharacterCode = "22P05"

	// characterNotInRepertoireCode is raised for byte sequences that are not
	// valid in the database encoding.
	characterNotInRepertoireCode = "22021"

	// checkViolationCode is the PostgreSQL error code for check constraint violations
	checkViolationCode = "23514"

	// notNullViolationCode is the PostgreSQL error code for not null violations
	notNullViolationCode = "23502"
)

// MapError maps a database error to an appropriate store error.
// It wraps the original error to preserve context for logging.
//
// Invalid text representation is left unmapped: only statements addressing
// a row by id can attribute it to the identifier (see MapLookupError).
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case untranslatableCharacterCode, characterNotInRepertoireCode:
			return fmt.Errorf("%w: unsupported character in document: %v", store.ErrInvalidEntity, err)
		case checkViolationCode:
			return fmt.Errorf(
				"%w: check constraint violation (%s): %v",
				store.ErrInvalidEntity,
				pgErr.ConstraintName,
				err,
			)
		case notNullViolationCode:
			return fmt.Errorf(
				"%w: not null violation (%s): %v",
				store.ErrInvalidEntity,
				pgErr.ColumnName,
				err,
			)
		}
	}

	return err
}

// MapLookupError maps errors from statements whose only text parameter
// cast to uuid is the row id. There, invalid text representation means the
// id is malformed; every other error is handled by MapError.
func MapLookupError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == invalidTextRepresentationCode {
		return fmt.Errorf("%w: %v", store.ErrInvalidID, err)
	}
	return MapError(err)
}

// CheckRowsAffected examines the number of rows affected by a database operation.
// If no rows were affected, it returns a wrapped store.ErrNotFound.
func CheckRowsAffected(result sql.Result, entityName string) error {
	if result == nil {
		return fmt.Errorf("nil result provided to CheckRowsAffected")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		if entityName == "" {
			return store.ErrNotFound
		}
		return fmt.Errorf("%w: %s not found", store.ErrNotFound, entityName)
	}

	return nil
}
