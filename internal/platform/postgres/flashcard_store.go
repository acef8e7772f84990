package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/georgysavva/scany/v2/sqlscan"
	"github.com/phrazzld/flashcards-api/internal/domain"
	"github.com/phrazzld/flashcards-api/internal/platform/logger"
	"github.com/phrazzld/flashcards-api/internal/redact"
	"github.com/phrazzld/flashcards-api/internal/store"
)

const flashcardEntity = "flashcard"

// flashcardDocument is the JSONB body persisted for each flashcard.
type flashcardDocument struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// flashcardRow is a row of the flashcards collection as read back by queries.
type flashcardRow struct {
	ID       string `db:"id"`
	Document []byte `db:"document"`
}

// PostgresFlashcardStore implements the store.FlashcardStore interface
// using a PostgreSQL JSONB table as the document collection.
type PostgresFlashcardStore struct {
	db     store.DBTX
	closer func() error
	logger *slog.Logger
}

// NewPostgresFlashcardStore creates a new PostgreSQL implementation of the FlashcardStore interface.
// It accepts a database connection or transaction that should be initialized by the caller.
// When db is a *sql.DB, Close closes it; otherwise Close is a no-op.
// If logger is nil, a default logger will be used.
func NewPostgresFlashcardStore(db store.DBTX, logger *slog.Logger) *PostgresFlashcardStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	s := &PostgresFlashcardStore{
		db:     db,
		closer: func() error { return nil },
		logger: logger.With(slog.String("component", "flashcard_store"), slog.String("driver", "postgres")),
	}
	if sqlDB, ok := db.(*sql.DB); ok {
		s.closer = sqlDB.Close
	}
	return s
}

// Ensure PostgresFlashcardStore implements store.FlashcardStore interface
var _ store.FlashcardStore = (*PostgresFlashcardStore)(nil)

// Create implements store.FlashcardStore.Create
// The identifier is assigned by the database default.
func (s *PostgresFlashcardStore) Create(
	ctx context.Context,
	card domain.Flashcard,
) (*domain.StoredFlashcard, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Encode the document body; NUL characters are rejected here
	doc, err := encodeDocument(card)
	if err != nil {
		return nil, store.NewStoreError(flashcardEntity, "create", "failed to encode document", err)
	}

	// Insert and read back the generated id in one round trip
	query := `
		INSERT INTO flashcards (document)
		VALUES ($1)
		RETURNING id, document
	`

	var row flashcardRow
	if err := s.db.QueryRowContext(ctx, query, string(doc)).Scan(&row.ID, &row.Document); err != nil {
		log.Error("failed to create flashcard", slog.String("error", redact.Error(err)))
		// No id is bound here, so invalid text is a server fault, not a bad id
		return nil, store.NewStoreError(flashcardEntity, "create", "failed to insert document", MapError(err))
	}

	// Decode the stored row back into the domain shape
	created, err := row.toDomain()
	if err != nil {
		return nil, store.NewStoreError(flashcardEntity, "create", "failed to decode document", err)
	}

	log.Debug("flashcard created", slog.String("flashcard_id", created.ID.String()))
	return created, nil
}

// List implements store.FlashcardStore.List
func (s *PostgresFlashcardStore) List(ctx context.Context) ([]domain.StoredFlashcard, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Insertion order, with id as a tiebreaker for equal timestamps
	query := `
		SELECT id, document
		FROM flashcards
		ORDER BY created_at, id
	`

	var rows []flashcardRow
	if err := sqlscan.Select(ctx, s.db, &rows, query); err != nil {
		log.Error("failed to list flashcards", slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError(flashcardEntity, "list", "failed to query documents", MapError(err))
	}

	// Convert rows to domain objects; an empty table yields an empty slice
	cards := make([]domain.StoredFlashcard, 0, len(rows))
	for _, row := range rows {
		card, err := row.toDomain()
		if err != nil {
			return nil, store.NewStoreError(flashcardEntity, "list", "failed to decode document", err)
		}
		cards = append(cards, *card)
	}

	log.Debug("flashcards listed", slog.Int("count", len(cards)))
	return cards, nil
}

// GetByID implements store.FlashcardStore.GetByID
func (s *PostgresFlashcardStore) GetByID(
	ctx context.Context,
	id domain.FlashcardID,
) (*domain.StoredFlashcard, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Reject malformed ids before touching the database
	key, err := domain.ParseFlashcardID(string(id))
	if err != nil {
		return nil, store.ErrInvalidID
	}

	query := `
		SELECT id, document
		FROM flashcards
		WHERE id = $1
	`

	var row flashcardRow
	err = s.db.QueryRowContext(ctx, query, key.String()).Scan(&row.ID, &row.Document)
	if err != nil {
		// Handle not found and malformed id cases
		return nil, s.lookupError(log, "get", key, err)
	}

	card, err := row.toDomain()
	if err != nil {
		return nil, store.NewStoreError(flashcardEntity, "get", "failed to decode document", err)
	}
	return card, nil
}

// Update implements store.FlashcardStore.Update
// Both fields are replaced in a single statement; the id is untouched.
func (s *PostgresFlashcardStore) Update(
	ctx context.Context,
	id domain.FlashcardID,
	card domain.Flashcard,
) (*domain.StoredFlashcard, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Reject malformed ids before touching the database
	key, err := domain.ParseFlashcardID(string(id))
	if err != nil {
		return nil, store.ErrInvalidID
	}

	doc, err := encodeDocument(card)
	if err != nil {
		return nil, store.NewStoreError(flashcardEntity, "update", "failed to encode document", err)
	}

	// Replace the whole document; RETURNING yields no row when the id is absent
	query := `
		UPDATE flashcards
		SET document = $1, updated_at = now()
		WHERE id = $2
		RETURNING id, document
	`

	var row flashcardRow
	err = s.db.QueryRowContext(ctx, query, string(doc), key.String()).Scan(&row.ID, &row.Document)
	if err != nil {
		return nil, s.lookupError(log, "update", key, err)
	}

	updated, err := row.toDomain()
	if err != nil {
		return nil, store.NewStoreError(flashcardEntity, "update", "failed to decode document", err)
	}

	log.Debug("flashcard updated", slog.String("flashcard_id", updated.ID.String()))
	return updated, nil
}

// Delete implements store.FlashcardStore.Delete
func (s *PostgresFlashcardStore) Delete(ctx context.Context, id domain.FlashcardID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Reject malformed ids before touching the database
	key, err := domain.ParseFlashcardID(string(id))
	if err != nil {
		return store.ErrInvalidID
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM flashcards WHERE id = $1`, key.String())
	if err != nil {
		return s.lookupError(log, "delete", key, err)
	}

	// Zero affected rows means the flashcard did not exist
	if err := CheckRowsAffected(result, flashcardEntity); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Debug("flashcard not found for delete", slog.String("flashcard_id", key.String()))
			return store.ErrFlashcardNotFound
		}
		return store.NewStoreError(flashcardEntity, "delete", "failed to read result", err)
	}

	log.Debug("flashcard deleted", slog.String("flashcard_id", key.String()))
	return nil
}

// Close closes the underlying connection pool when the store owns one.
func (s *PostgresFlashcardStore) Close() error {
	return s.closer()
}

// lookupError translates errors from statements addressing a single id.
func (s *PostgresFlashcardStore) lookupError(
	log *slog.Logger,
	operation string,
	id domain.FlashcardID,
	err error,
) error {
	// A malformed id can only surface here, where the id is the uuid parameter
	mapped := MapLookupError(err)
	switch {
	case errors.Is(mapped, store.ErrNotFound):
		log.Debug("flashcard not found",
			slog.String("operation", operation),
			slog.String("flashcard_id", id.String()))
		return store.ErrFlashcardNotFound
	case errors.Is(mapped, store.ErrInvalidID):
		return store.ErrInvalidID
	default:
		log.Error("flashcard query failed",
			slog.String("operation", operation),
			slog.String("flashcard_id", id.String()),
			slog.String("error", redact.Error(err)))
		return store.NewStoreError(flashcardEntity, operation, "query failed", mapped)
	}
}

// encodeDocument marshals the JSONB body. PostgreSQL text cannot hold
// U+0000, so such values are rejected as invalid entities instead of
// failing inside the database.
func encodeDocument(card domain.Flashcard) ([]byte, error) {
	if strings.ContainsRune(card.Question, 0) || strings.ContainsRune(card.Answer, 0) {
		return nil, fmt.Errorf("%w: NUL character is not storable", store.ErrInvalidEntity)
	}
	return json.Marshal(flashcardDocument{Question: card.Question, Answer: card.Answer})
}

func (r flashcardRow) toDomain() (*domain.StoredFlashcard, error) {
	id, err := domain.ParseFlashcardID(r.ID)
	if err != nil {
		return nil, fmt.Errorf("stored id %q: %w", r.ID, err)
	}

	var doc flashcardDocument
	if err := json.Unmarshal(r.Document, &doc); err != nil {
		return nil, fmt.Errorf("stored document for %s: %w", id, err)
	}

	return &domain.StoredFlashcard{
		ID:        id,
		Flashcard: domain.Flashcard{Question: doc.Question, Answer: doc.Answer},
	}, nil
}
