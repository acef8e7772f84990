package store

import (
	"context"

	"github.com/phrazzld/flashcards-api/internal/domain"
)

// FlashcardStore defines the interface for flashcard persistence.
// Each method performs exactly one document operation against the store.
type FlashcardStore interface {
	// Create inserts a new document holding the flashcard fields.
	// The store assigns the identifier; the full stored record is returned.
	// Returns a *StoreError if the write fails.
	Create(ctx context.Context, card domain.Flashcard) (*domain.StoredFlashcard, error)

	// List returns every flashcard currently in the collection.
	// The slice is fully materialized; ordering is not guaranteed across calls.
	List(ctx context.Context) ([]domain.StoredFlashcard, error)

	// GetByID retrieves a flashcard by its identifier.
	// Returns ErrFlashcardNotFound if no record exists and ErrInvalidID
	// if the identifier is malformed.
	GetByID(ctx context.Context, id domain.FlashcardID) (*domain.StoredFlashcard, error)

	// Update replaces both fields of an existing flashcard and returns the
	// updated record. The identifier is never changed.
	// Returns ErrFlashcardNotFound or ErrInvalidID as GetByID does.
	Update(
		ctx context.Context,
		id domain.FlashcardID,
		card domain.Flashcard,
	) (*domain.StoredFlashcard, error)

	// Delete removes a flashcard permanently.
	// Returns ErrFlashcardNotFound if nothing was removed.
	Delete(ctx context.Context, id domain.FlashcardID) error

	// Close releases the store's connection resources.
	Close() error
}
