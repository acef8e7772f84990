package mocks

import (
	"context"

	"github.com/phrazzld/flashcards-api/internal/domain"
	"github.com/phrazzld/flashcards-api/internal/store"
)

var _ store.FlashcardStore = (*MockFlashcardStore)(nil)

// MockFlashcardStore implements store.FlashcardStore for testing
type MockFlashcardStore struct {
	CreateFn  func(ctx context.Context, card domain.Flashcard) (*domain.StoredFlashcard, error)
	ListFn    func(ctx context.Context) ([]domain.StoredFlashcard, error)
	GetByIDFn func(ctx context.Context, id domain.FlashcardID) (*domain.StoredFlashcard, error)
	UpdateFn  func(ctx context.Context, id domain.FlashcardID, card domain.Flashcard) (*domain.StoredFlashcard, error)
	DeleteFn  func(ctx context.Context, id domain.FlashcardID) error
	CloseFn   func() error

	// Default return values
	Flashcard    *domain.StoredFlashcard
	Flashcards   []domain.StoredFlashcard
	DefaultError error

	// Calls counts invocations per method name.
	Calls map[string]int
}

func (m *MockFlashcardStore) record(method string) {
	if m.Calls == nil {
		m.Calls = make(map[string]int)
	}
	m.Calls[method]++
}

// Create implements the FlashcardStore.Create method
func (m *MockFlashcardStore) Create(ctx context.Context, card domain.Flashcard) (*domain.StoredFlashcard, error) {
	m.record("Create")
	if m.CreateFn != nil {
		return m.CreateFn(ctx, card)
	}
	return m.Flashcard, m.DefaultError
}

// List implements the FlashcardStore.List method
func (m *MockFlashcardStore) List(ctx context.Context) ([]domain.StoredFlashcard, error) {
	m.record("List")
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Flashcards, m.DefaultError
}

// GetByID implements the FlashcardStore.GetByID method
func (m *MockFlashcardStore) GetByID(ctx context.Context, id domain.FlashcardID) (*domain.StoredFlashcard, error) {
	m.record("GetByID")
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.Flashcard, m.DefaultError
}

// Update implements the FlashcardStore.Update method
func (m *MockFlashcardStore) Update(
	ctx context.Context,
	id domain.FlashcardID,
	card domain.Flashcard,
) (*domain.StoredFlashcard, error) {
	m.record("Update")
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, card)
	}
	return m.Flashcard, m.DefaultError
}

// Delete implements the FlashcardStore.Delete method
func (m *MockFlashcardStore) Delete(ctx context.Context, id domain.FlashcardID) error {
	m.record("Delete")
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.DefaultError
}

// Close implements the FlashcardStore.Close method
func (m *MockFlashcardStore) Close() error {
	m.record("Close")
	if m.CloseFn != nil {
		return m.CloseFn()
	}
	return nil
}
