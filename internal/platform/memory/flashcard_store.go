package memory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/phrazzld/flashcards-api/internal/domain"
	"github.com/phrazzld/flashcards-api/internal/platform/logger"
	"github.com/phrazzld/flashcards-api/internal/store"
)

// FlashcardStore implements store.FlashcardStore with an in-memory collection.
// Documents are kept in insertion order so List is stable within a process.
type FlashcardStore struct {
	mu     sync.RWMutex
	docs   map[domain.FlashcardID]domain.Flashcard
	order  []domain.FlashcardID
	closed bool
	logger *slog.Logger
}

// Ensure FlashcardStore implements store.FlashcardStore interface
var _ store.FlashcardStore = (*FlashcardStore)(nil)

// NewFlashcardStore creates an empty in-memory flashcard collection.
// If logger is nil, a default logger will be used.
func NewFlashcardStore(logger *slog.Logger) *FlashcardStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &FlashcardStore{
		docs:   make(map[domain.FlashcardID]domain.Flashcard),
		logger: logger.With(slog.String("component", "flashcard_store"), slog.String("driver", "memory")),
	}
}

// Create implements store.FlashcardStore.Create
func (s *FlashcardStore) Create(
	ctx context.Context,
	card domain.Flashcard,
) (*domain.StoredFlashcard, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, errClosed("create")
	}

	id := domain.NewFlashcardID()
	s.docs[id] = card
	s.order = append(s.order, id)

	log.Debug("flashcard created", slog.String("flashcard_id", id.String()))
	return &domain.StoredFlashcard{ID: id, Flashcard: card}, nil
}

// List implements store.FlashcardStore.List
func (s *FlashcardStore) List(ctx context.Context) ([]domain.StoredFlashcard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, errClosed("list")
	}

	cards := make([]domain.StoredFlashcard, 0, len(s.order))
	for _, id := range s.order {
		cards = append(cards, domain.StoredFlashcard{ID: id, Flashcard: s.docs[id]})
	}
	return cards, nil
}

// GetByID implements store.FlashcardStore.GetByID
func (s *FlashcardStore) GetByID(
	ctx context.Context,
	id domain.FlashcardID,
) (*domain.StoredFlashcard, error) {
	key, err := normalize(id)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, errClosed("get")
	}

	card, ok := s.docs[key]
	if !ok {
		return nil, store.ErrFlashcardNotFound
	}
	return &domain.StoredFlashcard{ID: key, Flashcard: card}, nil
}

// Update implements store.FlashcardStore.Update
func (s *FlashcardStore) Update(
	ctx context.Context,
	id domain.FlashcardID,
	card domain.Flashcard,
) (*domain.StoredFlashcard, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	key, err := normalize(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, errClosed("update")
	}

	if _, ok := s.docs[key]; !ok {
		return nil, store.ErrFlashcardNotFound
	}
	s.docs[key] = card

	log.Debug("flashcard updated", slog.String("flashcard_id", key.String()))
	return &domain.StoredFlashcard{ID: key, Flashcard: card}, nil
}

// Delete implements store.FlashcardStore.Delete
func (s *FlashcardStore) Delete(ctx context.Context, id domain.FlashcardID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	key, err := normalize(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errClosed("delete")
	}

	if _, ok := s.docs[key]; !ok {
		return store.ErrFlashcardNotFound
	}
	delete(s.docs, key)
	for i, existing := range s.order {
		if existing == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	log.Debug("flashcard deleted", slog.String("flashcard_id", key.String()))
	return nil
}

// Close marks the store as closed; later calls fail with a StoreError.
func (s *FlashcardStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func normalize(id domain.FlashcardID) (domain.FlashcardID, error) {
	key, err := domain.ParseFlashcardID(string(id))
	if err != nil {
		return "", store.ErrInvalidID
	}
	return key, nil
}

func errClosed(operation string) error {
	return store.NewStoreError("flashcard", operation, "store is closed", nil)
}
