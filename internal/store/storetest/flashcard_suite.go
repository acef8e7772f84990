// Package storetest holds behavioral tests shared by every
// store.FlashcardStore implementation.
package storetest

import (
	"context"
	"fmt"
	"testing"

	"github.com/phrazzld/flashcards-api/internal/domain"
	"github.com/phrazzld/flashcards-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory returns an empty store for a single subtest. Implementations
// register their own cleanup with t.Cleanup.
type Factory func(t *testing.T) store.FlashcardStore

// RunFlashcardStoreTests exercises the store.FlashcardStore contract.
func RunFlashcardStoreTests(t *testing.T, newStore Factory) {
	t.Helper()

	t.Run("create then get returns same fields", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		created, err := s.Create(ctx, domain.Flashcard{Question: "2+2", Answer: "4"})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.True(t, created.ID.Valid(), "store must assign a valid id, got %q", created.ID)
		assert.Equal(t, "2+2", created.Question)
		assert.Equal(t, "4", created.Answer)

		fetched, err := s.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, *created, *fetched)
	})

	t.Run("empty strings are stored as given", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		created, err := s.Create(ctx, domain.Flashcard{Question: "", Answer: ""})
		require.NoError(t, err)

		fetched, err := s.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "", fetched.Question)
		assert.Equal(t, "", fetched.Answer)
	})

	t.Run("update replaces both fields and keeps id", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		created, err := s.Create(ctx, domain.Flashcard{Question: "2+2", Answer: "4"})
		require.NoError(t, err)

		updated, err := s.Update(ctx, created.ID, domain.Flashcard{Question: "2+2", Answer: "four"})
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "four", updated.Answer)

		fetched, err := s.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, fetched.ID)
		assert.Equal(t, "2+2", fetched.Question)
		assert.Equal(t, "four", fetched.Answer)
	})

	t.Run("delete removes the record", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		created, err := s.Create(ctx, domain.Flashcard{Question: "q", Answer: "a"})
		require.NoError(t, err)

		require.NoError(t, s.Delete(ctx, created.ID))

		_, err = s.GetByID(ctx, created.ID)
		assert.ErrorIs(t, err, store.ErrFlashcardNotFound)

		err = s.Delete(ctx, created.ID)
		assert.ErrorIs(t, err, store.ErrFlashcardNotFound)
	})

	t.Run("unknown id reports not found", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		unknown := domain.NewFlashcardID()

		_, err := s.GetByID(ctx, unknown)
		assert.ErrorIs(t, err, store.ErrFlashcardNotFound)

		_, err = s.Update(ctx, unknown, domain.Flashcard{Question: "q", Answer: "a"})
		assert.ErrorIs(t, err, store.ErrFlashcardNotFound)

		err = s.Delete(ctx, unknown)
		assert.ErrorIs(t, err, store.ErrFlashcardNotFound)
	})

	t.Run("malformed id reports invalid id", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		malformed := domain.FlashcardID("not-an-id")

		_, err := s.GetByID(ctx, malformed)
		assert.ErrorIs(t, err, store.ErrInvalidID)

		_, err = s.Update(ctx, malformed, domain.Flashcard{Question: "q", Answer: "a"})
		assert.ErrorIs(t, err, store.ErrInvalidID)

		err = s.Delete(ctx, malformed)
		assert.ErrorIs(t, err, store.ErrInvalidID)
	})

	t.Run("list returns every created record once", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		const n = 5
		want := make(map[domain.FlashcardID]domain.Flashcard, n)
		for i := 0; i < n; i++ {
			card := domain.Flashcard{
				Question: fmt.Sprintf("question %d", i),
				Answer:   fmt.Sprintf("answer %d", i),
			}
			created, err := s.Create(ctx, card)
			require.NoError(t, err)
			want[created.ID] = card
		}

		cards, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, cards, n)

		seen := make(map[domain.FlashcardID]bool, n)
		for _, c := range cards {
			assert.False(t, seen[c.ID], "duplicate id %s in list", c.ID)
			seen[c.ID] = true
			assert.Equal(t, want[c.ID], c.Flashcard)
		}
	})

	t.Run("list on empty collection is empty", func(t *testing.T) {
		s := newStore(t)

		cards, err := s.List(context.Background())
		require.NoError(t, err)
		assert.Empty(t, cards)
	})
}
