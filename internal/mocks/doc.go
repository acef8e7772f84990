// Package mocks provides hand-written test doubles for the store interfaces.
//
// Each mock exposes a function field per method; unset fields fall back to
// the mock's default return values:
//
//	mockStore := &mocks.MockFlashcardStore{
//	    GetByIDFn: func(ctx context.Context, id domain.FlashcardID) (*domain.StoredFlashcard, error) {
//	        return nil, store.ErrFlashcardNotFound
//	    },
//	}
package mocks
