package api

import (
	"github.com/phrazzld/flashcards-api/internal/domain"
)

// FlashcardRequest is the payload for creating or replacing a flashcard.
// Pointer fields distinguish a missing or null value from an empty string.
type FlashcardRequest struct {
	Question *string `json:"question" validate:"required"`
	Answer   *string `json:"answer"   validate:"required"`
}

// toDomain assumes the request has passed validation.
func (r FlashcardRequest) toDomain() domain.Flashcard {
	return domain.Flashcard{
		Question: *r.Question,
		Answer:   *r.Answer,
	}
}

// FlashcardResponse is the wire form of a stored flashcard.
type FlashcardResponse struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func flashcardToResponse(card *domain.StoredFlashcard) FlashcardResponse {
	return FlashcardResponse{
		ID:       card.ID.String(),
		Question: card.Question,
		Answer:   card.Answer,
	}
}

func flashcardsToResponse(cards []domain.StoredFlashcard) []FlashcardResponse {
	out := make([]FlashcardResponse, 0, len(cards))
	for i := range cards {
		out = append(out, flashcardToResponse(&cards[i]))
	}
	return out
}
