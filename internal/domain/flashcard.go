package domain

import (
	"strings"

	"github.com/google/uuid"
)

// FlashcardID is the opaque identifier the store assigns to a flashcard.
// It is carried as a string so that handlers and stores never depend on the
// store's native key type.
type FlashcardID string

// ParseFlashcardID normalizes raw and reports ErrInvalidID when it is not a
// syntactically valid identifier.
func ParseFlashcardID(raw string) (FlashcardID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil || id == uuid.Nil {
		return "", NewValidationError("id", "has invalid format", ErrInvalidID)
	}
	return FlashcardID(id.String()), nil
}

// NewFlashcardID returns a fresh identifier for stores that assign ids
// in-process.
func NewFlashcardID() FlashcardID {
	return FlashcardID(uuid.NewString())
}

// Valid reports whether id is a well-formed identifier.
func (id FlashcardID) Valid() bool {
	_, err := ParseFlashcardID(string(id))
	return err == nil
}

func (id FlashcardID) String() string {
	return string(id)
}

// Flashcard is a question/answer pair.
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// StoredFlashcard is a Flashcard that has been persisted and carries the
// identifier assigned by the store.
type StoredFlashcard struct {
	ID FlashcardID `json:"id"`
	Flashcard
}
