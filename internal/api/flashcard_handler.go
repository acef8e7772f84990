package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/flashcards-api/internal/api/shared"
	"github.com/phrazzld/flashcards-api/internal/domain"
	"github.com/phrazzld/flashcards-api/internal/platform/logger"
	"github.com/phrazzld/flashcards-api/internal/redact"
	"github.com/phrazzld/flashcards-api/internal/store"
)

// DeletedMessage is returned in the body of a successful delete.
const DeletedMessage = "Flashcard deleted successfully"

// FlashcardHandler handles flashcard CRUD requests.
type FlashcardHandler struct {
	store  store.FlashcardStore
	logger *slog.Logger
}

// NewFlashcardHandler creates a new FlashcardHandler.
func NewFlashcardHandler(flashcardStore store.FlashcardStore, logger *slog.Logger) *FlashcardHandler {
	if flashcardStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("flashcardStore cannot be nil for FlashcardHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &FlashcardHandler{
		store:  flashcardStore,
		logger: logger.With(slog.String("component", "flashcard_handler")),
	}
}

// CreateFlashcard handles POST /flashcards requests.
func (h *FlashcardHandler) CreateFlashcard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	req, ok := h.decodeFlashcard(w, r)
	if !ok {
		return
	}

	created, err := h.store.Create(r.Context(), req.toDomain())
	if err != nil {
		h.respondWithStoreError(w, r, err, "Failed to create flashcard")
		return
	}

	log.Debug("flashcard created", slog.String("flashcard_id", created.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, flashcardToResponse(created))
}

// ListFlashcards handles GET /flashcards requests.
func (h *FlashcardHandler) ListFlashcards(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	cards, err := h.store.List(r.Context())
	if err != nil {
		h.respondWithStoreError(w, r, err, "Failed to list flashcards")
		return
	}

	log.Debug("flashcards listed", slog.Int("count", len(cards)))
	shared.RespondWithJSON(w, r, http.StatusOK, flashcardsToResponse(cards))
}

// GetFlashcard handles GET /flashcards/{id} requests.
func (h *FlashcardHandler) GetFlashcard(w http.ResponseWriter, r *http.Request) {
	id, ok := h.flashcardID(w, r)
	if !ok {
		return
	}

	card, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		h.respondWithStoreError(w, r, err, "Failed to get flashcard")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, flashcardToResponse(card))
}

// UpdateFlashcard handles PUT /flashcards/{id} requests. Both fields are
// replaced; the identifier never changes.
func (h *FlashcardHandler) UpdateFlashcard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.flashcardID(w, r)
	if !ok {
		return
	}

	req, ok := h.decodeFlashcard(w, r)
	if !ok {
		return
	}

	updated, err := h.store.Update(r.Context(), id, req.toDomain())
	if err != nil {
		h.respondWithStoreError(w, r, err, "Failed to update flashcard")
		return
	}

	log.Debug("flashcard updated", slog.String("flashcard_id", updated.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, flashcardToResponse(updated))
}

// DeleteFlashcard handles DELETE /flashcards/{id} requests.
func (h *FlashcardHandler) DeleteFlashcard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.flashcardID(w, r)
	if !ok {
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		h.respondWithStoreError(w, r, err, "Failed to delete flashcard")
		return
	}

	log.Debug("flashcard deleted", slog.String("flashcard_id", id.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{Message: DeletedMessage})
}

// flashcardID extracts and parses the {id} path parameter. A malformed id
// gets the same 404 as an unknown one.
func (h *FlashcardHandler) flashcardID(w http.ResponseWriter, r *http.Request) (domain.FlashcardID, bool) {
	raw := chi.URLParam(r, "id")

	id, err := domain.ParseFlashcardID(raw)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return "", false
	}
	return id, true
}

func (h *FlashcardHandler) decodeFlashcard(w http.ResponseWriter, r *http.Request) (FlashcardRequest, bool) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req FlashcardRequest
	// Parse request body
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return req, false
	}

	// Validate request; failures wrap domain.ErrValidation and map to 400
	if err := shared.ValidateRequest(req); err != nil {
		log.Warn("validation error", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), SanitizeValidationError(err))
		return req, false
	}

	return req, true
}

// respondWithStoreError maps a store failure to a response. Server errors
// get the operation-specific fallback message.
func (h *FlashcardHandler) respondWithStoreError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	statusCode := MapErrorToStatusCode(err)
	safeMessage := GetSafeErrorMessage(err)
	if statusCode == http.StatusInternalServerError {
		safeMessage = fallback
	}
	shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
}
