// Package api handles incoming HTTP requests for flashcards: request
// decoding and validation, invoking the flashcard store, and mapping
// outcomes to JSON responses.
package api
