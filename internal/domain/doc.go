// Package domain holds the flashcard entity, its identifier type and the
// validation errors shared by the API and storage layers.
package domain
