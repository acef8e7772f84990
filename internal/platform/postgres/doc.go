// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces defined in the internal/store package. Flashcards are kept
// as JSONB documents keyed by a database-assigned UUID, so the table behaves as
// a schema-flexible document collection.
package postgres
