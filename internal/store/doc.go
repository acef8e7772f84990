// Package store defines the persistence contract for flashcards and the
// errors every storage adapter reports. Implementations live under
// internal/platform.
package store
