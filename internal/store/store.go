// Package store keeps board sessions: a FEN record under a generated id.
package store

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lgbarn/boardstate-go/internal/errors"
)

// Store holds sessions. Implementations are safe for concurrent use.
// Unknown or malformed ids return an error wrapping
// errors.ErrSessionNotFound.
type Store interface {
	// Create stores a record under a new id and returns the id.
	Create(record string) (string, error)
	// Load returns the record of a session.
	Load(id string) (string, error)
	// Save replaces the record of an existing session.
	Save(id, record string) error
	// Delete removes a session.
	Delete(id string) error
	// Count returns the number of sessions.
	Count() (int, error)
	// Close releases resources held by the store.
	Close() error
}

// newID generates a session id.
func newID() string {
	return uuid.NewString()
}

// checkID rejects ids that could not have been issued by newID.
func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return notFound(id)
	}
	return nil
}

func notFound(id string) error {
	return fmt.Errorf("session %q: %w", id, errors.ErrSessionNotFound)
}
