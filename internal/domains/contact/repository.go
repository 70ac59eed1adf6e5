package contact

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data-access contract for contact messages.
type Repository interface {
	// Create inserts a new message and returns it with its assigned id.
	Create(ctx context.Context, msg *ContactMessage) (*ContactMessage, error)

	// GetAll returns every message, newest first.
	GetAll(ctx context.Context) ([]ContactMessage, error)

	// Delete removes the message permanently. Returns ErrMessageNotFound
	// when the message does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
