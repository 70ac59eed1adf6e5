package contact

import (
	"context"

	"github.com/google/uuid"
)

// Service owns contact-message handling. Messages are append-only from
// the public site; the admin panel reads and deletes them.
type Service interface {
	Create(ctx context.Context, req *CreateMessageRequest) (*ContactMessage, error)
	GetAll(ctx context.Context) ([]ContactMessage, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
