package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data-access contract for admin accounts.
type Repository interface {
	Create(ctx context.Context, admin *Admin) error

	// FindByEmail returns ErrAdminNotFound when no account matches.
	FindByEmail(ctx context.Context, email string) (*Admin, error)

	// FindByID returns ErrAdminNotFound when no account matches.
	FindByID(ctx context.Context, id uuid.UUID) (*Admin, error)

	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error

	UpdateLastLogin(ctx context.Context, id uuid.UUID) error

	// Count returns the number of admin accounts. Used to decide whether
	// the bootstrap admin needs to be seeded.
	Count(ctx context.Context) (int, error)
}
