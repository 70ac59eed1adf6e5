package team

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data-access contract for team members.
type Repository interface {
	// Create inserts a new member and returns it with its assigned id.
	Create(ctx context.Context, member *TeamMember) (*TeamMember, error)

	// GetAll returns every member. Order is collection-default; callers
	// must not rely on it.
	GetAll(ctx context.Context) ([]TeamMember, error)

	// GetByID returns ErrMemberNotFound when no member has that id.
	GetByID(ctx context.Context, id uuid.UUID) (*TeamMember, error)

	// Update rewrites the mutable fields with the already-merged entity.
	// created_at is never touched. Returns ErrMemberNotFound when the
	// member does not exist.
	Update(ctx context.Context, member *TeamMember) (*TeamMember, error)

	// Delete removes the member permanently. Returns ErrMemberNotFound
	// when the member does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
