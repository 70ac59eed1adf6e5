package team

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// Service owns the team-member write rules: optional portrait encoded
// before any write, partial-merge updates, created_at stamped once.
type Service interface {
	// Create writes a new member; the portrait is optional.
	Create(ctx context.Context, req *CreateTeamMemberRequest, image io.Reader) (*TeamMember, error)

	GetAll(ctx context.Context) ([]TeamMember, error)
	GetByID(ctx context.Context, id uuid.UUID) (*TeamMember, error)

	// Update merges only the supplied fields onto the stored member.
	// The portrait follows the request's tri-state: keep, replace with
	// the supplied file, or clear.
	Update(ctx context.Context, id uuid.UUID, req *UpdateTeamMemberRequest, image io.Reader) (*TeamMember, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
