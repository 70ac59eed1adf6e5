package blog

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data-access contract for blog posts. The concrete
// store stays behind this interface so calling code never touches it
// directly.
type Repository interface {
	// Create inserts a new post and returns it with its assigned id.
	Create(ctx context.Context, post *BlogPost) (*BlogPost, error)

	// GetAll returns every post. Order is collection-default; callers
	// must not rely on it.
	GetAll(ctx context.Context) ([]BlogPost, error)

	// GetByID returns ErrBlogNotFound when no post has that id.
	GetByID(ctx context.Context, id uuid.UUID) (*BlogPost, error)

	// Update rewrites the mutable fields. created_at is never touched.
	// Returns ErrBlogNotFound when the post does not exist.
	Update(ctx context.Context, post *BlogPost) (*BlogPost, error)

	// Delete removes the post permanently. Returns ErrBlogNotFound when
	// the post does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
