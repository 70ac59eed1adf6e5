package blog

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// Service owns the blog write rules: slug always recomputed from the
// submitted title, image encoded before any write, created_at stamped
// once and never altered.
type Service interface {
	// Create encodes the mandatory cover image, derives the slug and
	// writes the post. Nothing is written when encoding fails.
	Create(ctx context.Context, form *BlogFormData, image io.Reader) (*BlogPost, error)

	GetAll(ctx context.Context) ([]BlogPost, error)
	GetByID(ctx context.Context, id uuid.UUID) (*BlogPost, error)

	// GetBySlug fetches the full collection and scans for the first
	// matching slug. Duplicate slugs shadow each other silently.
	GetBySlug(ctx context.Context, slug string) (*BlogPost, error)

	// Update recomputes the slug from the submitted title (even when it
	// did not change) and replaces the image only when a new file is
	// supplied.
	Update(ctx context.Context, id uuid.UUID, form *BlogFormData, image io.Reader) (*BlogPost, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
