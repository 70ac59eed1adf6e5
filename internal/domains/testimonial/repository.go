package testimonial

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data-access contract for testimonials.
type Repository interface {
	// Create inserts a new testimonial and returns it with its id.
	Create(ctx context.Context, t *Testimonial) (*Testimonial, error)

	// GetAll returns every testimonial, newest first (created_at DESC).
	GetAll(ctx context.Context) ([]Testimonial, error)

	// GetByID returns ErrTestimonialNotFound when no testimonial has
	// that id.
	GetByID(ctx context.Context, id uuid.UUID) (*Testimonial, error)

	// Update rewrites the mutable fields. created_at is never touched.
	Update(ctx context.Context, t *Testimonial) (*Testimonial, error)

	// Delete removes the testimonial permanently.
	Delete(ctx context.Context, id uuid.UUID) error
}
