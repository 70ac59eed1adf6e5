package testimonial

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// Service owns the testimonial write rules.
type Service interface {
	// Create writes a new testimonial; the client photo is optional.
	Create(ctx context.Context, form *TestimonialFormData, image io.Reader) (*Testimonial, error)

	GetAll(ctx context.Context) ([]Testimonial, error)

	// GetFeatured is GetAll narrowed in-process to featured == true;
	// the filter is not pushed into the store.
	GetFeatured(ctx context.Context) ([]Testimonial, error)

	GetByID(ctx context.Context, id uuid.UUID) (*Testimonial, error)

	// Update replaces the photo only when a new file is supplied.
	Update(ctx context.Context, id uuid.UUID, form *TestimonialFormData, image io.Reader) (*Testimonial, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
