package service

import (
	"context"
	"io"

	"github.com/google/uuid"

	"consulting-backend/internal/domains/testimonial"
	"consulting-backend/internal/infrastructure/storage"
)

// testimonialService implements testimonial.Service.
type testimonialService struct {
	repo    testimonial.Repository
	encoder storage.Encoder
}

func NewTestimonialService(repo testimonial.Repository, encoder storage.Encoder) testimonial.Service {
	return &testimonialService{
		repo:    repo,
		encoder: encoder,
	}
}

func (s *testimonialService) Create(ctx context.Context, form *testimonial.TestimonialFormData, image io.Reader) (*testimonial.Testimonial, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	// Photo is optional; when present it must encode before the write.
	var imageURL string
	if image != nil {
		encoded, err := s.encoder.EncodeDataURI(image)
		if err != nil {
			return nil, err
		}
		imageURL = encoded
	}

	t := &testimonial.Testimonial{
		ClientName:      form.ClientName,
		ClientPosition:  form.ClientPosition,
		ClientCompany:   form.ClientCompany,
		TestimonialText: form.TestimonialText,
		ImageURL:        imageURL,
		Featured:        form.Featured,
	}

	return s.repo.Create(ctx, t)
}

func (s *testimonialService) GetAll(ctx context.Context) ([]testimonial.Testimonial, error) {
	return s.repo.GetAll(ctx)
}

// GetFeatured filters the full fetch in-process rather than pushing a
// predicate into the store; the homepage carousel reads this.
func (s *testimonialService) GetFeatured(ctx context.Context) ([]testimonial.Testimonial, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	featured := make([]testimonial.Testimonial, 0, len(all))
	for _, t := range all {
		if t.Featured {
			featured = append(featured, t)
		}
	}

	return featured, nil
}

func (s *testimonialService) GetByID(ctx context.Context, id uuid.UUID) (*testimonial.Testimonial, error) {
	if id == uuid.Nil {
		return nil, testimonial.ErrTestimonialNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *testimonialService) Update(ctx context.Context, id uuid.UUID, form *testimonial.TestimonialFormData, image io.Reader) (*testimonial.Testimonial, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Keep the stored photo unless a new file was supplied.
	imageURL := current.ImageURL
	if image != nil {
		imageURL, err = s.encoder.EncodeDataURI(image)
		if err != nil {
			return nil, err
		}
	}

	updated := &testimonial.Testimonial{
		ID:              current.ID,
		ClientName:      form.ClientName,
		ClientPosition:  form.ClientPosition,
		ClientCompany:   form.ClientCompany,
		TestimonialText: form.TestimonialText,
		ImageURL:        imageURL,
		Featured:        form.Featured,
	}

	return s.repo.Update(ctx, updated)
}

func (s *testimonialService) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return testimonial.ErrTestimonialNotFound
	}
	return s.repo.Delete(ctx, id)
}
