package service

import (
	"context"
	"io"
	"strings"

	"github.com/google/uuid"

	"consulting-backend/internal/domains/blog"
	"consulting-backend/internal/infrastructure/storage"
	"consulting-backend/internal/shared/utils"
)

// blogService implements blog.Service.
type blogService struct {
	repo    blog.Repository
	encoder storage.Encoder
}

func NewBlogService(repo blog.Repository, encoder storage.Encoder) blog.Service {
	return &blogService{
		repo:    repo,
		encoder: encoder,
	}
}

func (s *blogService) Create(ctx context.Context, form *blog.BlogFormData, image io.Reader) (*blog.BlogPost, error) {
	// The form layer validates first; this is a cheap re-check before a write.
	if err := form.Validate(); err != nil {
		return nil, err
	}

	// A post is never created without a cover image.
	if image == nil {
		return nil, blog.ErrImageRequired
	}

	// Encoding must finish before any write; on failure nothing is stored.
	imageURL, err := s.encoder.EncodeDataURI(image)
	if err != nil {
		return nil, err
	}

	post := &blog.BlogPost{
		Title:            form.Title,
		ShortDescription: form.ShortDescription,
		FullContent:      form.FullContent,
		ImageURL:         imageURL,
		TemplateType:     blog.TemplateType(form.TemplateType),
		Slug:             utils.GenerateSlug(form.Title),
	}

	return s.repo.Create(ctx, post)
}

func (s *blogService) GetAll(ctx context.Context) ([]blog.BlogPost, error) {
	return s.repo.GetAll(ctx)
}

func (s *blogService) GetByID(ctx context.Context, id uuid.UUID) (*blog.BlogPost, error) {
	if id == uuid.Nil {
		return nil, blog.ErrBlogNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// GetBySlug loads the whole collection and takes the first match, O(n)
// per lookup. Posts with identical titles share a slug; the first one
// the collection yields wins and the rest are shadowed. That matches
// the links the public site has always produced, so it stays.
func (s *blogService) GetBySlug(ctx context.Context, slug string) (*blog.BlogPost, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, blog.ErrBlogNotFound
	}

	posts, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range posts {
		if posts[i].Slug == slug {
			return &posts[i], nil
		}
	}

	return nil, blog.ErrBlogNotFound
}

func (s *blogService) Update(ctx context.Context, id uuid.UUID, form *blog.BlogFormData, image io.Reader) (*blog.BlogPost, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Keep the stored image unless a new file was supplied.
	imageURL := current.ImageURL
	if image != nil {
		imageURL, err = s.encoder.EncodeDataURI(image)
		if err != nil {
			return nil, err
		}
	}

	updated := &blog.BlogPost{
		ID:               current.ID,
		Title:            form.Title,
		ShortDescription: form.ShortDescription,
		FullContent:      form.FullContent,
		ImageURL:         imageURL,
		TemplateType:     blog.TemplateType(form.TemplateType),
		// Slug is always recomputed from the submitted title, even when
		// the title did not change.
		Slug: utils.GenerateSlug(form.Title),
	}

	return s.repo.Update(ctx, updated)
}

func (s *blogService) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return blog.ErrBlogNotFound
	}
	return s.repo.Delete(ctx, id)
}
