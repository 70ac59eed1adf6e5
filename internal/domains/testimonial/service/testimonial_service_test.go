package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consulting-backend/internal/domains/testimonial"
)

// fakeRepository returns newest first from GetAll, like the real store.
type fakeRepository struct {
	items []testimonial.Testimonial
}

func (r *fakeRepository) Create(_ context.Context, t *testimonial.Testimonial) (*testimonial.Testimonial, error) {
	stored := *t
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	r.items = append([]testimonial.Testimonial{stored}, r.items...)
	return &stored, nil
}

func (r *fakeRepository) GetAll(_ context.Context) ([]testimonial.Testimonial, error) {
	out := make([]testimonial.Testimonial, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *fakeRepository) GetByID(_ context.Context, id uuid.UUID) (*testimonial.Testimonial, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			t := r.items[i]
			return &t, nil
		}
	}
	return nil, testimonial.ErrTestimonialNotFound
}

func (r *fakeRepository) Update(_ context.Context, t *testimonial.Testimonial) (*testimonial.Testimonial, error) {
	for i := range r.items {
		if r.items[i].ID == t.ID {
			updated := *t
			updated.CreatedAt = r.items[i].CreatedAt
			updated.UpdatedAt = time.Now()
			r.items[i] = updated
			return &updated, nil
		}
	}
	return nil, testimonial.ErrTestimonialNotFound
}

func (r *fakeRepository) Delete(_ context.Context, id uuid.UUID) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return testimonial.ErrTestimonialNotFound
}

type fakeEncoder struct {
	err error
}

func (e *fakeEncoder) EncodeDataURI(r io.Reader) (string, error) {
	if e.err != nil {
		return "", e.err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return "data:image/jpeg;base64,encoded(" + string(data) + ")", nil
}

func validForm(name string, featured bool) *testimonial.TestimonialFormData {
	return &testimonial.TestimonialFormData{
		ClientName:      name,
		ClientPosition:  "CEO",
		TestimonialText: "Great work across the whole engagement.",
		Featured:        featured,
	}
}

func newTestService() (testimonial.Service, *fakeRepository, *fakeEncoder) {
	repo := &fakeRepository{}
	encoder := &fakeEncoder{}
	return NewTestimonialService(repo, encoder), repo, encoder
}

func TestCreateWithoutPhoto(t *testing.T) {
	svc, _, _ := newTestService()

	created, err := svc.Create(context.Background(), validForm("Morgan Lee", true), nil)
	require.NoError(t, err)
	assert.Empty(t, created.ImageURL)
	assert.True(t, created.Featured)
}

func TestCreateEncoderFailureWritesNothing(t *testing.T) {
	svc, repo, encoder := newTestService()
	encoder.err = fmt.Errorf("bad upload")

	_, err := svc.Create(context.Background(), validForm("Morgan Lee", false), strings.NewReader("photo"))
	require.Error(t, err)
	assert.Empty(t, repo.items)
}

func TestGetFeaturedFiltersInProcess(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	names := map[string]bool{
		"Client A": true,
		"Client B": false,
		"Client C": true,
		"Client D": false,
		"Client E": false,
	}
	for name, featured := range names {
		_, err := svc.Create(ctx, validForm(name, featured), nil)
		require.NoError(t, err)
	}

	featured, err := svc.GetFeatured(ctx)
	require.NoError(t, err)
	require.Len(t, featured, 2)
	for _, item := range featured {
		assert.True(t, item.Featured)
	}

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestUpdateKeepsPhotoAndTogglesFeatured(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validForm("Quinn Park", false), strings.NewReader("photo"))
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, validForm("Quinn Park", true), nil)
	require.NoError(t, err)

	assert.True(t, updated.Featured)
	assert.Equal(t, created.ImageURL, updated.ImageURL)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdateMissingTestimonial(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Update(context.Background(), uuid.New(), validForm("Ghost", false), nil)
	assert.ErrorIs(t, err, testimonial.ErrTestimonialNotFound)
}

func TestDeleteTwice(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validForm("Short Lived", false), nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), testimonial.ErrTestimonialNotFound)
}
