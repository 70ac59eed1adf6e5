package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consulting-backend/internal/domains/contact"
)

type fakeRepository struct {
	messages []contact.ContactMessage
}

func (r *fakeRepository) Create(_ context.Context, m *contact.ContactMessage) (*contact.ContactMessage, error) {
	stored := *m
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now()
	r.messages = append([]contact.ContactMessage{stored}, r.messages...)
	return &stored, nil
}

func (r *fakeRepository) GetAll(_ context.Context) ([]contact.ContactMessage, error) {
	out := make([]contact.ContactMessage, len(r.messages))
	copy(out, r.messages)
	return out, nil
}

func (r *fakeRepository) Delete(_ context.Context, id uuid.UUID) error {
	for i := range r.messages {
		if r.messages[i].ID == id {
			r.messages = append(r.messages[:i], r.messages[i+1:]...)
			return nil
		}
	}
	return contact.ErrMessageNotFound
}

func newTestService() (contact.Service, *fakeRepository) {
	repo := &fakeRepository{}
	return NewContactService(repo), repo
}

func TestCreateStoresMessage(t *testing.T) {
	svc, repo := newTestService()

	msg, err := svc.Create(context.Background(), &contact.CreateMessageRequest{
		Name:    "Taylor Brooks",
		Email:   "taylor@example.com",
		Message: "We would like a consultation.",
		Source:  "contact",
	})
	require.NoError(t, err)

	assert.Equal(t, contact.SourceContact, msg.Source)
	assert.NotEqual(t, uuid.Nil, msg.ID)
	assert.Len(t, repo.messages, 1)
}

func TestCreateRejectsBadEmail(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.Create(context.Background(), &contact.CreateMessageRequest{
		Name:    "Taylor Brooks",
		Email:   "not-an-email",
		Message: "Hello",
		Source:  "contact",
	})
	require.Error(t, err)
	assert.Empty(t, repo.messages)
}

func TestCreateRejectsUnknownSource(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.Create(context.Background(), &contact.CreateMessageRequest{
		Name:    "Taylor Brooks",
		Email:   "taylor@example.com",
		Message: "Hello",
		Source:  "newsletter",
	})
	require.Error(t, err)
	assert.Empty(t, repo.messages)
}

func TestDeleteMissingMessage(t *testing.T) {
	svc, _ := newTestService()

	err := svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, contact.ErrMessageNotFound)
}
