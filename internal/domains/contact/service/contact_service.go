package service

import (
	"context"

	"github.com/google/uuid"

	"consulting-backend/internal/domains/contact"
)

type contactService struct {
	repo contact.Repository
}

// NewContactService creates the contact-message service.
func NewContactService(repo contact.Repository) contact.Service {
	return &contactService{repo: repo}
}

func (s *contactService) Create(ctx context.Context, req *contact.CreateMessageRequest) (*contact.ContactMessage, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	msg := &contact.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		Message: req.Message,
		Source:  contact.Source(req.Source),
	}
	return s.repo.Create(ctx, msg)
}

func (s *contactService) GetAll(ctx context.Context) ([]contact.ContactMessage, error) {
	return s.repo.GetAll(ctx)
}

func (s *contactService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
