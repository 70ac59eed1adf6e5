package service

import (
	"context"
	"io"

	"github.com/google/uuid"

	"consulting-backend/internal/domains/team"
	"consulting-backend/internal/infrastructure/storage"
)

// teamService implements team.Service.
type teamService struct {
	repo    team.Repository
	encoder storage.Encoder
}

func NewTeamService(repo team.Repository, encoder storage.Encoder) team.Service {
	return &teamService{
		repo:    repo,
		encoder: encoder,
	}
}

func (s *teamService) Create(ctx context.Context, req *team.CreateTeamMemberRequest, image io.Reader) (*team.TeamMember, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Portrait is optional; when present it must encode before the write.
	var imageBase64 string
	if image != nil {
		encoded, err := s.encoder.EncodeDataURI(image)
		if err != nil {
			return nil, err
		}
		imageBase64 = encoded
	}

	member := &team.TeamMember{
		Name:        req.Name,
		Position:    req.Position,
		Expertise:   req.Expertise,
		Category:    req.Category,
		Bio:         req.Bio,
		ImageBase64: imageBase64,
	}

	return s.repo.Create(ctx, member)
}

func (s *teamService) GetAll(ctx context.Context) ([]team.TeamMember, error) {
	return s.repo.GetAll(ctx)
}

func (s *teamService) GetByID(ctx context.Context, id uuid.UUID) (*team.TeamMember, error) {
	if id == uuid.Nil {
		return nil, team.ErrMemberNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// Update applies partial-merge semantics: only fields present in the
// request overwrite the stored member. The portrait follows the
// explicit tri-state instead of guessing from value presence, so an
// admin can deliberately clear it.
func (s *teamService) Update(ctx context.Context, id uuid.UUID, req *team.UpdateTeamMemberRequest, image io.Reader) (*team.TeamMember, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *current

	if req.Name != nil {
		merged.Name = *req.Name
	}
	if req.Position != nil {
		merged.Position = *req.Position
	}
	if req.Expertise != nil {
		merged.Expertise = req.Expertise
	}
	if req.Category != nil {
		merged.Category = req.Category
	}
	if req.Bio != nil {
		merged.Bio = req.Bio
	}

	switch {
	case image != nil:
		encoded, err := s.encoder.EncodeDataURI(image)
		if err != nil {
			return nil, err
		}
		merged.ImageBase64 = encoded
	case req.RemoveImage:
		merged.ImageBase64 = ""
	}

	return s.repo.Update(ctx, &merged)
}

func (s *teamService) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return team.ErrMemberNotFound
	}
	return s.repo.Delete(ctx, id)
}
