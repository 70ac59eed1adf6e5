package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"consulting-backend/internal/domains/user"
	"consulting-backend/pkg/cache"
	"consulting-backend/pkg/jwt"
	"consulting-backend/pkg/logger"
)

// denylistPrefix namespaces revoked token IDs in the cache.
const denylistPrefix = "session:revoked:"

type userService struct {
	repo       user.Repository
	jwtManager *jwt.Manager
	sessions   cache.Cache
}

// NewUserService creates the admin auth service.
func NewUserService(repo user.Repository, jwtManager *jwt.Manager, sessions cache.Cache) user.Service {
	return &userService{
		repo:       repo,
		jwtManager: jwtManager,
		sessions:   sessions,
	}
}

func (s *userService) Login(ctx context.Context, req *user.LoginRequest) (*user.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		// Unknown email reports the same error as a wrong password.
		return nil, user.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	resp, err := s.issueTokens(a)
	if err != nil {
		return nil, err
	}

	// Last-login stamp is best effort.
	go func() {
		_ = s.repo.UpdateLastLogin(context.Background(), a.ID)
	}()

	return resp, nil
}

func (s *userService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		// Token already expired, nothing to revoke.
		return nil
	}
	if err := s.sessions.Set(ctx, denylistPrefix+jti, "1", ttl); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

func (s *userService) Refresh(ctx context.Context, req *user.RefreshTokenRequest) (*user.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	claims, err := s.jwtManager.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, user.ErrInvalidCredentials
	}

	adminID, err := uuid.Parse(claims.AdminID)
	if err != nil {
		return nil, user.ErrInvalidCredentials
	}

	a, err := s.repo.FindByID(ctx, adminID)
	if err != nil {
		return nil, user.ErrInvalidCredentials
	}

	return s.issueTokens(a)
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*user.AdminDTO, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := a.ToDTO()
	return &dto, nil
}

func (s *userService) ChangePassword(ctx context.Context, adminID uuid.UUID, req *user.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	a, err := s.repo.FindByID(ctx, adminID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return user.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(req.NewPassword)); err == nil {
		return user.ErrSamePassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), 12)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.repo.UpdatePassword(ctx, adminID, string(hash))
}

func (s *userService) SeedAdmin(ctx context.Context, email, password, fullName string) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if password == "" {
		logger.Info("no admin accounts and no bootstrap password set, skipping seed", nil)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	admin := &user.Admin{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     fullName,
		Role:         user.RoleAdmin,
	}
	if err := s.repo.Create(ctx, admin); err != nil {
		return err
	}

	logger.Info("seeded bootstrap admin account", map[string]interface{}{
		"email": email,
	})
	return nil
}

func (s *userService) issueTokens(a *user.Admin) (*user.LoginResponse, error) {
	accessToken, expiresAt, err := s.jwtManager.GenerateAccessToken(a.ID.String(), a.Email, a.Role)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(a.ID.String())
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	return &user.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
		Admin:        a.ToDTO(),
	}, nil
}
