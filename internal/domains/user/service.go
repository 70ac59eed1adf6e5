package user

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service owns admin authentication and session lifecycle. Sessions are
// stateless JWTs; logout writes the token ID to a revocation list that
// expires together with the token.
type Service interface {
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)

	// Logout revokes the access token identified by jti until expiresAt.
	Logout(ctx context.Context, jti string, expiresAt time.Time) error

	// Refresh exchanges a valid refresh token for a new token pair.
	Refresh(ctx context.Context, req *RefreshTokenRequest) (*LoginResponse, error)

	GetByID(ctx context.Context, id uuid.UUID) (*AdminDTO, error)

	ChangePassword(ctx context.Context, adminID uuid.UUID, req *ChangePasswordRequest) error

	// SeedAdmin creates the bootstrap account when no admins exist yet.
	SeedAdmin(ctx context.Context, email, password, fullName string) error
}
