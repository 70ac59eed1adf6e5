package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"consulting-backend/internal/domains/user"
	"consulting-backend/pkg/jwt"
)

// fakeRepository is mutex-guarded because the service stamps last
// login from a goroutine.
type fakeRepository struct {
	mu     sync.Mutex
	admins []user.Admin
}

func (r *fakeRepository) Create(_ context.Context, a *user.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.admins {
		if r.admins[i].Email == a.Email {
			return user.ErrEmailAlreadyExists
		}
	}
	a.ID = uuid.New()
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	r.admins = append(r.admins, *a)
	return nil
}

func (r *fakeRepository) FindByEmail(_ context.Context, email string) (*user.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.admins {
		if r.admins[i].Email == email {
			a := r.admins[i]
			return &a, nil
		}
	}
	return nil, user.ErrAdminNotFound
}

func (r *fakeRepository) FindByID(_ context.Context, id uuid.UUID) (*user.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.admins {
		if r.admins[i].ID == id {
			a := r.admins[i]
			return &a, nil
		}
	}
	return nil, user.ErrAdminNotFound
}

func (r *fakeRepository) UpdatePassword(_ context.Context, id uuid.UUID, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.admins {
		if r.admins[i].ID == id {
			r.admins[i].PasswordHash = hash
			return nil
		}
	}
	return user.ErrAdminNotFound
}

func (r *fakeRepository) UpdateLastLogin(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.admins {
		if r.admins[i].ID == id {
			now := time.Now()
			r.admins[i].LastLoginAt = &now
			return nil
		}
	}
	return user.ErrAdminNotFound
}

func (r *fakeRepository) Count(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.admins), nil
}

// fakeCache is an in-memory stand-in for the revocation store.
type fakeCache struct {
	entries map[string]time.Time
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]time.Time{}}
}

func (c *fakeCache) Set(_ context.Context, key, _ string, ttl time.Duration) error {
	c.entries[key] = time.Now().Add(ttl)
	return nil
}

func (c *fakeCache) Exists(_ context.Context, key string) (bool, error) {
	expiry, ok := c.entries[key]
	return ok && time.Now().Before(expiry), nil
}

func (c *fakeCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.entries, k)
	}
	return nil
}

func (c *fakeCache) Ping(context.Context) error { return nil }

func seedAdmin(t *testing.T, repo *fakeRepository, email, password string) *user.Admin {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	a := &user.Admin{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     "Test Admin",
		Role:         user.RoleAdmin,
	}
	require.NoError(t, repo.Create(context.Background(), a))
	return a
}

func newTestService() (user.Service, *fakeRepository, *fakeCache, *jwt.Manager) {
	repo := &fakeRepository{}
	sessions := newFakeCache()
	manager := jwt.NewManager("test-secret", 15*time.Minute, 72*time.Hour)
	return NewUserService(repo, manager, sessions), repo, sessions, manager
}

func TestLoginSuccess(t *testing.T) {
	svc, repo, _, manager := newTestService()
	seedAdmin(t, repo, "admin@example.com", "correct horse")

	resp, err := svc.Login(context.Background(), &user.LoginRequest{
		Email:    "admin@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.True(t, resp.ExpiresAt.After(time.Now()))
	assert.Equal(t, "admin@example.com", resp.Admin.Email)

	claims, err := manager.ValidateAccessToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, claims.Role)
	assert.NotEmpty(t, claims.ID, "access tokens carry a jti for revocation")
}

func TestLoginWrongPassword(t *testing.T) {
	svc, repo, _, _ := newTestService()
	seedAdmin(t, repo, "admin@example.com", "correct horse")

	_, err := svc.Login(context.Background(), &user.LoginRequest{
		Email:    "admin@example.com",
		Password: "battery staple",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestLoginUnknownEmailSameError(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Login(context.Background(), &user.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestLogoutDenylistsToken(t *testing.T) {
	svc, repo, sessions, manager := newTestService()
	seedAdmin(t, repo, "admin@example.com", "correct horse")

	resp, err := svc.Login(context.Background(), &user.LoginRequest{
		Email:    "admin@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	claims, err := manager.ValidateAccessToken(resp.AccessToken)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), claims.ID, claims.ExpiresAt.Time))

	revoked, err := sessions.Exists(context.Background(), "session:revoked:"+claims.ID)
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestLogoutExpiredTokenIsNoop(t *testing.T) {
	svc, _, sessions, _ := newTestService()

	require.NoError(t, svc.Logout(context.Background(), "stale-jti", time.Now().Add(-time.Minute)))
	assert.Empty(t, sessions.entries)
}

func TestRefreshIssuesNewPair(t *testing.T) {
	svc, repo, _, _ := newTestService()
	seedAdmin(t, repo, "admin@example.com", "correct horse")

	login, err := svc.Login(context.Background(), &user.LoginRequest{
		Email:    "admin@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), &user.RefreshTokenRequest{
		RefreshToken: login.RefreshToken,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, login.Admin.ID, refreshed.Admin.ID)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, repo, _, _ := newTestService()
	seedAdmin(t, repo, "admin@example.com", "correct horse")

	login, err := svc.Login(context.Background(), &user.LoginRequest{
		Email:    "admin@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	// An access token must not work where a refresh token is expected.
	_, err = svc.Refresh(context.Background(), &user.RefreshTokenRequest{
		RefreshToken: login.AccessToken,
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestChangePassword(t *testing.T) {
	svc, repo, _, _ := newTestService()
	admin := seedAdmin(t, repo, "admin@example.com", "old password")

	err := svc.ChangePassword(context.Background(), admin.ID, &user.ChangePasswordRequest{
		CurrentPassword: "old password",
		NewPassword:     "brand new password",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &user.LoginRequest{
		Email:    "admin@example.com",
		Password: "brand new password",
	})
	assert.NoError(t, err)

	_, err = svc.Login(context.Background(), &user.LoginRequest{
		Email:    "admin@example.com",
		Password: "old password",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	svc, repo, _, _ := newTestService()
	admin := seedAdmin(t, repo, "admin@example.com", "old password")

	err := svc.ChangePassword(context.Background(), admin.ID, &user.ChangePasswordRequest{
		CurrentPassword: "not the password",
		NewPassword:     "brand new password",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestChangePasswordSameAsOld(t *testing.T) {
	svc, repo, _, _ := newTestService()
	admin := seedAdmin(t, repo, "admin@example.com", "old password")

	err := svc.ChangePassword(context.Background(), admin.ID, &user.ChangePasswordRequest{
		CurrentPassword: "old password",
		NewPassword:     "old password",
	})
	assert.ErrorIs(t, err, user.ErrSamePassword)
}

func TestSeedAdminOnlyWhenEmpty(t *testing.T) {
	svc, repo, _, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.SeedAdmin(ctx, "boot@example.com", "bootstrap pass", "Bootstrap"))
	require.Len(t, repo.admins, 1)
	assert.Equal(t, user.RoleAdmin, repo.admins[0].Role)

	// A second call must not create another account.
	require.NoError(t, svc.SeedAdmin(ctx, "other@example.com", "other pass", "Other"))
	assert.Len(t, repo.admins, 1)
}

func TestSeedAdminSkipsWithoutPassword(t *testing.T) {
	svc, repo, _, _ := newTestService()

	require.NoError(t, svc.SeedAdmin(context.Background(), "boot@example.com", "", "Bootstrap"))
	assert.Empty(t, repo.admins)
}
