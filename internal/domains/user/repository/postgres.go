package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"consulting-backend/internal/domains/user"
)

const adminColumns = "id, email, password_hash, full_name, role, last_login_at, created_at, updated_at"

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates an admin repository backed by Postgres.
func NewPostgresRepository(pool *pgxpool.Pool) user.Repository {
	return &postgresRepository{pool: pool}
}

func scanAdmin(row pgx.Row) (*user.Admin, error) {
	var a user.Admin
	err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.FullName, &a.Role,
		&a.LastLoginAt, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepository) Create(ctx context.Context, admin *user.Admin) error {
	query := `
		INSERT INTO admins (email, password_hash, full_name, role)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + adminColumns

	created, err := scanAdmin(r.pool.QueryRow(ctx, query,
		admin.Email, admin.PasswordHash, admin.FullName, admin.Role,
	))
	if err != nil {
		return fmt.Errorf("%w: insert admin: %w", user.ErrStorageFailure, err)
	}
	*admin = *created
	return nil
}

func (r *postgresRepository) FindByEmail(ctx context.Context, email string) (*user.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE email = $1`

	a, err := scanAdmin(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrAdminNotFound
		}
		return nil, fmt.Errorf("%w: find admin by email: %w", user.ErrStorageFailure, err)
	}
	return a, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE id = $1`

	a, err := scanAdmin(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrAdminNotFound
		}
		return nil, fmt.Errorf("%w: find admin by id: %w", user.ErrStorageFailure, err)
	}
	return a, nil
}

func (r *postgresRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	query := `UPDATE admins SET password_hash = $2, updated_at = NOW() WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("%w: update admin password: %w", user.ErrStorageFailure, err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrAdminNotFound
	}
	return nil
}

func (r *postgresRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE admins SET last_login_at = NOW() WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("%w: update last login: %w", user.ErrStorageFailure, err)
	}
	return nil
}

func (r *postgresRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM admins`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%w: count admins: %w", user.ErrStorageFailure, err)
	}
	return count, nil
}
