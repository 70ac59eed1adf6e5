package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"consulting-backend/internal/domains/team"
)

// postgresRepository implements team.Repository on pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) team.Repository {
	return &postgresRepository{pool: pool}
}

const memberColumns = `id, name, position, expertise, category, bio, image_base64, created_at, updated_at`

func scanMember(row pgx.Row) (*team.TeamMember, error) {
	var m team.TeamMember
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Position,
		&m.Expertise,
		&m.Category,
		&m.Bio,
		&m.ImageBase64,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *postgresRepository) Create(ctx context.Context, member *team.TeamMember) (*team.TeamMember, error) {
	query := `
        INSERT INTO team_members (name, position, expertise, category, bio, image_base64)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + memberColumns

	created, err := scanMember(r.pool.QueryRow(
		ctx,
		query,
		member.Name,
		member.Position,
		member.Expertise,
		member.Category,
		member.Bio,
		member.ImageBase64,
	))
	if err != nil {
		return nil, fmt.Errorf("%w: insert team member: %w", team.ErrStorageFailure, err)
	}

	return created, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]team.TeamMember, error) {
	query := `SELECT ` + memberColumns + ` FROM team_members`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: query team members: %w", team.ErrStorageFailure, err)
	}
	defer rows.Close()

	var members []team.TeamMember
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan team member: %w", team.ErrStorageFailure, err)
		}
		members = append(members, *m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate team members: %w", team.ErrStorageFailure, err)
	}

	return members, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*team.TeamMember, error) {
	query := `SELECT ` + memberColumns + ` FROM team_members WHERE id = $1`

	m, err := scanMember(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, team.ErrMemberNotFound
		}
		return nil, fmt.Errorf("%w: get team member by id: %w", team.ErrStorageFailure, err)
	}

	return m, nil
}

func (r *postgresRepository) Update(ctx context.Context, member *team.TeamMember) (*team.TeamMember, error) {
	query := `
        UPDATE team_members
        SET
            name = $1,
            position = $2,
            expertise = $3,
            category = $4,
            bio = $5,
            image_base64 = $6,
            updated_at = NOW()
        WHERE id = $7
        RETURNING ` + memberColumns

	updated, err := scanMember(r.pool.QueryRow(
		ctx,
		query,
		member.Name,
		member.Position,
		member.Expertise,
		member.Category,
		member.Bio,
		member.ImageBase64,
		member.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, team.ErrMemberNotFound
		}
		return nil, fmt.Errorf("%w: update team member: %w", team.ErrStorageFailure, err)
	}

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM team_members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: delete team member: %w", team.ErrStorageFailure, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return team.ErrMemberNotFound
	}

	return nil
}
