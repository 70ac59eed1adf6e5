package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"consulting-backend/internal/domains/testimonial"
)

// postgresRepository implements testimonial.Repository on pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) testimonial.Repository {
	return &postgresRepository{pool: pool}
}

const testimonialColumns = `id, client_name, client_position, client_company, testimonial_text, image_url, featured, created_at, updated_at`

func scanTestimonial(row pgx.Row) (*testimonial.Testimonial, error) {
	var t testimonial.Testimonial
	err := row.Scan(
		&t.ID,
		&t.ClientName,
		&t.ClientPosition,
		&t.ClientCompany,
		&t.TestimonialText,
		&t.ImageURL,
		&t.Featured,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *postgresRepository) Create(ctx context.Context, t *testimonial.Testimonial) (*testimonial.Testimonial, error) {
	query := `
        INSERT INTO testimonials (client_name, client_position, client_company, testimonial_text, image_url, featured)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + testimonialColumns

	created, err := scanTestimonial(r.pool.QueryRow(
		ctx,
		query,
		t.ClientName,
		t.ClientPosition,
		t.ClientCompany,
		t.TestimonialText,
		t.ImageURL,
		t.Featured,
	))
	if err != nil {
		return nil, fmt.Errorf("%w: insert testimonial: %w", testimonial.ErrStorageFailure, err)
	}

	return created, nil
}

// GetAll returns newest first; created_at is the default sort key for
// this kind.
func (r *postgresRepository) GetAll(ctx context.Context) ([]testimonial.Testimonial, error) {
	query := `SELECT ` + testimonialColumns + ` FROM testimonials ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: query testimonials: %w", testimonial.ErrStorageFailure, err)
	}
	defer rows.Close()

	var items []testimonial.Testimonial
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan testimonial: %w", testimonial.ErrStorageFailure, err)
		}
		items = append(items, *t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate testimonials: %w", testimonial.ErrStorageFailure, err)
	}

	return items, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*testimonial.Testimonial, error) {
	query := `SELECT ` + testimonialColumns + ` FROM testimonials WHERE id = $1`

	t, err := scanTestimonial(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, testimonial.ErrTestimonialNotFound
		}
		return nil, fmt.Errorf("%w: get testimonial by id: %w", testimonial.ErrStorageFailure, err)
	}

	return t, nil
}

func (r *postgresRepository) Update(ctx context.Context, t *testimonial.Testimonial) (*testimonial.Testimonial, error) {
	query := `
        UPDATE testimonials
        SET
            client_name = $1,
            client_position = $2,
            client_company = $3,
            testimonial_text = $4,
            image_url = $5,
            featured = $6,
            updated_at = NOW()
        WHERE id = $7
        RETURNING ` + testimonialColumns

	updated, err := scanTestimonial(r.pool.QueryRow(
		ctx,
		query,
		t.ClientName,
		t.ClientPosition,
		t.ClientCompany,
		t.TestimonialText,
		t.ImageURL,
		t.Featured,
		t.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, testimonial.ErrTestimonialNotFound
		}
		return nil, fmt.Errorf("%w: update testimonial: %w", testimonial.ErrStorageFailure, err)
	}

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: delete testimonial: %w", testimonial.ErrStorageFailure, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return testimonial.ErrTestimonialNotFound
	}

	return nil
}
