package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"consulting-backend/internal/domains/blog"
)

// postgresRepository implements blog.Repository on pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) blog.Repository {
	return &postgresRepository{pool: pool}
}

const blogColumns = `id, title, short_description, full_content, image_url, template_type, slug, created_at, updated_at`

func scanBlogPost(row pgx.Row) (*blog.BlogPost, error) {
	var p blog.BlogPost
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.ShortDescription,
		&p.FullContent,
		&p.ImageURL,
		&p.TemplateType,
		&p.Slug,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepository) Create(ctx context.Context, post *blog.BlogPost) (*blog.BlogPost, error) {
	query := `
        INSERT INTO blog_posts (title, short_description, full_content, image_url, template_type, slug)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + blogColumns

	created, err := scanBlogPost(r.pool.QueryRow(
		ctx,
		query,
		post.Title,
		post.ShortDescription,
		post.FullContent,
		post.ImageURL,
		post.TemplateType,
		post.Slug,
	))
	if err != nil {
		return nil, fmt.Errorf("%w: insert blog post: %w", blog.ErrStorageFailure, err)
	}

	return created, nil
}

// GetAll deliberately has no ORDER BY; the collection-default order is
// not part of the contract.
func (r *postgresRepository) GetAll(ctx context.Context) ([]blog.BlogPost, error) {
	query := `SELECT ` + blogColumns + ` FROM blog_posts`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: query blog posts: %w", blog.ErrStorageFailure, err)
	}
	defer rows.Close()

	var posts []blog.BlogPost
	for rows.Next() {
		p, err := scanBlogPost(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan blog post: %w", blog.ErrStorageFailure, err)
		}
		posts = append(posts, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate blog posts: %w", blog.ErrStorageFailure, err)
	}

	return posts, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*blog.BlogPost, error) {
	query := `SELECT ` + blogColumns + ` FROM blog_posts WHERE id = $1`

	p, err := scanBlogPost(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, blog.ErrBlogNotFound
		}
		return nil, fmt.Errorf("%w: get blog post by id: %w", blog.ErrStorageFailure, err)
	}

	return p, nil
}

// Update rewrites every mutable column. created_at stays untouched by
// construction: it simply is not in the SET list.
func (r *postgresRepository) Update(ctx context.Context, post *blog.BlogPost) (*blog.BlogPost, error) {
	query := `
        UPDATE blog_posts
        SET
            title = $1,
            short_description = $2,
            full_content = $3,
            image_url = $4,
            template_type = $5,
            slug = $6,
            updated_at = NOW()
        WHERE id = $7
        RETURNING ` + blogColumns

	updated, err := scanBlogPost(r.pool.QueryRow(
		ctx,
		query,
		post.Title,
		post.ShortDescription,
		post.FullContent,
		post.ImageURL,
		post.TemplateType,
		post.Slug,
		post.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, blog.ErrBlogNotFound
		}
		return nil, fmt.Errorf("%w: update blog post: %w", blog.ErrStorageFailure, err)
	}

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: delete blog post: %w", blog.ErrStorageFailure, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return blog.ErrBlogNotFound
	}

	return nil
}
