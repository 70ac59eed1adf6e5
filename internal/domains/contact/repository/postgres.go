package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"consulting-backend/internal/domains/contact"
)

const messageColumns = "id, name, email, company, message, source, created_at"

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a contact repository backed by Postgres.
func NewPostgresRepository(pool *pgxpool.Pool) contact.Repository {
	return &postgresRepository{pool: pool}
}

func scanMessage(row pgx.Row) (*contact.ContactMessage, error) {
	var m contact.ContactMessage
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Company, &m.Message, &m.Source, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *postgresRepository) Create(ctx context.Context, msg *contact.ContactMessage) (*contact.ContactMessage, error) {
	query := `
		INSERT INTO contact_messages (name, email, company, message, source)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + messageColumns

	created, err := scanMessage(r.pool.QueryRow(ctx, query,
		msg.Name, msg.Email, msg.Company, msg.Message, msg.Source,
	))
	if err != nil {
		return nil, fmt.Errorf("%w: insert contact message: %w", contact.ErrStorageFailure, err)
	}
	return created, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]contact.ContactMessage, error) {
	query := `SELECT ` + messageColumns + ` FROM contact_messages ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: query contact messages: %w", contact.ErrStorageFailure, err)
	}
	defer rows.Close()

	messages := make([]contact.ContactMessage, 0)
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan contact message: %w", contact.ErrStorageFailure, err)
		}
		messages = append(messages, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate contact messages: %w", contact.ErrStorageFailure, err)
	}
	return messages, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: delete contact message: %w", contact.ErrStorageFailure, err)
	}
	if tag.RowsAffected() == 0 {
		return contact.ErrMessageNotFound
	}
	return nil
}
