package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/bigwigmedia/bigwig-backend/internal/entity"
)

type SubscriberRepository struct {
	DB *sql.DB
}

func NewSubscriberRepository(db *sql.DB) *SubscriberRepository {
	return &SubscriberRepository{DB: db}
}

func (r *SubscriberRepository) Create(ctx context.Context, sub *entity.Subscriber) error {
	query := `
		INSERT INTO subscribers (id, email, is_active, unsubscribe_token, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.DB.ExecContext(ctx, query,
		sub.ID,
		sub.Email,
		sub.IsActive,
		sub.UnsubscribeToken,
		sub.CreatedAt,
		sub.UpdatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return entity.ErrDuplicateEmail
		}
		return err
	}

	return nil
}

func (r *SubscriberRepository) FindByEmail(ctx context.Context, email string) (*entity.Subscriber, error) {
	query := `
		SELECT id, email, is_active, unsubscribe_token, created_at, updated_at
		FROM subscribers
		WHERE email = $1
	`

	var sub entity.Subscriber
	err := r.DB.QueryRowContext(ctx, query, email).Scan(
		&sub.ID, &sub.Email, &sub.IsActive, &sub.UnsubscribeToken,
		&sub.CreatedAt, &sub.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}

	return &sub, nil
}

func (r *SubscriberRepository) SetActive(ctx context.Context, id string, active bool) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE subscribers SET is_active = $2, updated_at = NOW() WHERE id = $1`,
		id, active,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *SubscriberRepository) DeactivateByToken(ctx context.Context, token string) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE subscribers SET is_active = false, updated_at = NOW() WHERE unsubscribe_token = $1`,
		token,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *SubscriberRepository) FindAll(ctx context.Context) ([]entity.Subscriber, error) {
	query := `
		SELECT id, email, is_active, unsubscribe_token, created_at, updated_at
		FROM subscribers
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subs := []entity.Subscriber{}
	for rows.Next() {
		var sub entity.Subscriber
		if err := rows.Scan(
			&sub.ID, &sub.Email, &sub.IsActive, &sub.UnsubscribeToken,
			&sub.CreatedAt, &sub.UpdatedAt,
		); err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}

	return subs, rows.Err()
}

func (r *SubscriberRepository) ActiveEmails(ctx context.Context) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT email FROM subscribers WHERE is_active = true`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	emails := []string{}
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, err
		}
		emails = append(emails, email)
	}

	return emails, rows.Err()
}
