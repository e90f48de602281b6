package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"github.com/bigwigmedia/bigwig-backend/internal/entity"
)

type NewsletterRepository struct {
	DB *sql.DB
}

func NewNewsletterRepository(db *sql.DB) *NewsletterRepository {
	return &NewsletterRepository{DB: db}
}

// Create inserts the newsletter and its PENDING delivery rows in one
// database transaction, so a record never exists with a partial
// recipient ledger.
func (r *NewsletterRepository) Create(ctx context.Context, n *entity.Newsletter) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO newsletters (id, title, subject, content, send_type, manual_emails, recipients, sent_count, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`,
		n.ID, n.Title, n.Subject, n.Content, n.SendType,
		pq.Array(n.ManualEmails), pq.Array(n.Recipients),
		n.SentCount, n.Status, n.CreatedAt, n.UpdatedAt,
	)
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO newsletter_deliveries (newsletter_id, email, status)
		VALUES ($1, $2, $3)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, recipient := range n.Recipients {
		if _, err := stmt.ExecContext(ctx, n.ID, recipient, entity.DeliveryPending); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *NewsletterRepository) FindByID(ctx context.Context, id string) (*entity.Newsletter, error) {
	query := `
		SELECT id, title, subject, content, send_type, manual_emails, recipients, sent_count, status, created_at, updated_at
		FROM newsletters
		WHERE id = $1
	`

	var n entity.Newsletter
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&n.ID, &n.Title, &n.Subject, &n.Content, &n.SendType,
		pq.Array(&n.ManualEmails), pq.Array(&n.Recipients),
		&n.SentCount, &n.Status, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}

	return &n, nil
}

func (r *NewsletterRepository) FindAll(ctx context.Context) ([]entity.Newsletter, error) {
	query := `
		SELECT id, title, subject, content, send_type, manual_emails, recipients, sent_count, status, created_at, updated_at
		FROM newsletters
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	newsletters := []entity.Newsletter{}
	for rows.Next() {
		var n entity.Newsletter
		if err := rows.Scan(
			&n.ID, &n.Title, &n.Subject, &n.Content, &n.SendType,
			pq.Array(&n.ManualEmails), pq.Array(&n.Recipients),
			&n.SentCount, &n.Status, &n.CreatedAt, &n.UpdatedAt,
		); err != nil {
			return nil, err
		}
		newsletters = append(newsletters, n)
	}

	return newsletters, rows.Err()
}

// Delete removes the newsletter; delivery rows go with it via ON DELETE
// CASCADE.
func (r *NewsletterRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM newsletters WHERE id = $1`, id)
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

func (r *NewsletterRepository) MarkStatus(ctx context.Context, id, status string) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE newsletters SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, status,
	)
	return err
}

func (r *NewsletterRepository) RecordDelivery(ctx context.Context, newsletterID, email, status, errMsg string) error {
	var sentAt *time.Time
	if status == entity.DeliverySent {
		now := time.Now()
		sentAt = &now
	}

	_, err := r.DB.ExecContext(ctx, `
		UPDATE newsletter_deliveries
		SET status = $3, error = NULLIF($4, ''), sent_at = $5
		WHERE newsletter_id = $1 AND email = $2
	`, newsletterID, email, status, errMsg, sentAt)
	return err
}

func (r *NewsletterRepository) FinishDispatch(ctx context.Context, id string, sentCount int, status string) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE newsletters SET sent_count = $2, status = $3, updated_at = NOW() WHERE id = $1`,
		id, sentCount, status,
	)
	return err
}
