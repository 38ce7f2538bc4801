package repositories

import (
	"context"
	"errors"

	"homekitchen/internal/common"
	"homekitchen/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type NewsletterRepository interface {
	Create(ctx context.Context, subscriber *models.NewsletterSubscriber) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	DeleteByEmail(ctx context.Context, email string) error
	List(ctx context.Context) ([]*models.NewsletterSubscriber, error)
}

type newsletterRepo struct {
	db Database
}

func NewNewsletterRepo(db Database) NewsletterRepository {
	return &newsletterRepo{db: db}
}

func (r *newsletterRepo) Create(ctx context.Context, subscriber *models.NewsletterSubscriber) error {
	query := `
		INSERT INTO newsletter_subscribers (email, subscribed_at)
		VALUES ($1, NOW())
		RETURNING id, subscribed_at
	`
	err := r.db.QueryRow(ctx, query, subscriber.Email).Scan(&subscriber.ID, &subscriber.SubscribedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return common.ErrConflict
	}
	return err
}

func (r *newsletterRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var id int64
	err := r.db.QueryRow(ctx, `SELECT id FROM newsletter_subscribers WHERE email = $1`, email).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *newsletterRepo) DeleteByEmail(ctx context.Context, email string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM newsletter_subscribers WHERE email = $1`, email)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *newsletterRepo) List(ctx context.Context) ([]*models.NewsletterSubscriber, error) {
	query := `
		SELECT id, email, subscribed_at
		FROM newsletter_subscribers
		ORDER BY subscribed_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subscribers []*models.NewsletterSubscriber
	for rows.Next() {
		subscriber := &models.NewsletterSubscriber{}
		if err := rows.Scan(&subscriber.ID, &subscriber.Email, &subscriber.SubscribedAt); err != nil {
			return nil, err
		}
		subscribers = append(subscribers, subscriber)
	}
	return subscribers, rows.Err()
}
