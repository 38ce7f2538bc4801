package repositories

import (
	"context"

	"homekitchen/internal/models"
)

type ContactRepository interface {
	Create(ctx context.Context, message *models.ContactMessage) error
	List(ctx context.Context) ([]*models.ContactMessage, error)
}

type contactRepo struct {
	db Database
}

func NewContactRepo(db Database) ContactRepository {
	return &contactRepo{db: db}
}

func (r *contactRepo) Create(ctx context.Context, message *models.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (name, email, subject, message, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`
	return r.db.QueryRow(ctx, query, message.Name, message.Email, message.Subject, message.Message).
		Scan(&message.ID, &message.CreatedAt)
}

func (r *contactRepo) List(ctx context.Context) ([]*models.ContactMessage, error) {
	query := `
		SELECT id, name, email, subject, message, created_at
		FROM contact_messages
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*models.ContactMessage
	for rows.Next() {
		message := &models.ContactMessage{}
		if err := rows.Scan(&message.ID, &message.Name, &message.Email, &message.Subject, &message.Message, &message.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	return messages, rows.Err()
}
