package repositories

import (
	"context"

	"homekitchen/internal/common"
	"homekitchen/internal/models"
)

type CareerRepository interface {
	Create(ctx context.Context, application *models.CareerApplication) error
	List(ctx context.Context) ([]*models.CareerApplication, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type careerRepo struct {
	db Database
}

func NewCareerRepo(db Database) CareerRepository {
	return &careerRepo{db: db}
}

func (r *careerRepo) Create(ctx context.Context, application *models.CareerApplication) error {
	query := `
		INSERT INTO career_applications (name, email, phone, position, experience, message, resume_path, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, created_at
	`
	return r.db.QueryRow(ctx, query,
		application.Name, application.Email, application.Phone, application.Position,
		application.Experience, application.Message, application.ResumePath, application.Status,
	).Scan(&application.ID, &application.CreatedAt)
}

func (r *careerRepo) List(ctx context.Context) ([]*models.CareerApplication, error) {
	query := `
		SELECT id, name, email, phone, position, experience, message, resume_path, status, created_at
		FROM career_applications
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []*models.CareerApplication
	for rows.Next() {
		application := &models.CareerApplication{}
		if err := rows.Scan(&application.ID, &application.Name, &application.Email, &application.Phone, &application.Position, &application.Experience, &application.Message, &application.ResumePath, &application.Status, &application.CreatedAt); err != nil {
			return nil, err
		}
		applications = append(applications, application)
	}
	return applications, rows.Err()
}

func (r *careerRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	tag, err := r.db.Exec(ctx, `UPDATE career_applications SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return common.ErrNotFound
	}
	return nil
}
