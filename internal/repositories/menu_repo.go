package repositories

import (
	"context"

	"homekitchen/internal/models"
)

type MenuRepository interface {
	ListAvailable(ctx context.Context) ([]*models.MenuItem, error)
	ListByCategory(ctx context.Context, category string) ([]*models.MenuItem, error)
	ListCategories(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, item *models.MenuItem) error
}

type menuRepo struct {
	db Database
}

func NewMenuRepo(db Database) MenuRepository {
	return &menuRepo{db: db}
}

func (r *menuRepo) ListAvailable(ctx context.Context) ([]*models.MenuItem, error) {
	query := `
		SELECT id, name, description, price, category, image_url, video_url, is_available, created_at
		FROM menu_items
		WHERE is_available = TRUE
		ORDER BY category, name
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.MenuItem
	for rows.Next() {
		item := &models.MenuItem{}
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.Category, &item.ImageURL, &item.VideoURL, &item.IsAvailable, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *menuRepo) ListByCategory(ctx context.Context, category string) ([]*models.MenuItem, error) {
	query := `
		SELECT id, name, description, price, category, image_url, video_url, is_available, created_at
		FROM menu_items
		WHERE category = $1 AND is_available = TRUE
		ORDER BY name
	`
	rows, err := r.db.Query(ctx, query, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.MenuItem
	for rows.Next() {
		item := &models.MenuItem{}
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.Category, &item.ImageURL, &item.VideoURL, &item.IsAvailable, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *menuRepo) ListCategories(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT category FROM menu_items WHERE is_available = TRUE`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *menuRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM menu_items`).Scan(&count)
	return count, err
}

func (r *menuRepo) Create(ctx context.Context, item *models.MenuItem) error {
	query := `
		INSERT INTO menu_items (name, description, price, category, image_url, video_url, is_available, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`
	return r.db.QueryRow(ctx, query, item.Name, item.Description, item.Price, item.Category, item.ImageURL, item.VideoURL, item.IsAvailable).
		Scan(&item.ID, &item.CreatedAt)
}
