package repositories

import (
	"context"
	"errors"
	"fmt"

	"homekitchen/internal/common"
	"homekitchen/internal/models"

	"github.com/jackc/pgx/v5"
)

type OrderRepository interface {
	CreateWithItems(ctx context.Context, order *models.Order, items []*models.OrderItem) error
	GetByID(ctx context.Context, id int64) (*models.Order, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type orderRepo struct {
	db Database
}

func NewOrderRepo(db Database) OrderRepository {
	return &orderRepo{db: db}
}

// CreateWithItems inserts the order and all of its line items in a single
// transaction. Either every row commits or none do.
func (r *orderRepo) CreateWithItems(ctx context.Context, order *models.Order, items []*models.OrderItem) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin order transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	orderQuery := `
		INSERT INTO orders (customer_name, customer_email, customer_phone, customer_address, total_amount, status, payment_method, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`
	err = tx.QueryRow(ctx, orderQuery,
		order.CustomerName, order.CustomerEmail, order.CustomerPhone, order.CustomerAddress,
		order.TotalAmount, order.Status, order.PaymentMethod,
	).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	itemQuery := `
		INSERT INTO order_items (order_id, item_name, quantity, price)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	for _, item := range items {
		item.OrderID = order.ID
		if err := tx.QueryRow(ctx, itemQuery, item.OrderID, item.ItemName, item.Quantity, item.Price).Scan(&item.ID); err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}

	order.Items = items
	return tx.Commit(ctx)
}

func (r *orderRepo) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	order := &models.Order{}
	query := `
		SELECT id, customer_name, customer_email, customer_phone, customer_address, total_amount, status, payment_method, created_at
		FROM orders
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&order.ID, &order.CustomerName, &order.CustomerEmail, &order.CustomerPhone, &order.CustomerAddress,
		&order.TotalAmount, &order.Status, &order.PaymentMethod, &order.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	itemQuery := `
		SELECT id, order_id, item_name, quantity, price
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, itemQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		item := &models.OrderItem{}
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ItemName, &item.Quantity, &item.Price); err != nil {
			return nil, err
		}
		order.Items = append(order.Items, item)
	}
	return order, rows.Err()
}

func (r *orderRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	tag, err := r.db.Exec(ctx, `UPDATE orders SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return common.ErrNotFound
	}
	return nil
}
