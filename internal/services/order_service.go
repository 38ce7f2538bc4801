package services

import (
	"context"
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"homekitchen/internal/common"
	"homekitchen/internal/models"
	"homekitchen/internal/repositories"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, req *models.OrderCreate) (*models.Order, error)
	GetOrder(ctx context.Context, id int64) (*models.Order, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type orderService struct {
	orderRepo repositories.OrderRepository
	email     EmailService
}

func NewOrderService(orderRepo repositories.OrderRepository, email EmailService) OrderService {
	return &orderService{orderRepo: orderRepo, email: email}
}

// PlaceOrder validates the request, writes the order and its line items
// atomically, then sends a best-effort confirmation email. The email never
// fails or reverts the committed order.
func (s *orderService) PlaceOrder(ctx context.Context, req *models.OrderCreate) (*models.Order, error) {
	if err := validateOrderCreate(req); err != nil {
		return nil, err
	}

	order := &models.Order{
		CustomerName:    req.CustomerInfo.Name,
		CustomerEmail:   req.CustomerInfo.Email,
		CustomerPhone:   req.CustomerInfo.Phone,
		CustomerAddress: req.CustomerInfo.Address,
		TotalAmount:     req.TotalAmount,
		Status:          "pending",
		PaymentMethod:   "cash",
	}

	items := make([]*models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, &models.OrderItem{
			ItemName: item.ItemName,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	if err := s.orderRepo.CreateWithItems(ctx, order, items); err != nil {
		return nil, fmt.Errorf("place order: %w", err)
	}

	if !s.email.SendOrderConfirmation(order.CustomerEmail, order.ID, order.TotalAmount) {
		log.Printf("Order confirmation email not sent for order %d", order.ID)
	}

	return order, nil
}

func validateOrderCreate(req *models.OrderCreate) error {
	if req.CustomerInfo.Name == "" {
		return common.NewValidationError("customerInfo.name", "customer name is required")
	}
	if req.CustomerInfo.Email == "" {
		return common.NewValidationError("customerInfo.email", "customer email is required")
	}
	if req.CustomerInfo.Phone == "" {
		return common.NewValidationError("customerInfo.phone", "customer phone is required")
	}
	if req.CustomerInfo.Address == "" {
		return common.NewValidationError("customerInfo.address", "customer address is required")
	}
	if len(req.Items) == 0 {
		return common.NewValidationError("items", "order must contain at least one item")
	}

	computed := decimal.Zero
	for i, item := range req.Items {
		if item.ItemName == "" {
			return common.NewValidationError(fmt.Sprintf("items[%d].item_name", i), "item name is required")
		}
		if item.Quantity <= 0 {
			return common.NewValidationError(fmt.Sprintf("items[%d].quantity", i), "quantity must be positive")
		}
		if item.Price.IsNegative() {
			return common.NewValidationError(fmt.Sprintf("items[%d].price", i), "price cannot be negative")
		}
		computed = computed.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	// The client total is verified against the line items instead of being
	// trusted verbatim.
	if !computed.Equal(req.TotalAmount) {
		return common.NewValidationError("totalAmount",
			fmt.Sprintf("total amount %s does not match item total %s", req.TotalAmount.StringFixed(2), computed.StringFixed(2)))
	}
	return nil
}

func (s *orderService) GetOrder(ctx context.Context, id int64) (*models.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

func (s *orderService) UpdateStatus(ctx context.Context, id int64, status string) error {
	if status == "" {
		return common.NewValidationError("status", "status is required")
	}
	return s.orderRepo.UpdateStatus(ctx, id, status)
}
