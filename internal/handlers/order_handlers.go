package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"homekitchen/internal/common"
	"homekitchen/internal/models"
	"homekitchen/internal/services"
)

// OrderHandlers handles HTTP requests for orders
type OrderHandlers struct {
	orderService services.OrderService
}

func NewOrderHandlers(orderService services.OrderService) *OrderHandlers {
	return &OrderHandlers{orderService: orderService}
}

// OrderResponse is the public contract for a placed order.
type OrderResponse struct {
	Success bool   `json:"success"`
	OrderID int64  `json:"orderId"`
	Message string `json:"message"`
}

// PlaceOrder handles POST /orders
func (h *OrderHandlers) PlaceOrder(c echo.Context) error {
	var req models.OrderCreate
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	order, err := h.orderService.PlaceOrder(c.Request().Context(), &req)
	if err != nil {
		return common.SendError(c, err, "order")
	}

	return c.JSON(http.StatusOK, OrderResponse{
		Success: true,
		OrderID: order.ID,
		Message: "Order placed successfully",
	})
}

// GetOrder handles GET /orders/:id
func (h *OrderHandlers) GetOrder(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return common.SendClientError(c, "Invalid order id")
	}

	order, err := h.orderService.GetOrder(c.Request().Context(), id)
	if err != nil {
		return common.SendError(c, err, "order")
	}
	return c.JSON(http.StatusOK, order)
}

// UpdateOrderStatus handles PUT /orders/:id/status
func (h *OrderHandlers) UpdateOrderStatus(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return common.SendClientError(c, "Invalid order id")
	}

	status := c.QueryParam("status")
	if err := h.orderService.UpdateStatus(c.Request().Context(), id, status); err != nil {
		return common.SendError(c, err, "order")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Order status updated to " + status,
	})
}

func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}
