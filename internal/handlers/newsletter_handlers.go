package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"homekitchen/internal/common"
	"homekitchen/internal/models"
	"homekitchen/internal/services"
)

// NewsletterHandlers handles HTTP requests for newsletter subscriptions
type NewsletterHandlers struct {
	newsletterService services.NewsletterService
}

func NewNewsletterHandlers(newsletterService services.NewsletterService) *NewsletterHandlers {
	return &NewsletterHandlers{newsletterService: newsletterService}
}

// Subscribe handles POST /newsletter
func (h *NewsletterHandlers) Subscribe(c echo.Context) error {
	var req models.NewsletterSubscriptionCreate
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	if err := h.newsletterService.Subscribe(c.Request().Context(), req.Email); err != nil {
		if errors.Is(err, common.ErrConflict) {
			return common.SendConflictError(c, "Email already subscribed")
		}
		return common.SendError(c, err, "subscription")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Successfully subscribed to newsletter",
	})
}

// Unsubscribe handles DELETE /newsletter/:email
func (h *NewsletterHandlers) Unsubscribe(c echo.Context) error {
	email := c.Param("email")
	if err := h.newsletterService.Unsubscribe(c.Request().Context(), email); err != nil {
		return common.SendError(c, err, "subscriber")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Successfully unsubscribed from newsletter",
	})
}

// GetSubscribers handles GET /newsletter/subscribers
func (h *NewsletterHandlers) GetSubscribers(c echo.Context) error {
	subscribers, err := h.newsletterService.ListSubscribers(c.Request().Context())
	if err != nil {
		return common.SendError(c, err, "subscribers")
	}
	return c.JSON(http.StatusOK, subscribers)
}
