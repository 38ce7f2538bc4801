package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"homekitchen/internal/common"
	"homekitchen/internal/models"
	"homekitchen/internal/services"
)

// ContactHandlers handles HTTP requests for contact messages
type ContactHandlers struct {
	contactService services.ContactService
}

func NewContactHandlers(contactService services.ContactService) *ContactHandlers {
	return &ContactHandlers{contactService: contactService}
}

// SubmitMessage handles POST /contact
func (h *ContactHandlers) SubmitMessage(c echo.Context) error {
	var req models.ContactMessageCreate
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	if err := h.contactService.SubmitMessage(c.Request().Context(), &req); err != nil {
		return common.SendError(c, err, "message")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Message sent successfully",
	})
}

// GetMessages handles GET /contact/messages
func (h *ContactHandlers) GetMessages(c echo.Context) error {
	messages, err := h.contactService.ListMessages(c.Request().Context())
	if err != nil {
		return common.SendError(c, err, "messages")
	}
	return c.JSON(http.StatusOK, messages)
}
