package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"homekitchen/internal/common"
	"homekitchen/internal/services"
)

// MenuHandlers handles HTTP requests for the menu catalog
type MenuHandlers struct {
	menuService services.MenuService
}

func NewMenuHandlers(menuService services.MenuService) *MenuHandlers {
	return &MenuHandlers{menuService: menuService}
}

// GetMenu handles GET /menu
func (h *MenuHandlers) GetMenu(c echo.Context) error {
	items, err := h.menuService.ListAvailable(c.Request().Context())
	if err != nil {
		return common.SendError(c, err, "menu")
	}
	return c.JSON(http.StatusOK, items)
}

// GetMenuByCategory handles GET /menu/:category
func (h *MenuHandlers) GetMenuByCategory(c echo.Context) error {
	category := c.Param("category")
	items, err := h.menuService.ListByCategory(c.Request().Context(), category)
	if err != nil {
		return common.SendError(c, err, "menu category")
	}
	return c.JSON(http.StatusOK, items)
}

// GetCategories handles GET /menu/categories
func (h *MenuHandlers) GetCategories(c echo.Context) error {
	categories, err := h.menuService.ListCategories(c.Request().Context())
	if err != nil {
		return common.SendError(c, err, "categories")
	}
	if categories == nil {
		categories = []string{}
	}
	return c.JSON(http.StatusOK, categories)
}
