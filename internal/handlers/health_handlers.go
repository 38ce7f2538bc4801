package handlers

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

const version = "1.0.0"

// HealthHandlers handles health check endpoints
type HealthHandlers struct {
	db *pgxpool.Pool
}

func NewHealthHandlers(db *pgxpool.Pool) *HealthHandlers {
	return &HealthHandlers{db: db}
}

// HealthCheck handles GET /health
func (h *HealthHandlers) HealthCheck(c echo.Context) error {
	status := "OK"
	message := "Home' Kitchen API is running"
	code := http.StatusOK

	if err := h.db.Ping(c.Request().Context()); err != nil {
		status = "degraded"
		message = "Database unavailable"
		code = http.StatusServiceUnavailable
	}

	return c.JSON(code, map[string]string{
		"status":  status,
		"message": message,
		"version": version,
	})
}

// Root handles GET /
func (h *HealthHandlers) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Welcome to Home' Kitchen API",
		"health":  "/api/health",
	})
}
