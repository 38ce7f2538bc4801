package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"homekitchen/internal/common"
	"homekitchen/internal/models"
	"homekitchen/internal/services"
)

// CareersHandlers handles HTTP requests for career applications
type CareersHandlers struct {
	careersService services.CareersService
}

func NewCareersHandlers(careersService services.CareersService) *CareersHandlers {
	return &CareersHandlers{careersService: careersService}
}

// SubmitApplication handles POST /careers (multipart form)
func (h *CareersHandlers) SubmitApplication(c echo.Context) error {
	application := &models.CareerApplication{
		Name:       c.FormValue("name"),
		Email:      c.FormValue("email"),
		Phone:      c.FormValue("phone"),
		Position:   c.FormValue("position"),
		Experience: optionalFormValue(c, "experience"),
		Message:    optionalFormValue(c, "message"),
	}

	var resume *models.ResumeUpload
	if fileHeader, err := c.FormFile("resume"); err == nil && fileHeader != nil {
		src, err := fileHeader.Open()
		if err != nil {
			return common.SendServerError(c, "Failed to read resume: "+err.Error())
		}
		defer src.Close()

		resume = &models.ResumeUpload{
			Filename:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Size:        fileHeader.Size,
			Reader:      src,
		}
	}

	if err := h.careersService.SubmitApplication(c.Request().Context(), application, resume); err != nil {
		return common.SendError(c, err, "application")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Application submitted successfully",
	})
}

// GetApplications handles GET /careers/applications
func (h *CareersHandlers) GetApplications(c echo.Context) error {
	applications, err := h.careersService.ListApplications(c.Request().Context())
	if err != nil {
		return common.SendError(c, err, "applications")
	}
	return c.JSON(http.StatusOK, applications)
}

// UpdateApplicationStatus handles PUT /careers/applications/:id/status
func (h *CareersHandlers) UpdateApplicationStatus(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return common.SendClientError(c, "Invalid application id")
	}

	status := c.QueryParam("status")
	if err := h.careersService.UpdateStatus(c.Request().Context(), id, status); err != nil {
		return common.SendError(c, err, "application")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Application status updated to " + status,
	})
}

func optionalFormValue(c echo.Context, field string) *string {
	if v := c.FormValue(field); v != "" {
		return &v
	}
	return nil
}
