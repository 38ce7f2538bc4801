package services

import (
	"context"
	"fmt"
	"log"

	"homekitchen/internal/common"
	"homekitchen/internal/models"
	"homekitchen/internal/repositories"
)

var allowedResumeTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

type CareersService interface {
	SubmitApplication(ctx context.Context, application *models.CareerApplication, resume *models.ResumeUpload) error
	ListApplications(ctx context.Context) ([]*models.CareerApplication, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type careersService struct {
	careerRepo  repositories.CareerRepository
	storage     ResumeStorage
	email       EmailService
	maxFileSize int64
}

func NewCareersService(careerRepo repositories.CareerRepository, storage ResumeStorage, email EmailService, maxFileSize int64) CareersService {
	return &careersService{
		careerRepo:  careerRepo,
		storage:     storage,
		email:       email,
		maxFileSize: maxFileSize,
	}
}

// SubmitApplication validates and stores the resume (when provided), persists
// the application, then sends applicant and admin emails best-effort. Resume
// violations are rejected before anything is written.
func (s *careersService) SubmitApplication(ctx context.Context, application *models.CareerApplication, resume *models.ResumeUpload) error {
	if application.Name == "" {
		return common.NewValidationError("name", "name is required")
	}
	if application.Email == "" {
		return common.NewValidationError("email", "email is required")
	}
	if application.Phone == "" {
		return common.NewValidationError("phone", "phone is required")
	}
	if application.Position == "" {
		return common.NewValidationError("position", "position is required")
	}

	if resume != nil {
		if !allowedResumeTypes[resume.ContentType] {
			return common.NewValidationError("resume", "Only PDF, DOC, and DOCX files are allowed")
		}
		if resume.Size > s.maxFileSize {
			return common.NewValidationError("resume", fmt.Sprintf("File size must be less than %dMB", s.maxFileSize/(1024*1024)))
		}

		path, err := s.storage.Save(ctx, resume.Filename, resume.ContentType, resume.Reader, resume.Size)
		if err != nil {
			return fmt.Errorf("store resume: %w", err)
		}
		application.ResumePath = &path
	}

	application.Status = "pending"
	if err := s.careerRepo.Create(ctx, application); err != nil {
		return fmt.Errorf("create application: %w", err)
	}

	if !s.email.SendCareerConfirmation(application.Email, application.Position) {
		log.Printf("Career confirmation email not sent for application %d", application.ID)
	}
	if !s.email.SendAdminNotification("New Career Application - Home' Kitchen", careerAdminBody(application)) {
		log.Printf("Career admin notification not sent for application %d", application.ID)
	}

	return nil
}

func careerAdminBody(application *models.CareerApplication) string {
	return fmt.Sprintf(`
		<h2>New Job Application Received</h2>
		<p><strong>Name:</strong> %s</p>
		<p><strong>Email:</strong> %s</p>
		<p><strong>Phone:</strong> %s</p>
		<p><strong>Position:</strong> %s</p>
		<p><strong>Experience:</strong> %s</p>
		<p><strong>Message:</strong> %s</p>
		<p><strong>Resume:</strong> %s</p>
	`,
		application.Name,
		application.Email,
		application.Phone,
		application.Position,
		orDefault(application.Experience, "Not specified"),
		orDefault(application.Message, "No message"),
		orDefault(application.ResumePath, "Not provided"),
	)
}

func orDefault(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

func (s *careersService) ListApplications(ctx context.Context) ([]*models.CareerApplication, error) {
	return s.careerRepo.List(ctx)
}

func (s *careersService) UpdateStatus(ctx context.Context, id int64, status string) error {
	if status == "" {
		return common.NewValidationError("status", "status is required")
	}
	return s.careerRepo.UpdateStatus(ctx, id, status)
}
