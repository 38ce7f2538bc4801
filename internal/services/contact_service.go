package services

import (
	"context"
	"fmt"
	"log"

	"homekitchen/internal/common"
	"homekitchen/internal/models"
	"homekitchen/internal/repositories"
)

type ContactService interface {
	SubmitMessage(ctx context.Context, req *models.ContactMessageCreate) error
	ListMessages(ctx context.Context) ([]*models.ContactMessage, error)
}

type contactService struct {
	contactRepo repositories.ContactRepository
	email       EmailService
}

func NewContactService(contactRepo repositories.ContactRepository, email EmailService) ContactService {
	return &contactService{contactRepo: contactRepo, email: email}
}

// SubmitMessage persists the message, then sends an admin copy and a fixed
// acknowledgment to the sender, both best-effort.
func (s *contactService) SubmitMessage(ctx context.Context, req *models.ContactMessageCreate) error {
	if req.Name == "" {
		return common.NewValidationError("name", "name is required")
	}
	if req.Email == "" {
		return common.NewValidationError("email", "email is required")
	}
	if req.Message == "" {
		return common.NewValidationError("message", "message is required")
	}

	message := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := s.contactRepo.Create(ctx, message); err != nil {
		return fmt.Errorf("create contact message: %w", err)
	}

	adminBody := fmt.Sprintf(`
		<h2>New Contact Message</h2>
		<p><strong>Name:</strong> %s</p>
		<p><strong>Email:</strong> %s</p>
		<p><strong>Subject:</strong> %s</p>
		<p><strong>Message:</strong></p>
		<p>%s</p>
	`, message.Name, message.Email, orDefault(message.Subject, "No subject"), message.Message)
	if !s.email.SendAdminNotification("New Contact Message - Home' Kitchen", adminBody) {
		log.Printf("Contact admin notification not sent for message %d", message.ID)
	}

	ackBody := `
		<h2>Thank you for your message!</h2>
		<p>We have received your message and will get back to you within 24 hours.</p>
		<p>If you need immediate assistance, please call us at +1 (555) 123-4567</p>
	`
	if !s.email.Send(message.Email, "Message Received - Home' Kitchen", ackBody) {
		log.Printf("Contact acknowledgment not sent for message %d", message.ID)
	}

	return nil
}

func (s *contactService) ListMessages(ctx context.Context) ([]*models.ContactMessage, error) {
	return s.contactRepo.List(ctx)
}
