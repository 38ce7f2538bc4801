package services

import (
	"context"
	"fmt"

	"homekitchen/internal/common"
	"homekitchen/internal/models"
	"homekitchen/internal/repositories"
)

type NewsletterService interface {
	Subscribe(ctx context.Context, email string) error
	Unsubscribe(ctx context.Context, email string) error
	ListSubscribers(ctx context.Context) ([]*models.NewsletterSubscriber, error)
}

type newsletterService struct {
	newsletterRepo repositories.NewsletterRepository
}

func NewNewsletterService(newsletterRepo repositories.NewsletterRepository) NewsletterService {
	return &newsletterService{newsletterRepo: newsletterRepo}
}

func (s *newsletterService) Subscribe(ctx context.Context, email string) error {
	if email == "" {
		return common.NewValidationError("email", "email is required")
	}

	exists, err := s.newsletterRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("check subscription: %w", err)
	}
	if exists {
		return fmt.Errorf("email already subscribed: %w", common.ErrConflict)
	}

	subscriber := &models.NewsletterSubscriber{Email: email}
	return s.newsletterRepo.Create(ctx, subscriber)
}

func (s *newsletterService) Unsubscribe(ctx context.Context, email string) error {
	if email == "" {
		return common.NewValidationError("email", "email is required")
	}
	return s.newsletterRepo.DeleteByEmail(ctx, email)
}

func (s *newsletterService) ListSubscribers(ctx context.Context) ([]*models.NewsletterSubscriber, error) {
	return s.newsletterRepo.List(ctx)
}
