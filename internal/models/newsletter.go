package models

import "time"

type NewsletterSubscriber struct {
	ID           int64     `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	SubscribedAt time.Time `json:"subscribed_at" db:"subscribed_at"`
}

// NewsletterSubscriptionCreate is the request body for subscribing.
type NewsletterSubscriptionCreate struct {
	Email string `json:"email"`
}
