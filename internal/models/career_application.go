package models

import (
	"io"
	"time"
)

type CareerApplication struct {
	ID         int64     `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Email      string    `json:"email" db:"email"`
	Phone      string    `json:"phone" db:"phone"`
	Position   string    `json:"position" db:"position"`
	Experience *string   `json:"experience" db:"experience"`
	Message    *string   `json:"message" db:"message"`
	ResumePath *string   `json:"resume_path" db:"resume_path"`
	Status     string    `json:"status" db:"status"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// ResumeUpload describes an uploaded resume file before validation.
type ResumeUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}
