package models

import (
	"time"

	"github.com/google/uuid"
)

// Employer represents a company that posts jobs.
type Employer struct {
	ID           uuid.UUID `json:"id"`
	Company      string    `json:"company"`
	ContactEmail string    `json:"contact_email"`
	CreatedAt    time.Time `json:"created_at"`
}

// Job represents an employer's job posting.
type Job struct {
	ID          uuid.UUID `json:"id"`
	EmployerID  uuid.UUID `json:"employer_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Company     string    `json:"company"` // joined from employers for display
	CreatedAt   time.Time `json:"created_at"`
}

// MatchText is the text a resume is scored against: the description plus
// the title, so title keywords count too.
func (j Job) MatchText() string {
	return j.Description + " " + j.Title
}
