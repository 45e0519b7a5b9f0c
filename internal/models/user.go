package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user authenticated via OIDC. Accounts exist only to
// gate the admin view; uploading resumes and posting jobs need no login.
type User struct {
	ID        uuid.UUID `json:"id"`
	Sub       string    `json:"sub"` // OIDC subject identifier
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
