package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Resume represents an uploaded candidate resume and its extracted text.
type Resume struct {
	ID            uuid.UUID `json:"id"`
	Filename      string    `json:"filename"`      // unique stored name on disk
	OriginalName  string    `json:"original_name"` // sanitized name as uploaded
	ExtractedText string    `json:"extracted_text"`
	CandidateName string    `json:"candidate_name"`
	CreatedAt     time.Time `json:"created_at"`
}

// HasText reports whether extraction produced any usable text.
func (r Resume) HasText() bool {
	return strings.TrimSpace(r.ExtractedText) != ""
}
