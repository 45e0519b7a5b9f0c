package handlers

import (
	"github.com/gofiber/fiber/v3"

	"resumematch/internal/config"
	"resumematch/internal/db"
)

// AdminHandler renders the admin overview of all resumes and jobs.
type AdminHandler struct {
	db  *db.DB
	cfg *config.Config
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(database *db.DB, cfg *config.Config) *AdminHandler {
	return &AdminHandler{db: database, cfg: cfg}
}

// Index lists all resumes and jobs, newest first.
func (h *AdminHandler) Index(c fiber.Ctx) error {
	resumes, err := h.db.ListResumes(c.Context())
	if err != nil {
		return err
	}

	jobs, err := h.db.ListJobs(c.Context())
	if err != nil {
		return err
	}

	return c.Render("admin", renderData(c, h.cfg, fiber.Map{
		"Title":   "Admin",
		"Resumes": resumes,
		"Jobs":    jobs,
	}))
}
