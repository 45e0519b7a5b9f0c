package handlers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"

	"resumematch/internal/config"
	"resumematch/internal/db"
	"resumematch/internal/models"
	"resumematch/internal/validation"
)

// JobHandler handles job posting and the job listing on the home page.
type JobHandler struct {
	db  *db.DB
	cfg *config.Config
}

// NewJobHandler creates a new job handler.
func NewJobHandler(database *db.DB, cfg *config.Config) *JobHandler {
	return &JobHandler{db: database, cfg: cfg}
}

// Index renders the home page with the newest job postings.
func (h *JobHandler) Index(c fiber.Ctx) error {
	jobs, err := h.db.GetRecentJobs(c.Context(), 10)
	if err != nil {
		return err
	}

	return c.Render("index", renderData(c, h.cfg, fiber.Map{
		"Title": "Home",
		"Jobs":  jobs,
	}))
}

// New renders the job posting form.
func (h *JobHandler) New(c fiber.Ctx) error {
	return c.Render("post_job", renderData(c, h.cfg, fiber.Map{
		"Title": "Post a Job",
	}))
}

// Create inserts an employer and their job posting.
func (h *JobHandler) Create(c fiber.Ctx) error {
	company := strings.TrimSpace(c.FormValue("company"))
	email := strings.TrimSpace(c.FormValue("email"))
	title := strings.TrimSpace(c.FormValue("title"))
	description := strings.TrimSpace(c.FormValue("description"))

	if !validation.RequiredFields(company, title, description) {
		setFlash(c, FlashDanger, "Company, Title and Description are required.")
		return c.Redirect().To("/jobs/new")
	}

	employer := &models.Employer{Company: company, ContactEmail: email}
	if err := h.db.CreateEmployer(c.Context(), employer); err != nil {
		return fmt.Errorf("failed to save employer: %w", err)
	}

	job := &models.Job{EmployerID: employer.ID, Title: title, Description: description}
	if err := h.db.CreateJob(c.Context(), job); err != nil {
		return fmt.Errorf("failed to save job: %w", err)
	}

	setFlash(c, FlashSuccess, "Job posted successfully.")
	return c.Redirect().To("/")
}
