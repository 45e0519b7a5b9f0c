package handlers

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"resumematch/internal/config"
	"resumematch/internal/db"
	"resumematch/internal/extract"
	"resumematch/internal/metrics"
	"resumematch/internal/models"
	"resumematch/internal/validation"
)

// ResumeHandler handles resume upload and download.
type ResumeHandler struct {
	db  *db.DB
	cfg *config.Config
}

// NewResumeHandler creates a new resume handler.
func NewResumeHandler(database *db.DB, cfg *config.Config) *ResumeHandler {
	return &ResumeHandler{db: database, cfg: cfg}
}

// New renders the upload form.
func (h *ResumeHandler) New(c fiber.Ctx) error {
	return c.Render("upload_resume", renderData(c, h.cfg, fiber.Map{
		"Title": "Upload Resume",
	}))
}

// Create accepts a multipart resume upload, stages the file on disk,
// extracts its text, and persists the record. Extraction failure is not an
// error: the resume is stored with empty text and the user gets a warning.
func (h *ResumeHandler) Create(c fiber.Ctx) error {
	candidateName := strings.TrimSpace(c.FormValue("candidate_name"))

	fileHeader, err := c.FormFile("resume")
	if err != nil || fileHeader.Filename == "" {
		setFlash(c, FlashDanger, "No file selected")
		return c.Redirect().To("/resumes/new")
	}

	if !validation.AllowedFile(fileHeader.Filename) {
		setFlash(c, FlashDanger, "File type not allowed. Allowed: pdf, docx, doc, txt")
		return c.Redirect().To("/resumes/new")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return fmt.Errorf("failed to open upload: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("failed to read upload: %w", err)
	}

	originalName := validation.SanitizeFilename(fileHeader.Filename)
	storedName := strings.ReplaceAll(uuid.New().String(), "-", "") + "_" + originalName

	if err := os.MkdirAll(h.cfg.UploadDir, 0o755); err != nil {
		return fmt.Errorf("failed to create upload dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(h.cfg.UploadDir, storedName), data, 0o644); err != nil {
		return fmt.Errorf("failed to store upload: %w", err)
	}

	// Format comes from the uploaded name's extension, not from the bytes.
	format, _ := extract.FormatFromFilename(fileHeader.Filename)
	text := extract.Text(data, format)
	metrics.RecordUpload(string(format), text)

	resume := &models.Resume{
		Filename:      storedName,
		OriginalName:  originalName,
		ExtractedText: text,
		CandidateName: candidateName,
	}
	if err := h.db.CreateResume(c.Context(), resume); err != nil {
		return fmt.Errorf("failed to save resume: %w", err)
	}

	if !resume.HasText() {
		slog.Warn("resume extraction produced no text", "resume_id", resume.ID, "format", format)
		setFlash(c, FlashWarning, "Could not extract text from the resume. Try a different format.")
	} else {
		setFlash(c, FlashSuccess, "Resume uploaded successfully.")
	}

	return c.Redirect().To("/resumes/" + resume.ID.String() + "/matches")
}

// Download serves a stored resume file as an attachment. The filename must
// match a stored record exactly, which also rules out path traversal.
func (h *ResumeHandler) Download(c fiber.Ctx) error {
	filename := c.Params("filename")

	resume, err := h.db.GetResumeByFilename(c.Context(), filename)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "file not found")
	}

	path := filepath.Join(h.cfg.UploadDir, resume.Filename)
	return c.Download(path, resume.OriginalName)
}
