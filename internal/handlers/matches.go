package handlers

import (
	"sort"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"resumematch/internal/config"
	"resumematch/internal/db"
	"resumematch/internal/match"
	"resumematch/internal/metrics"
	"resumematch/internal/models"
)

// MatchHandler scores a resume against every job posting.
type MatchHandler struct {
	db     *db.DB
	cfg    *config.Config
	scorer *match.Scorer
}

// NewMatchHandler creates a new match handler.
func NewMatchHandler(database *db.DB, cfg *config.Config, scorer *match.Scorer) *MatchHandler {
	return &MatchHandler{db: database, cfg: cfg, scorer: scorer}
}

// Show renders the ranked matches for one resume.
func (h *MatchHandler) Show(c fiber.Ctx) error {
	resumeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid resume id")
	}

	resume, err := h.db.GetResumeByID(c.Context(), resumeID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "resume not found")
	}

	jobs, err := h.db.ListJobs(c.Context())
	if err != nil {
		return err
	}

	matches := rankJobs(h.scorer, resume.ExtractedText, jobs, h.cfg.MatchLimit)
	for _, m := range matches {
		metrics.RecordMatchScore(m.Score)
	}

	return c.Render("matches", renderData(c, h.cfg, fiber.Map{
		"Title":       "Matches",
		"Resume":      resume,
		"Matches":     matches,
		"TopKeywords": h.scorer.TokenizeTop(resume.ExtractedText, 10),
		"NoText":      !resume.HasText(),
	}))
}

// rankJobs scores the resume against each job, sorts descending by score,
// and truncates to limit. Jobs with equal scores keep their input order.
func rankJobs(scorer *match.Scorer, resumeText string, jobs []models.Job, limit int) []models.JobMatch {
	matches := make([]models.JobMatch, 0, len(jobs))
	for _, job := range jobs {
		score, matched := scorer.Score(resumeText, job.MatchText())
		matches = append(matches, models.JobMatch{Job: job, Score: score, Matched: matched})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
