package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"resumematch/internal/models"
)

// resumeColumns is the standard column list for resume queries.
const resumeColumns = `id, filename, original_name, extracted_text, candidate_name, created_at`

// scanResume scans a row into a Resume struct.
func scanResume(row pgx.Row) (*models.Resume, error) {
	var resume models.Resume
	err := row.Scan(
		&resume.ID,
		&resume.Filename,
		&resume.OriginalName,
		&resume.ExtractedText,
		&resume.CandidateName,
		&resume.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrResumeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &resume, nil
}

// CreateResume inserts an uploaded resume record.
func (d *DB) CreateResume(ctx context.Context, resume *models.Resume) error {
	query := `
		INSERT INTO resumes (filename, original_name, extracted_text, candidate_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	return d.Pool.QueryRow(ctx, query,
		resume.Filename,
		resume.OriginalName,
		resume.ExtractedText,
		resume.CandidateName,
	).Scan(&resume.ID, &resume.CreatedAt)
}

// GetResumeByID retrieves a resume by its ID.
func (d *DB) GetResumeByID(ctx context.Context, id uuid.UUID) (*models.Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE id = $1`
	return scanResume(d.Pool.QueryRow(ctx, query, id))
}

// GetResumeByFilename retrieves a resume by its stored filename.
func (d *DB) GetResumeByFilename(ctx context.Context, filename string) (*models.Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE filename = $1`
	return scanResume(d.Pool.QueryRow(ctx, query, filename))
}

// ListResumes returns all resumes, newest first.
func (d *DB) ListResumes(ctx context.Context) ([]models.Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes ORDER BY created_at DESC`

	rows, err := d.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resumes []models.Resume
	for rows.Next() {
		var resume models.Resume
		if err := rows.Scan(
			&resume.ID,
			&resume.Filename,
			&resume.OriginalName,
			&resume.ExtractedText,
			&resume.CandidateName,
			&resume.CreatedAt,
		); err != nil {
			return nil, err
		}
		resumes = append(resumes, resume)
	}

	return resumes, rows.Err()
}

// CountResumes returns the number of stored resumes.
func (d *DB) CountResumes(ctx context.Context) (int64, error) {
	var count int64
	err := d.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM resumes`).Scan(&count)
	return count, err
}
