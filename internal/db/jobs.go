package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"resumematch/internal/models"
)

// jobColumns is the standard column list for job queries, with the
// employer's company joined in for display.
const jobColumns = `j.id, j.employer_id, j.title, j.description, e.company, j.created_at`

// scanJobs scans multiple rows into a slice of Jobs.
func scanJobs(rows pgx.Rows) ([]models.Job, error) {
	defer rows.Close()

	var jobs []models.Job
	for rows.Next() {
		var job models.Job
		if err := rows.Scan(
			&job.ID,
			&job.EmployerID,
			&job.Title,
			&job.Description,
			&job.Company,
			&job.CreatedAt,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	return jobs, rows.Err()
}

// CreateEmployer inserts an employer record.
func (d *DB) CreateEmployer(ctx context.Context, employer *models.Employer) error {
	query := `
		INSERT INTO employers (company, contact_email)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	return d.Pool.QueryRow(ctx, query,
		employer.Company,
		employer.ContactEmail,
	).Scan(&employer.ID, &employer.CreatedAt)
}

// CreateJob inserts a job posting.
func (d *DB) CreateJob(ctx context.Context, job *models.Job) error {
	query := `
		INSERT INTO jobs (employer_id, title, description)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	return d.Pool.QueryRow(ctx, query,
		job.EmployerID,
		job.Title,
		job.Description,
	).Scan(&job.ID, &job.CreatedAt)
}

// GetJobByID retrieves a job by its ID.
func (d *DB) GetJobByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM jobs j JOIN employers e ON e.id = j.employer_id
		WHERE j.id = $1
	`

	var job models.Job
	err := d.Pool.QueryRow(ctx, query, id).Scan(
		&job.ID,
		&job.EmployerID,
		&job.Title,
		&job.Description,
		&job.Company,
		&job.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// GetRecentJobs returns the newest jobs up to limit.
func (d *DB) GetRecentJobs(ctx context.Context, limit int) ([]models.Job, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM jobs j JOIN employers e ON e.id = j.employer_id
		ORDER BY j.created_at DESC
		LIMIT $1
	`

	rows, err := d.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	return scanJobs(rows)
}

// ListJobs returns all jobs, newest first.
func (d *DB) ListJobs(ctx context.Context) ([]models.Job, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM jobs j JOIN employers e ON e.id = j.employer_id
		ORDER BY j.created_at DESC
	`

	rows, err := d.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return scanJobs(rows)
}

// CountJobs returns the number of stored jobs.
func (d *DB) CountJobs(ctx context.Context) (int64, error) {
	var count int64
	err := d.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&count)
	return count, err
}
