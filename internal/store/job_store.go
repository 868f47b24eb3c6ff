package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wouterdom/kookboek/internal/domain"
)

type JobStore struct {
	db *sql.DB
}

func NewJobStore(db *sql.DB) *JobStore {
	return &JobStore{db: db}
}

func (s *JobStore) Create(ctx context.Context, id, filename string, fileSize int64) (*domain.ImportJob, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO import_jobs (id, filename, file_size, status) VALUES (?, ?, ?, ?)
	`, id, filename, fileSize, domain.JobProcessing)
	if err != nil {
		return nil, fmt.Errorf("failed to create import job: %w", err)
	}
	return s.GetByID(ctx, id)
}

func (s *JobStore) GetByID(ctx context.Context, id string) (*domain.ImportJob, error) {
	job := &domain.ImportJob{}
	var errMsg sql.NullString
	err := s.db.QueryRowContext(ctx, `
		SELECT id, filename, file_size, status, recipes_found, recipes_imported,
		       error_message, created_at, completed_at
		FROM import_jobs WHERE id = ?
	`, id).Scan(&job.ID, &job.Filename, &job.FileSize, &job.Status, &job.RecipesFound,
		&job.RecipesImported, &errMsg, &job.CreatedAt, &job.CompletedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get import job: %w", err)
	}
	job.ErrorMessage = errMsg.String
	return job, nil
}

// SetFound records the number of candidate recipes the extraction call
// yielded.
func (s *JobStore) SetFound(ctx context.Context, id string, found int) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE import_jobs SET recipes_found = ? WHERE id = ?
	`, found, id)
	if err != nil {
		return fmt.Errorf("failed to update recipes_found: %w", err)
	}
	return nil
}

// Complete marks the job completed with its final imported count.
func (s *JobStore) Complete(ctx context.Context, id string, imported int) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE import_jobs
		SET status = ?, recipes_imported = ?, completed_at = datetime('now')
		WHERE id = ?
	`, domain.JobCompleted, imported, id)
	if err != nil {
		return fmt.Errorf("failed to complete import job: %w", err)
	}
	return nil
}

// Fail marks the job failed. Failed jobs are terminal; the user re-uploads.
func (s *JobStore) Fail(ctx context.Context, id, message string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE import_jobs
		SET status = ?, error_message = ?, completed_at = datetime('now')
		WHERE id = ?
	`, domain.JobFailed, message, id)
	if err != nil {
		return fmt.Errorf("failed to mark import job failed: %w", err)
	}
	return nil
}
