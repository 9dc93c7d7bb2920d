package analyses

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// PGRepo implements Repo using Postgres. Reports are stored as JSONB.
type PGRepo struct {
	DB *sql.DB
}

const analysisColumns = `id, document_id, job_description, status, report, error_code, error_message, created_at, started_at, completed_at`

// Create inserts a new analysis in its initial state.
func (r *PGRepo) Create(ctx context.Context, analysis Analysis) error {
	const query = `
INSERT INTO analyses (
    id,
    document_id,
    job_description,
    status,
    created_at
) VALUES ($1, $2, $3, $4, $5)`

	var jobDescription sql.NullString
	if analysis.JobDescription != "" {
		jobDescription = sql.NullString{String: analysis.JobDescription, Valid: true}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		analysis.ID,
		analysis.DocumentID,
		jobDescription,
		analysis.Status,
		analysis.CreatedAt,
	)
	return err
}

// GetByID fetches an analysis by ID.
func (r *PGRepo) GetByID(ctx context.Context, analysisID string) (Analysis, error) {
	const query = `
SELECT ` + analysisColumns + `
FROM analyses
WHERE id = $1
LIMIT 1`
	analysis, err := scanAnalysis(r.DB.QueryRowContext(ctx, query, analysisID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Analysis{}, ErrNotFound
		}
		return Analysis{}, err
	}
	return analysis, nil
}

// List returns analyses ordered newest-first.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Analysis, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT ` + analysisColumns + `
FROM analyses
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Analysis
	for rows.Next() {
		analysis, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, analysis)
	}
	return out, rows.Err()
}

// MarkProcessing transitions a queued analysis to processing.
func (r *PGRepo) MarkProcessing(ctx context.Context, analysisID string, startedAt time.Time) error {
	const query = `
UPDATE analyses
SET status = $1, started_at = $2
WHERE id = $3`
	return r.exec(ctx, query, StatusProcessing, startedAt, analysisID)
}

// MarkCompleted stores the report and transitions to completed.
func (r *PGRepo) MarkCompleted(ctx context.Context, analysisID string, report *Report, completedAt time.Time) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	const query = `
UPDATE analyses
SET status = $1, report = $2, completed_at = $3
WHERE id = $4`
	return r.exec(ctx, query, StatusCompleted, payload, completedAt, analysisID)
}

// MarkFailed records the failure code/message and transitions to failed.
func (r *PGRepo) MarkFailed(ctx context.Context, analysisID, errorCode, errorMessage string, completedAt time.Time) error {
	const query = `
UPDATE analyses
SET status = $1, error_code = $2, error_message = $3, completed_at = $4
WHERE id = $5`
	return r.exec(ctx, query, StatusFailed, errorCode, errorMessage, completedAt, analysisID)
}

func (r *PGRepo) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (Analysis, error) {
	var analysis Analysis
	var jobDescription sql.NullString
	var report []byte
	var errorCode sql.NullString
	var errorMessage sql.NullString
	var startedAt sql.NullTime
	var completedAt sql.NullTime
	if err := row.Scan(
		&analysis.ID,
		&analysis.DocumentID,
		&jobDescription,
		&analysis.Status,
		&report,
		&errorCode,
		&errorMessage,
		&analysis.CreatedAt,
		&startedAt,
		&completedAt,
	); err != nil {
		return Analysis{}, err
	}
	if jobDescription.Valid {
		analysis.JobDescription = jobDescription.String
	}
	if len(report) > 0 {
		var parsed Report
		if err := json.Unmarshal(report, &parsed); err != nil {
			return Analysis{}, fmt.Errorf("unmarshal report: %w", err)
		}
		analysis.Report = &parsed
	}
	if errorCode.Valid {
		analysis.ErrorCode = errorCode.String
	}
	if errorMessage.Valid {
		analysis.ErrorMessage = errorMessage.String
	}
	if startedAt.Valid {
		analysis.StartedAt = &startedAt.Time
	}
	if completedAt.Valid {
		analysis.CompletedAt = &completedAt.Time
	}
	return analysis, nil
}

var _ Repo = (*PGRepo)(nil)
