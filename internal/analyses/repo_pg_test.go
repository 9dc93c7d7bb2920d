package analyses

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	repo := &PGRepo{DB: db}
	createdAt := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO analyses")).
		WithArgs("a-1", "doc-1", sqlmock.AnyArg(), StatusQueued, createdAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Create(context.Background(), Analysis{
		ID:         "a-1",
		DocumentID: "doc-1",
		Status:     StatusQueued,
		CreatedAt:  createdAt,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGRepoGetByID_ParsesReport(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	repo := &PGRepo{DB: db}
	createdAt := time.Now().UTC()
	reportJSON := `{"identity":{"name":"Jane Doe","email":"jane@example.com","profileUrl":"Not Found"},"experienceYears":5,"skills":{"Languages":["Python"]},"projects":[],"projectScore":8,"similarityScore":0,"proficiency":{"tier":"Expert","level":6},"readiness":{"ready":true,"score":7,"factors":[]}}`

	rows := sqlmock.NewRows([]string{
		"id", "document_id", "job_description", "status", "report",
		"error_code", "error_message", "created_at", "started_at", "completed_at",
	}).AddRow("a-1", "doc-1", nil, StatusCompleted, []byte(reportJSON), nil, nil, createdAt, nil, nil)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs("a-1").
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "a-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Report == nil || got.Report.Proficiency.Tier != "Expert" {
		t.Fatalf("unexpected report: %+v", got.Report)
	}
	if got.Report.Identity.Name != "Jane Doe" {
		t.Fatalf("unexpected identity: %+v", got.Report.Identity)
	}
}

func TestPGRepoMarkFailed_MissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	repo := &PGRepo{DB: db}
	mock.ExpectExec(regexp.QuoteMeta("UPDATE analyses")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.MarkFailed(context.Background(), "missing", ErrorCodeInternal, "boom", time.Now().UTC())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
