package analyses

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-vetter/internal/documents"
	"resume-vetter/internal/extract"
	"resume-vetter/internal/llm"
	"resume-vetter/internal/pipeline"
	"resume-vetter/internal/profile"
	"resume-vetter/internal/shared/metrics"
	"resume-vetter/internal/shared/storage/object"
	"resume-vetter/internal/shared/telemetry"
)

const (
	StatusQueued     = "queued"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Service contains business logic for analyses.
type Service struct {
	Repo     Repo
	DocRepo  documents.DocumentsRepo
	Store    object.ObjectStore
	Analyzer *pipeline.Analyzer
	Profiles *profile.Checker
	LLM      llm.Client
}

// Create enqueues a new analysis and kicks off asynchronous completion.
func (s *Service) Create(ctx context.Context, documentID, jobDescription string) (Analysis, error) {
	if documentID == "" {
		return Analysis{}, ErrInvalidInput
	}
	if _, err := s.DocRepo.GetByID(ctx, documentID); err != nil {
		if errors.Is(err, documents.ErrNotFound) {
			return Analysis{}, ErrNotFound
		}
		return Analysis{}, err
	}

	analysis := Analysis{
		ID:             uuid.NewString(),
		DocumentID:     documentID,
		JobDescription: jobDescription,
		Status:         StatusQueued,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, analysis); err != nil {
		return Analysis{}, err
	}

	go s.completeAsync(backgroundWithRequestID(ctx), analysis.ID)

	return analysis, nil
}

// Get returns an analysis by ID.
func (s *Service) Get(ctx context.Context, analysisID string) (Analysis, error) {
	if analysisID == "" {
		return Analysis{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, analysisID)
}

// List returns analyses ordered newest-first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Analysis, error) {
	return s.Repo.List(ctx, limit, offset)
}

func (s *Service) completeAsync(ctx context.Context, analysisID string) {
	defer func() {
		if r := recover(); r != nil {
			s.failAnalysis(ctx, analysisID, "", fmt.Errorf("panic: %v", r), nil)
		}
	}()
	startedAt := time.Now().UTC()
	if err := s.Repo.MarkProcessing(ctx, analysisID, startedAt); err != nil {
		s.failAnalysis(ctx, analysisID, "", fmt.Errorf("set processing failed: %w", err), &startedAt)
		return
	}

	analysis, err := s.Repo.GetByID(ctx, analysisID)
	if err != nil {
		s.failAnalysis(ctx, analysisID, "", fmt.Errorf("analysis lookup: %w", err), &startedAt)
		return
	}
	metrics.IncAnalysisStarted()
	telemetry.Info("analysis.status", map[string]any{
		"request_id":        requestIDFromContext(ctx),
		"document_id":       analysis.DocumentID,
		"analysis_id":       analysis.ID,
		"status":            StatusProcessing,
		"status_transition": "queued->processing",
	})
	if s.DocRepo == nil || s.Store == nil {
		s.failAnalysis(ctx, analysisID, analysis.DocumentID, errors.New("missing document store dependencies"), &startedAt)
		return
	}

	doc, err := s.DocRepo.GetByID(ctx, analysis.DocumentID)
	if err != nil {
		s.failAnalysis(ctx, analysisID, analysis.DocumentID, fmt.Errorf("document lookup id=%s: %w", analysis.DocumentID, err), &startedAt)
		return
	}

	extractedKey := doc.ExtractedTextKey
	if extractedKey == "" {
		if _, err := extract.ExtractText(ctx, s.Store, doc.StorageKey, doc.MimeType, doc.FileName); err != nil {
			s.failAnalysis(ctx, analysisID, analysis.DocumentID, fmt.Errorf("document %s mime %s: %w", doc.ID, doc.MimeType, err), &startedAt)
			return
		}
		extractedKey = doc.StorageKey + ".extracted.txt"
		if err := s.DocRepo.UpdateExtraction(ctx, doc.ID, extractedKey, time.Now().UTC()); err != nil {
			s.failAnalysis(ctx, analysisID, analysis.DocumentID, fmt.Errorf("document %s: update extraction: %w", doc.ID, err), &startedAt)
			return
		}
	}

	text, err := loadText(ctx, s.Store, extractedKey)
	if err != nil {
		s.failAnalysis(ctx, analysisID, analysis.DocumentID, fmt.Errorf("document %s: load extracted text: %w", doc.ID, err), &startedAt)
		return
	}

	report, err := s.buildReport(ctx, text, analysis.JobDescription)
	if err != nil {
		s.failAnalysis(ctx, analysisID, analysis.DocumentID, err, &startedAt)
		return
	}

	completedAt := time.Now().UTC()
	if err := s.Repo.MarkCompleted(ctx, analysisID, report, completedAt); err != nil {
		s.failAnalysis(ctx, analysisID, analysis.DocumentID, fmt.Errorf("set analysis result failed: %w", err), &startedAt)
		return
	}
	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(durationMs(&startedAt, &completedAt))
	telemetry.Info("analysis.status", map[string]any{
		"request_id":        requestIDFromContext(ctx),
		"document_id":       analysis.DocumentID,
		"analysis_id":       analysis.ID,
		"status":            StatusCompleted,
		"status_transition": "processing->completed",
		"duration_ms":       durationMs(&startedAt, &completedAt),
	})
}

// buildReport runs the heuristic pipeline and layers on the profile check and
// optional AI review. Readiness is re-evaluated once profile validity is known.
func (s *Service) buildReport(ctx context.Context, text, jobDescription string) (*Report, error) {
	analyzer := s.Analyzer
	if analyzer == nil {
		analyzer = pipeline.New()
	}

	base, err := analyzer.Run(text)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	report := &Report{Report: base}

	if s.Profiles != nil {
		result := s.Profiles.Check(ctx, base.Identity.ProfileURL)
		report.Profile = &result
		// A resume with no profile URL carries the "No profile found" notice
		// only; validity contributes a readiness factor just when a real URL
		// was actually checked.
		if base.Identity.ProfileURL != pipeline.NotFound && base.Identity.ProfileURL != "" {
			valid := result.Valid
			report.Readiness = pipeline.EvaluateReadiness(base.Proficiency, base.ProjectScore, &valid)
		}
		if len(result.Skills) > 0 {
			if report.Skills == nil {
				report.Skills = map[string][]string{}
			}
			report.Skills[pipeline.ProfileSkillsCategory] = result.Skills
		}
	}

	if s.LLM != nil {
		review, err := s.LLM.ReviewResume(ctx, llm.ReviewInput{
			ResumeText:     text,
			JobDescription: jobDescription,
		})
		switch {
		case err == nil:
			report.AIReview = &review
		case errors.Is(err, llm.ErrNotConfigured):
			// AI review disabled; heuristic report stands alone.
		default:
			report.AIReviewError = sanitizeError(err)
			telemetry.Warn("analysis.ai_review_failed", map[string]any{
				"request_id": requestIDFromContext(ctx),
				"error":      report.AIReviewError,
			})
		}
	}

	return report, nil
}

func (s *Service) failAnalysis(ctx context.Context, analysisID, documentID string, err error, startedAt *time.Time) {
	code := classifyFailure(err)
	msg := sanitizeError(err)
	completedAt := time.Now().UTC()
	if updateErr := s.Repo.MarkFailed(context.Background(), analysisID, code, msg, completedAt); updateErr != nil {
		telemetry.Error("analysis.fail_update_failed", map[string]any{
			"analysis_id": analysisID,
			"error":       sanitizeError(updateErr),
			"original":    msg,
		})
	}
	metrics.IncAnalysisFailed()
	if startedAt != nil {
		metrics.ObserveAnalysisDurationMs(durationMs(startedAt, &completedAt))
	}
	telemetry.Info("analysis.status", map[string]any{
		"request_id":        requestIDFromContext(ctx),
		"document_id":       documentID,
		"analysis_id":       analysisID,
		"status":            StatusFailed,
		"status_transition": "processing->failed",
		"error_code":        code,
		"duration_ms":       durationMs(startedAt, &completedAt),
	})
}

func durationMs(startedAt, completedAt *time.Time) float64 {
	if startedAt == nil || completedAt == nil {
		return 0
	}
	return float64(completedAt.Sub(*startedAt).Microseconds()) / 1000.0
}

func classifyFailure(err error) string {
	if err == nil {
		return ErrorCodeInternal
	}
	if errors.Is(err, pipeline.ErrEmptyText) {
		return ErrorCodeEmptyText
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "unsupported mime type") {
		return ErrorCodeUnsupported
	}
	if strings.Contains(msg, "extract text") {
		return ErrorCodeExtraction
	}
	if strings.Contains(msg, "document") || strings.Contains(msg, "storage") || strings.Contains(msg, "analysis result") || strings.Contains(msg, "set processing") {
		return ErrorCodeStorage
	}
	return ErrorCodeInternal
}

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	msg := strings.ReplaceAll(err.Error(), "\n", " ")
	msg = strings.ReplaceAll(msg, "\r", " ")
	msg = strings.TrimSpace(msg)
	const maxLen = 500
	if len(msg) > maxLen {
		msg = msg[:maxLen]
	}
	return msg
}

func loadText(ctx context.Context, store object.ObjectStore, key string) (string, error) {
	body, err := store.Open(ctx, key)
	if err != nil {
		return "", err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
