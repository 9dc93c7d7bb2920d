package analyses

import (
	"time"

	"resume-vetter/internal/llm"
	"resume-vetter/internal/pipeline"
	"resume-vetter/internal/profile"
)

// Analysis represents a resume vetting job for an uploaded document.
type Analysis struct {
	ID             string     `json:"id"`
	DocumentID     string     `json:"documentId"`
	JobDescription string     `json:"jobDescription,omitempty"`
	Status         string     `json:"status"`
	Report         *Report    `json:"report,omitempty"`
	ErrorCode      string     `json:"errorCode,omitempty"`
	ErrorMessage   string     `json:"errorMessage,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	StartedAt      *time.Time `json:"startedAt,omitempty"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
}

// Report is the complete vetting output: the heuristic pipeline report plus
// the external profile check and the optional AI review.
type Report struct {
	pipeline.Report
	Profile       *profile.Result `json:"profile,omitempty"`
	AIReview      *llm.Review     `json:"aiReview,omitempty"`
	AIReviewError string          `json:"aiReviewError,omitempty"`
}
