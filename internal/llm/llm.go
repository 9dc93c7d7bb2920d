// Package llm abstracts the optional AI review step of an analysis.
package llm

import (
	"context"
	"errors"
	"regexp"
	"strconv"
)

// Client abstracts hosted-model providers for resume review.
type Client interface {
	ReviewResume(ctx context.Context, input ReviewInput) (Review, error)
}

// ReviewInput captures the inputs for an AI resume review.
type ReviewInput struct {
	ResumeText     string
	JobDescription string
}

// Review holds the free-text review and, when the model followed the prompt
// format, the extracted 1-100 match score.
type Review struct {
	Text       string `json:"text"`
	MatchScore *int   `json:"match_score,omitempty"`
}

var matchScoreRe = regexp.MustCompile(`Match Score: (\d+)`)

// ExtractMatchScore pulls the "Match Score: N" rating out of review text.
func ExtractMatchScore(text string) (int, bool) {
	m := matchScoreRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	score, err := strconv.Atoi(m[1])
	if err != nil || score < 0 || score > 100 {
		return 0, false
	}
	return score, true
}

// ErrNotConfigured is returned when no provider credentials are set.
var ErrNotConfigured = errors.New("LLM not configured")

// DisabledClient is the no-op client used when AI review is switched off.
type DisabledClient struct{}

// ReviewResume returns ErrNotConfigured.
func (DisabledClient) ReviewResume(ctx context.Context, input ReviewInput) (Review, error) {
	_ = ctx
	_ = input
	return Review{}, ErrNotConfigured
}
