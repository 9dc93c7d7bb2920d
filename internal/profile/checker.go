// Package profile validates external profile links found on a resume.
package profile

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"resume-vetter/internal/pipeline"
)

const defaultTimeout = 5 * time.Second

// Result is the outcome of an accessibility check on a profile URL.
type Result struct {
	Valid           bool     `json:"valid"`
	Issues          []string `json:"issues"`
	Recommendations []string `json:"recommendations"`
	Skills          []string `json:"skills,omitempty"`
}

// SkillSource optionally supplies skills listed on the external profile.
// Implementations may scrape or call a provider API; the zero checker has none.
type SkillSource interface {
	Skills(ctx context.Context, profileURL string) ([]string, error)
}

// Checker probes profile URLs with a HEAD request.
type Checker struct {
	client  *http.Client
	skills  SkillSource
	timeout time.Duration
}

// Option configures a Checker.
type Option func(*Checker)

// WithClient overrides the HTTP client used for the HEAD probe.
func WithClient(c *http.Client) Option {
	return func(ch *Checker) { ch.client = c }
}

// WithSkillSource attaches an optional skills provider.
func WithSkillSource(s SkillSource) Option {
	return func(ch *Checker) { ch.skills = s }
}

// WithTimeout overrides the per-check timeout.
func WithTimeout(d time.Duration) Option {
	return func(ch *Checker) { ch.timeout = d }
}

func NewChecker(opts ...Option) *Checker {
	ch := &Checker{
		client:  &http.Client{},
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(ch)
	}
	return ch
}

// Check verifies that profileURL responds to a HEAD request. The pipeline's
// Not Found sentinel short-circuits to an invalid result without any network
// call. Network failures become issues, never errors: a broken link is a
// finding about the resume, not a fault in the analysis.
func (ch *Checker) Check(ctx context.Context, profileURL string) Result {
	if profileURL == "" || profileURL == pipeline.NotFound {
		return Result{Valid: false, Issues: []string{"No profile found"}, Recommendations: []string{}}
	}

	target := profileURL
	if !strings.HasPrefix(target, "http://") && !strings.HasPrefix(target, "https://") {
		target = "https://" + target
	}

	ctx, cancel := context.WithTimeout(ctx, ch.timeout)
	defer cancel()

	var issues []string
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, target, nil)
	if err != nil {
		issues = append(issues, fmt.Sprintf("Invalid profile URL: %v", err))
	} else {
		resp, err := ch.client.Do(req)
		if err != nil {
			issues = append(issues, fmt.Sprintf("Connection error: %v", err))
		} else {
			resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				issues = append(issues, fmt.Sprintf("Profile unavailable (HTTP %d)", resp.StatusCode))
			}
		}
	}

	result := Result{
		Valid:           len(issues) == 0,
		Issues:          issues,
		Recommendations: []string{},
	}
	if result.Valid {
		result.Recommendations = []string{
			"Ensure profile is public",
			"Add profile picture",
			"Include detailed experience",
		}
		if ch.skills != nil {
			if skills, err := ch.skills.Skills(ctx, target); err == nil {
				result.Skills = skills
			}
		}
	}
	if result.Issues == nil {
		result.Issues = []string{}
	}
	return result
}
