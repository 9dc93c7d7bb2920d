package hf

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"resume-vetter/internal/llm"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient("test-token", "test/model")
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	c.baseURL = srv.URL + "/"
	c.httpClient = srv.Client()
	return c
}

func TestNewClient_RequiresToken(t *testing.T) {
	if _, err := NewClient("", "test/model"); err == nil {
		t.Fatal("expected error for missing token")
	}
}

func TestReviewResume_ParsesGenerationAndScore(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("unexpected auth header: %q", got)
		}
		if !strings.HasSuffix(r.URL.Path, "test/model") {
			t.Errorf("unexpected path: %q", r.URL.Path)
		}
		var req inferenceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Parameters.MaxNewTokens != 600 {
			t.Errorf("unexpected max_new_tokens: %d", req.Parameters.MaxNewTokens)
		}
		json.NewEncoder(w).Encode([]inferenceChoice{
			{GeneratedText: "- Key Strengths: solid\n- Match Score: 82\n"},
		})
	})

	review, err := c.ReviewResume(context.Background(), llm.ReviewInput{ResumeText: "resume"})
	if err != nil {
		t.Fatalf("review: %v", err)
	}
	if review.MatchScore == nil || *review.MatchScore != 82 {
		t.Fatalf("expected match score 82, got %v", review.MatchScore)
	}
}

func TestReviewResume_APIErrorSurfaces(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(inferenceError{Error: "model is loading"})
	})

	_, err := c.ReviewResume(context.Background(), llm.ReviewInput{ResumeText: "resume"})
	if err == nil || !strings.Contains(err.Error(), "model is loading") {
		t.Fatalf("expected model-loading error, got %v", err)
	}
}

func TestReviewResume_NoScoreLeavesNil(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]inferenceChoice{{GeneratedText: "no rating here"}})
	})

	review, err := c.ReviewResume(context.Background(), llm.ReviewInput{ResumeText: "resume"})
	if err != nil {
		t.Fatalf("review: %v", err)
	}
	if review.MatchScore != nil {
		t.Fatalf("expected nil match score, got %d", *review.MatchScore)
	}
}

func TestBuildPrompt_TruncatesAndDefaults(t *testing.T) {
	long := strings.Repeat("a", maxResumeChars+100)
	prompt := BuildPrompt(long, "")
	if strings.Count(prompt, "a") != maxResumeChars {
		t.Fatalf("expected resume truncated to %d chars", maxResumeChars)
	}
	if !strings.Contains(prompt, "[Job Description]\nN/A") {
		t.Fatal("expected N/A placeholder for empty job description")
	}
}
