package profile

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestCheck_SentinelSkipsNetwork(t *testing.T) {
	ch := NewChecker(WithClient(&http.Client{Transport: failingTransport{}}))
	res := ch.Check(context.Background(), "Not Found")
	if res.Valid {
		t.Fatal("expected invalid result for sentinel URL")
	}
	if len(res.Issues) != 1 || res.Issues[0] != "No profile found" {
		t.Fatalf("unexpected issues: %v", res.Issues)
	}
	if len(res.Recommendations) != 0 {
		t.Fatalf("expected no recommendations, got %v", res.Recommendations)
	}
}

func TestCheck_ReachableProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			t.Errorf("expected HEAD, got %s", r.Method)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ch := NewChecker(WithClient(srv.Client()))
	res := ch.Check(context.Background(), srv.URL)
	if !res.Valid {
		t.Fatalf("expected valid result, issues: %v", res.Issues)
	}
	if len(res.Recommendations) != 3 {
		t.Fatalf("expected canned recommendations, got %v", res.Recommendations)
	}
}

func TestCheck_UnavailableProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	ch := NewChecker(WithClient(srv.Client()))
	res := ch.Check(context.Background(), srv.URL)
	if res.Valid {
		t.Fatal("expected invalid result for 403")
	}
	if len(res.Issues) != 1 || res.Issues[0] != "Profile unavailable (HTTP 403)" {
		t.Fatalf("unexpected issues: %v", res.Issues)
	}
	if len(res.Recommendations) != 0 {
		t.Fatalf("expected no recommendations, got %v", res.Recommendations)
	}
}

func TestCheck_ConnectionErrorBecomesIssue(t *testing.T) {
	ch := NewChecker(
		WithClient(&http.Client{Transport: failingTransport{}}),
		WithTimeout(time.Second),
	)
	res := ch.Check(context.Background(), "https://linkedin.com/in/jane-doe")
	if res.Valid {
		t.Fatal("expected invalid result when transport fails")
	}
	if len(res.Issues) != 1 {
		t.Fatalf("unexpected issues: %v", res.Issues)
	}
}

func TestCheck_SkillSourceMergedWhenValid(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ch := NewChecker(
		WithClient(srv.Client()),
		WithSkillSource(staticSkills{"Python", "Go"}),
	)
	res := ch.Check(context.Background(), srv.URL)
	if !res.Valid {
		t.Fatalf("expected valid result, issues: %v", res.Issues)
	}
	if len(res.Skills) != 2 || res.Skills[0] != "Python" {
		t.Fatalf("unexpected skills: %v", res.Skills)
	}
}

type failingTransport struct{}

func (failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, context.DeadlineExceeded
}

type staticSkills []string

func (s staticSkills) Skills(context.Context, string) ([]string, error) {
	return s, nil
}
