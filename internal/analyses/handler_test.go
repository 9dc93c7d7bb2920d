package analyses

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"resume-vetter/internal/documents"
)

func newTestRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler(svc).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func TestCreateAnalysis_EndToEnd(t *testing.T) {
	docRepo := documents.NewMemoryRepo()
	store := newFakeStore()
	doc := seedDocument(t, docRepo, store, sampleResume, "text/plain")
	svc := newTestService(docRepo, store)
	router := newTestRouter(svc)

	body := strings.NewReader(`{"documentId":"` + doc.ID + `"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses", body)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", resp.Code, resp.Body.String())
	}

	var created Analysis
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.Status != StatusQueued {
		t.Fatalf("expected queued, got %s", created.Status)
	}

	// Completion runs in the background; poll until it lands.
	deadline := time.Now().Add(5 * time.Second)
	var got Analysis
	for {
		var err error
		got, err = svc.Repo.GetByID(context.Background(), created.ID)
		if err != nil {
			t.Fatalf("get analysis: %v", err)
		}
		if got.Status == StatusCompleted || got.Status == StatusFailed {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("analysis never finished, stuck at %s", got.Status)
		}
		time.Sleep(10 * time.Millisecond)
	}
	if got.Status != StatusCompleted {
		t.Fatalf("expected completed, got %s (%s: %s)", got.Status, got.ErrorCode, got.ErrorMessage)
	}

	reqGet := httptest.NewRequest(http.MethodGet, "/api/v1/analyses/"+created.ID, nil)
	respGet := httptest.NewRecorder()
	router.ServeHTTP(respGet, reqGet)
	if respGet.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", respGet.Code)
	}
	var fetched Analysis
	if err := json.NewDecoder(respGet.Body).Decode(&fetched); err != nil {
		t.Fatalf("decode get response: %v", err)
	}
	if fetched.Report == nil || fetched.Report.Proficiency.Tier == "" {
		t.Fatalf("expected report with tier, got %+v", fetched.Report)
	}
}

func TestCreateAnalysis_Validation(t *testing.T) {
	docRepo := documents.NewMemoryRepo()
	store := newFakeStore()
	svc := newTestService(docRepo, store)
	router := newTestRouter(svc)

	cases := []struct {
		name string
		body string
		want int
	}{
		{"bad_json", `{`, http.StatusBadRequest},
		{"missing_document_id", `{}`, http.StatusBadRequest},
		{"unknown_document", `{"documentId":"nope"}`, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)
			if resp.Code != tc.want {
				t.Fatalf("expected %d, got %d: %s", tc.want, resp.Code, resp.Body.String())
			}
		})
	}
}

func TestGetAnalysis_NotFound(t *testing.T) {
	docRepo := documents.NewMemoryRepo()
	store := newFakeStore()
	svc := newTestService(docRepo, store)
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyses/missing", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestListAnalyses(t *testing.T) {
	docRepo := documents.NewMemoryRepo()
	store := newFakeStore()
	svc := newTestService(docRepo, store)
	router := newTestRouter(svc)

	for i, id := range []string{"a-1", "a-2", "a-3"} {
		err := svc.Repo.Create(context.Background(), Analysis{
			ID:        id,
			Status:    StatusQueued,
			CreatedAt: time.Now().UTC().Add(time.Duration(i) * time.Second),
		})
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyses?limit=2", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var out []Analysis
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 analyses, got %d", len(out))
	}
	if out[0].ID != "a-3" {
		t.Fatalf("expected newest first, got %s", out[0].ID)
	}
}
