package metrics

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderCountersUseScopedNames(t *testing.T) {
	IncAnalysisStarted()
	IncAnalysisCompleted()
	IncAnalysisFailed()

	out := Render()
	for _, name := range []string{
		"vetting_analysis_started_total",
		"vetting_analysis_completed_total",
		"vetting_analysis_failed_total",
		"vetting_analysis_duration_ms",
	} {
		if !strings.Contains(out, "# TYPE "+name) {
			t.Fatalf("expected %s in output:\n%s", name, out)
		}
	}
}

func TestHistogramBucketsAreCumulative(t *testing.T) {
	h := newHistogram([]float64{100, 250, 500})

	h.Observe(50)  // le=100
	h.Observe(100) // le=100 boundary
	h.Observe(200) // le=250
	h.Observe(999) // overflow, +Inf only

	snap := h.Snapshot()
	if snap.count != 4 {
		t.Fatalf("expected count 4, got %d", snap.count)
	}
	if snap.sum != 1349 {
		t.Fatalf("expected sum 1349, got %v", snap.sum)
	}
	wantPerBucket := []uint64{2, 1, 0}
	for i, want := range wantPerBucket {
		if snap.counts[i] != want {
			t.Fatalf("bucket %d: expected %d, got %d", i, want, snap.counts[i])
		}
	}

	var buf bytes.Buffer
	writeHistogram(&buf, "test", "test histogram", snap)
	rendered := buf.String()
	wantLines := []string{
		`test_bucket{le="100"} 2`,
		`test_bucket{le="250"} 3`,
		`test_bucket{le="500"} 3`,
		`test_bucket{le="+Inf"} 4`,
		`test_count 4`,
	}
	for _, line := range wantLines {
		if !strings.Contains(rendered, line) {
			t.Fatalf("expected %q in:\n%s", line, rendered)
		}
	}
}
