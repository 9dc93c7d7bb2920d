package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentProjects(t *testing.T) {
	text := "Projects\n- Built a payments API\n- Led migration to microservices\ncontinued on next line\n- Optimized database queries"

	got := SegmentProjects(text)

	require.Len(t, got, 3)
	assert.Equal(t, "Built a payments API", got[0])
	assert.Equal(t, "Led migration to microservices\ncontinued on next line", got[1])
	assert.Equal(t, "Optimized database queries", got[2])
}

func TestSegmentProjectsMarkerAtStart(t *testing.T) {
	got := SegmentProjects("- only project")
	assert.Equal(t, []string{"only project"}, got)
}

func TestSegmentProjectsNone(t *testing.T) {
	assert.Empty(t, SegmentProjects("prose without bullets"))
	assert.Empty(t, SegmentProjects(""))
}

func TestComplexityScoreCountsOncePerSegment(t *testing.T) {
	weights := map[string]int{"microservices": 3, "api": 1}

	segments := []string{
		"microservices everywhere, microservices again",
		"Microservices platform",
		"MICROSERVICES",
	}

	// Three segments, keyword counted once per segment.
	assert.Equal(t, 9, ComplexityScore(segments, weights))

	segments = append(segments, "an API for the api gateway")
	assert.Equal(t, 10, ComplexityScore(segments, weights))
}

func TestComplexityScoreEmpty(t *testing.T) {
	assert.Zero(t, ComplexityScore(nil, DefaultWeights))
	assert.Zero(t, ComplexityScore([]string{"nothing relevant"}, DefaultWeights))
}

func TestSimilarityScore(t *testing.T) {
	corpus := []string{"Built a REST API with Django"}

	t.Run("identical_segment_scores_100", func(t *testing.T) {
		got := SimilarityScore([]string{"Built a REST API with Django"}, corpus)
		assert.InDelta(t, 100.0, got, 0.001)
	})

	t.Run("averages_per_segment_maxima", func(t *testing.T) {
		segments := []string{
			"Built a REST API with Django",
			"zzzz",
		}
		got := SimilarityScore(segments, corpus)
		assert.Greater(t, got, 0.0)
		assert.Less(t, got, 100.0)
	})

	t.Run("no_segments_scores_zero", func(t *testing.T) {
		assert.Zero(t, SimilarityScore(nil, corpus))
	})

	t.Run("no_corpus_scores_zero", func(t *testing.T) {
		assert.Zero(t, SimilarityScore([]string{"anything"}, nil))
	})
}
