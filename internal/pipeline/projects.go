package pipeline

import (
	"strings"
)

const bulletMarker = "- "

// SegmentProjects extracts bullet-delimited project descriptions: the text
// between a "- " marker and the next line starting with one, or end of
// text. Order follows appearance; empty input yields an empty sequence.
func SegmentProjects(text string) []string {
	var segments []string

	i := markerIndex(text, 0)
	for i >= 0 {
		start := i + len(bulletMarker)
		next := strings.Index(text[start:], "\n"+bulletMarker)
		if next < 0 {
			segments = append(segments, text[start:])
			break
		}
		segments = append(segments, text[start:start+next])
		i = markerIndex(text, start+next+1)
	}
	return segments
}

// markerIndex finds the next bullet marker at or after pos: either at the
// very start of the text or at the start of a line.
func markerIndex(text string, pos int) int {
	if pos == 0 && strings.HasPrefix(text, bulletMarker) {
		return 0
	}
	rel := strings.Index(text[pos:], "\n"+bulletMarker)
	if rel < 0 {
		return -1
	}
	return pos + rel + 1
}

// ComplexityScore sums keyword weights across project segments. A keyword
// counts once per segment regardless of how often it appears in it, via
// case-insensitive containment.
func ComplexityScore(segments []string, weights map[string]int) int {
	score := 0
	for _, segment := range segments {
		lower := strings.ToLower(segment)
		for keyword, weight := range weights {
			if strings.Contains(lower, keyword) {
				score += weight
			}
		}
	}
	return score
}

// SimilarityScore measures textual closeness between project segments and a
// reference corpus: each segment takes its best similarity ratio against the
// corpus, the per-segment maxima are averaged and scaled to a percentage.
// No segments (or an empty corpus) scores 0.
func SimilarityScore(segments []string, corpus []string) float64 {
	if len(segments) == 0 || len(corpus) == 0 {
		return 0
	}

	total := 0.0
	for _, segment := range segments {
		best := 0.0
		for _, reference := range corpus {
			if r := Ratio(segment, reference); r > best {
				best = r
			}
		}
		total += best
	}
	return total / float64(len(segments)) * 100
}
