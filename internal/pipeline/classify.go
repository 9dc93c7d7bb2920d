package pipeline

import (
	"fmt"
	"math"
)

// Proficiency is a named tier with its numeric level.
type Proficiency struct {
	Tier  string `json:"tier"`
	Level int    `json:"level"`
}

// Band is one row of the classification decision table: an experience
// ceiling and the project-score threshold that splits the band into its
// lower and upper tiers.
type Band struct {
	MaxYears         float64
	ProjectThreshold int
	Low              Proficiency
	High             Proficiency
}

// DefaultBands is the classification table. The last band's ceiling is
// unbounded, so every non-negative input maps to exactly one tier.
var DefaultBands = []Band{
	{MaxYears: 1, ProjectThreshold: 2, Low: Proficiency{"Entry Level", 1}, High: Proficiency{"Junior", 2}},
	{MaxYears: 3, ProjectThreshold: 4, Low: Proficiency{"Mid-Level", 3}, High: Proficiency{"Professional", 4}},
	{MaxYears: 5, ProjectThreshold: 6, Low: Proficiency{"Senior", 5}, High: Proficiency{"Expert", 6}},
	{MaxYears: math.Inf(1), ProjectThreshold: 8, Low: Proficiency{"Principal", 7}, High: Proficiency{"Architect", 8}},
}

// Classify maps experience and project score onto a tier via the first
// matching band.
func Classify(experienceYears float64, projectScore int, bands []Band) Proficiency {
	if len(bands) == 0 {
		bands = DefaultBands
	}
	for _, band := range bands {
		if experienceYears <= band.MaxYears {
			if projectScore < band.ProjectThreshold {
				return band.Low
			}
			return band.High
		}
	}
	return bands[len(bands)-1].High
}

// Readiness is the interview-readiness verdict with its contributing
// factors in fixed order.
type Readiness struct {
	Ready   bool     `json:"ready"`
	Score   int      `json:"score"`
	Factors []string `json:"factors"`
}

// Readiness thresholds; the project threshold matches the mid band of
// DefaultBands so tier and verdict never disagree.
const (
	readyLevelThreshold   = 3
	readyProjectThreshold = 4
)

// EvaluateReadiness combines tier level and project score into a pass/fail
// verdict. profileValid is included as a factor only when a profile check
// actually ran; pass nil when the signal is unavailable.
func EvaluateReadiness(p Proficiency, projectScore int, profileValid *bool) Readiness {
	projectOK := projectScore >= readyProjectThreshold
	score := p.Level
	if projectOK {
		score++
	}

	factors := []string{
		fmt.Sprintf("Proficiency Level: %d", p.Level),
		fmt.Sprintf("Project Score: %d", projectScore),
	}
	if profileValid != nil {
		factors = append(factors, fmt.Sprintf("Profile Valid: %t", *profileValid))
	}

	return Readiness{
		Ready:   p.Level >= readyLevelThreshold && projectOK,
		Score:   score,
		Factors: factors,
	}
}
