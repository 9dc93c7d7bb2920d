// Package pipeline turns extracted resume text into quantitative and
// categorical hiring signals: identity fields, total experience, matched
// skills, project complexity, similarity against a reference corpus, and a
// proficiency tier with an interview-readiness verdict.
//
// Every component is a pure function over text. A run owns all of its
// intermediate values; nothing is shared between runs, so concurrent runs
// need no locking.
package pipeline

import (
	"time"
)

// Analyzer bundles the vocabularies and helpers a pipeline run needs.
// The zero value is not usable; construct with New and override fields
// before the first Run if substitute tables are needed.
type Analyzer struct {
	Vocabulary Vocabulary
	Weights    map[string]int
	Corpus     []string
	Bands      []Band
	Tokenizer  Tokenizer
	Dates      DateResolver

	// Now supplies the reference instant for "Present" and future-date
	// checks. Defaults to time.Now.
	Now func() time.Time
}

// New returns an Analyzer wired with the default vocabularies, weights,
// reference corpus, classification bands, word tokenizer and date resolver.
func New() *Analyzer {
	return &Analyzer{
		Vocabulary: DefaultVocabulary,
		Weights:    DefaultWeights,
		Corpus:     DefaultCorpus,
		Bands:      DefaultBands,
		Tokenizer:  NewWordTokenizer(),
		Dates:      FuzzyResolver{},
		Now:        time.Now,
	}
}

// Report is the aggregate outcome of one pipeline run.
type Report struct {
	Identity        Identity            `json:"identity"`
	ExperienceYears float64             `json:"experienceYears"`
	Skills          map[string][]string `json:"skills"`
	Projects        []string            `json:"projects"`
	ProjectScore    int                 `json:"projectScore"`
	SimilarityScore float64             `json:"similarityScore"`
	Proficiency     Proficiency         `json:"proficiency"`
	Readiness       Readiness           `json:"readiness"`
}

// Run executes the full pipeline over raw extracted text.
// It fails only on empty input; every downstream extractor degrades to
// sentinel or zero values instead of erroring.
func (a *Analyzer) Run(raw string) (Report, error) {
	text, err := Normalize(raw)
	if err != nil {
		return Report{}, err
	}

	identity := ExtractIdentity(text)
	years := a.ExperienceYears(text)
	skills := a.MatchSkills(text)
	projects := SegmentProjects(text)
	projectScore := ComplexityScore(projects, a.Weights)
	similarity := SimilarityScore(projects, a.Corpus)
	tier := Classify(years, projectScore, a.Bands)

	// Profile validity is a boundary signal; callers that run a profile
	// check re-evaluate readiness with the flag included.
	readiness := EvaluateReadiness(tier, projectScore, nil)

	return Report{
		Identity:        identity,
		ExperienceYears: years,
		Skills:          skills,
		Projects:        projects,
		ProjectScore:    projectScore,
		SimilarityScore: similarity,
		Proficiency:     tier,
		Readiness:       readiness,
	}, nil
}

func (a *Analyzer) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}
