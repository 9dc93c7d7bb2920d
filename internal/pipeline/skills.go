package pipeline

import (
	"strings"
	"unicode"
)

// Vocabulary maps a skill category to its lowercase keyword list.
type Vocabulary map[string][]string

// Tokenizer splits text into lowercase word-level tokens. It is injected so
// callers can substitute their own segmentation; nothing in the pipeline
// holds process-wide tokenizer state.
type Tokenizer interface {
	Tokens(text string) []string
}

// WordTokenizer is the default tokenizer. It keeps characters that carry
// meaning inside skill names ("c++", "node.js", "c#") as part of a token
// and trims sentence punctuation.
type WordTokenizer struct{}

// NewWordTokenizer constructs a WordTokenizer.
func NewWordTokenizer() WordTokenizer {
	return WordTokenizer{}
}

// Tokens implements Tokenizer.
func (WordTokenizer) Tokens(text string) []string {
	var tokens []string
	var b strings.Builder
	flush := func() {
		if b.Len() == 0 {
			return
		}
		tok := strings.Trim(b.String(), ".")
		if tok != "" {
			tokens = append(tokens, tok)
		}
		b.Reset()
	}

	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' {
			b.WriteRune(r)
			continue
		}
		flush()
	}
	flush()
	return tokens
}

// MatchSkills tokenizes the text and matches tokens against the categorized
// vocabulary. Matching is exact per token, never substring, so "java"
// inside "javascript" does not count. Results are deduplicated,
// canonical-cased, and only categories with at least one match appear.
func (a *Analyzer) MatchSkills(text string) map[string][]string {
	tokenizer := a.Tokenizer
	if tokenizer == nil {
		tokenizer = NewWordTokenizer()
	}

	keywords := make(map[string]map[string]bool, len(a.Vocabulary))
	for category, list := range a.Vocabulary {
		set := make(map[string]bool, len(list))
		for _, kw := range list {
			set[strings.ToLower(kw)] = true
		}
		keywords[category] = set
	}

	found := make(map[string][]string)
	seen := make(map[string]map[string]bool)
	for _, token := range tokenizer.Tokens(text) {
		for category, set := range keywords {
			if !set[token] {
				continue
			}
			if seen[category] == nil {
				seen[category] = make(map[string]bool)
			}
			if seen[category][token] {
				continue
			}
			seen[category][token] = true
			found[category] = append(found[category], capitalizeSkill(token))
		}
	}
	return found
}

// capitalizeSkill upper-cases the first rune and lower-cases the rest, the
// canonical display form for matched skills.
func capitalizeSkill(s string) string {
	runes := []rune(strings.ToLower(s))
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
