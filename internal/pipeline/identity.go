package pipeline

import (
	"regexp"
	"strings"
	"unicode"
)

// NotFound is the sentinel for identity fields that could not be extracted.
// A missing field is a valid terminal outcome, never an error.
const NotFound = "Not Found"

// Identity holds the contact fields extracted from the resume header.
type Identity struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	ProfileURL string `json:"profileUrl"`
}

// The header region assumption: names appear within the first lines of a
// resume, so only these are scanned for name candidates.
const headerLines = 20

const maxNameWords = 4

var (
	emailRe   = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	profileRe = regexp.MustCompile(`(?i)(https?://)?(www\.)?linkedin\.com/(in|company)/[a-zA-Z0-9-]+/?`)

	upperNameRe = regexp.MustCompile(`^[A-Z\s]{5,}$`)
	titleNameRe = regexp.MustCompile(`^[A-Z][a-z]+(?:\s[A-Z][a-z]+)*$`)
	labelNameRe = regexp.MustCompile(`(?i)\b(name|about)\b[\s:]*(.+)$`)
)

// ExtractIdentity finds name, email and external profile URL using pattern
// heuristics. Each field falls back to the NotFound sentinel.
func ExtractIdentity(text string) Identity {
	id := Identity{Name: NotFound, Email: NotFound, ProfileURL: NotFound}

	if m := emailRe.FindString(text); m != "" {
		id.Email = m
	}
	if m := profileRe.FindString(text); m != "" {
		id.ProfileURL = m
	}
	if name := extractName(text); name != "" {
		id.Name = name
	}
	return id
}

// extractName scans the header region line by line, trying the candidate
// patterns in priority order: an all-caps short line, an exact title-case
// word sequence, then a "name:"/"about:" label. First match wins.
func extractName(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > headerLines {
		lines = lines[:headerLines]
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if upperNameRe.MatchString(line) && wordCount(line) <= maxNameWords {
			return titleCase(line)
		}
		if titleNameRe.MatchString(line) && wordCount(line) <= maxNameWords {
			return titleCase(line)
		}
		if m := labelNameRe.FindStringSubmatch(line); m != nil {
			candidate := strings.TrimSpace(m[2])
			if candidate != "" && wordCount(candidate) <= maxNameWords {
				return titleCase(candidate)
			}
		}
	}
	return ""
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
