package pipeline

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// monthPattern matches full or 3-letter month names only; partial words like
// "Marketing" must not tokenize as dates.
const monthPattern = `Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:t(?:ember)?)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?`

var (
	// A month immediately followed by a year is one token, so that
	// "Jan 2019 - Present" pairs as (Jan 2019, Present) rather than
	// splitting the range into meaningless fragments.
	dateTokenRe = regexp.MustCompile(`(?i)\b(?:(?:` + monthPattern + `)\.?\s+\d{4}|\d{1,2}/\d{4}|\d{4}|(?:` + monthPattern + `)|Present)\b`)

	monthYearRe = regexp.MustCompile(`(?i)^(` + monthPattern + `)\.?\s+(\d{4})$`)
	slashDateRe = regexp.MustCompile(`^(\d{1,2})/(\d{4})$`)
	bareYearRe  = regexp.MustCompile(`^\d{4}$`)
)

var monthsByName = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "sept": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

// TokenizeDates scans text for calendar references in order of appearance.
// Duplicates are retained; zero matches is a valid outcome.
func TokenizeDates(text string) []string {
	return dateTokenRe.FindAllString(text, -1)
}

// DateResolver resolves a raw date token against a reference instant.
// A false return means the token is noise and its interval is dropped.
type DateResolver interface {
	Resolve(token string, now time.Time) (time.Time, bool)
}

// FuzzyResolver resolves the token shapes the tokenizer emits directly and
// defers anything else to the dateparse library.
type FuzzyResolver struct{}

// Resolve implements DateResolver.
func (FuzzyResolver) Resolve(token string, now time.Time) (time.Time, bool) {
	tok := strings.TrimSpace(token)
	if tok == "" {
		return time.Time{}, false
	}
	if strings.EqualFold(tok, "present") {
		return now, true
	}

	if m := monthYearRe.FindStringSubmatch(tok); m != nil {
		month, ok := monthByName(m[1])
		if !ok {
			return time.Time{}, false
		}
		year, _ := strconv.Atoi(m[2])
		return time.Date(year, month, 1, 0, 0, 0, 0, now.Location()), true
	}
	if m := slashDateRe.FindStringSubmatch(tok); m != nil {
		month, _ := strconv.Atoi(m[1])
		if month < 1 || month > 12 {
			return time.Time{}, false
		}
		year, _ := strconv.Atoi(m[2])
		return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, now.Location()), true
	}
	if bareYearRe.MatchString(tok) {
		year, _ := strconv.Atoi(tok)
		return time.Date(year, time.January, 1, 0, 0, 0, 0, now.Location()), true
	}
	if month, ok := monthByName(tok); ok {
		// A bare month resolves relative to the reference year.
		return time.Date(now.Year(), month, 1, 0, 0, 0, 0, now.Location()), true
	}

	// The token scanner only emits the shapes handled above; this fallback
	// serves callers that feed the resolver arbitrary date strings, such as
	// full "January 2, 2019" dates lifted from free-form text.
	parsed, err := dateparse.ParseIn(tok, now.Location())
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

func monthByName(s string) (time.Month, bool) {
	key := strings.ToLower(strings.TrimSuffix(strings.TrimSpace(s), "."))
	month, ok := monthsByName[key]
	return month, ok
}

// ExperienceYears sums employment durations from date tokens found in the
// text, rounded to one decimal place.
//
// Tokens pair positionally; an odd trailing token gets an implicit
// "Present" end. A pair is dropped when either side fails to resolve, the
// start is in the future, or the start is after the end. Overlapping
// periods double-count; this is a best-effort signal, not a verified fact.
func (a *Analyzer) ExperienceYears(text string) float64 {
	tokens := TokenizeDates(text)
	if len(tokens) == 0 {
		return 0
	}

	now := a.now()
	resolver := a.Dates
	if resolver == nil {
		resolver = FuzzyResolver{}
	}

	total := 0.0
	for i := 0; i < len(tokens); i += 2 {
		startTok := tokens[i]
		endTok := "Present"
		if i+1 < len(tokens) {
			endTok = tokens[i+1]
		}

		start, ok := resolver.Resolve(startTok, now)
		if !ok {
			continue
		}
		end, ok := resolver.Resolve(endTok, now)
		if !ok {
			continue
		}
		if start.After(now) || start.After(end) {
			continue
		}

		years := float64(monthsApart(start, end)) / 12.0
		if years > 0 {
			total += years
		}
	}
	return round1(total)
}

// monthsApart returns the whole-month difference between two dates.
// Month granularity tracks how resumes state ranges and avoids the drift of
// day-count division.
func monthsApart(start, end time.Time) int {
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if end.Day() < start.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
