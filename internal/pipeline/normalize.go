package pipeline

import (
	"errors"
	"strings"
)

// ErrEmptyText signals that extraction produced no usable text. It is the
// only pipeline failure surfaced to callers.
var ErrEmptyText = errors.New("empty resume text")

// Normalize trims the extracted text and rejects empty input.
func Normalize(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", ErrEmptyText
	}
	return text, nil
}
