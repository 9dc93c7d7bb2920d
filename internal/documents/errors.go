package documents

import "errors"

var (
	// ErrNotFound indicates the requested document does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput indicates the caller supplied a bad request.
	ErrInvalidInput = errors.New("invalid input")
)
