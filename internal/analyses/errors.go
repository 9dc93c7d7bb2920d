package analyses

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

const (
	ErrorCodeEmptyText   = "EMPTY_TEXT"
	ErrorCodeExtraction  = "EXTRACTION_ERROR"
	ErrorCodeUnsupported = "UNSUPPORTED_FORMAT"
	ErrorCodeStorage     = "STORAGE_ERROR"
	ErrorCodeInternal    = "INTERNAL_ERROR"
)
