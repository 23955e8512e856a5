package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
	ErrTransient    = errors.New("temporarily unavailable")
)

var (
	// ErrArticleNotFound is returned when an article id does not exist.
	ErrArticleNotFound = fmt.Errorf("article %w", ErrNotFound)
	// ErrArticleExists is returned when storing an article whose id is taken.
	ErrArticleExists = fmt.Errorf("article already exists: %w", ErrConflict)
	// ErrBlankComment is returned for comments that are empty after trimming.
	ErrBlankComment = fmt.Errorf("%w: comment text is required", ErrInvalidInput)
)

// ErrorKind returns the machine-readable kind of err.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrConflict):
		return "conflict"
	case errors.Is(err, ErrTransient):
		return "transient"
	default:
		return "internal"
	}
}
