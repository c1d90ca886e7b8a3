package models

import (
	"errors"
	"fmt"
)

// Shape errors shared by the content validators.
var (
	// ErrInvalidShape means a value that must be a JSON object was
	// something else (array, null, primitive).
	ErrInvalidShape = errors.New("value must be a JSON object")

	// ErrDepthExceeded means an info tree nests deeper than the allowed cap.
	ErrDepthExceeded = errors.New("info tree exceeds maximum nesting depth")
)

// MissingFieldError reports a required field that is absent or empty.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}
