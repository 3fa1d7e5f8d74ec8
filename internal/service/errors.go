package service

import (
	"errors"
	"fmt"

	"karirkit/internal/form"
)

var (
	ErrIDRequired      = errors.New("id is required")
	ErrNotFound        = errors.New("resource not found")
	ErrNothingSelected = errors.New("no rows selected")
)

// ValidationError carries field errors, either from local schema validation
// or from the API's {errors} envelope.
type ValidationError struct {
	Fields form.Errors
	// Remote is true when the API rejected the payload.
	Remote bool
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// FieldErrors returns the field errors of err if it is a *ValidationError.
func FieldErrors(err error) (form.Errors, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Fields, true
	}
	return nil, false
}
