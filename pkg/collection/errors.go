package collection

import (
	"fmt"
)

// ValidationError reports the first malformed element of an input list.
// Err is the codec error, so errors.Is(err, coord.ErrInvalidCoordinateID)
// holds for a bad identifier.
type ValidationError struct {
	Index int
	Value string
	Err   error
}

func newValidationError(index int, value string, err error) *ValidationError {
	return &ValidationError{
		Index: index,
		Value: value,
		Err:   err,
	}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("element %d (%q): %v", e.Index, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
