package apperr

import "errors"

var (
	ErrNotFound = errors.New("not found")
	ErrInvalid  = errors.New("invalid input")
)

// ValidationError wraps a field-level validation failure so that callers can
// match it with errors.Is(err, ErrInvalid) and still report the details.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return e.Err.Error() }

func (e *ValidationError) Unwrap() []error { return []error{ErrInvalid, e.Err} }

// Invalid wraps err as a ValidationError. A nil err yields nil.
func Invalid(err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Err: err}
}
