package task

import "errors"

// Validation errors
var (
	ErrEmptyTitle      = errors.New("title is required")
	ErrInvalidPriority = errors.New("priority must be 1 (high), 2 (medium) or 3 (low)")
	ErrInvalidStatus   = errors.New("status must be one of todo, doing, done")
	ErrInvalidDueDate  = errors.New("due date must be a real date in YYYY-MM-DD format")
	ErrEmptySearchTerm = errors.New("search term cannot be empty")
	ErrNothingToUpdate = errors.New("nothing to update")
)

// ValidationError reports a rejected input before any storage access happened.
// Field names the offending input and is empty for request-level problems.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Err.Error()
	}
	return e.Field + ": " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err, or anything it wraps, is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func invalid(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}
