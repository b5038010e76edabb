package services

import "fmt"

// Validation failure kinds, checked in order; the first failure wins.
const (
	KindMissingFields = "missing_fields"
	KindNameTooShort  = "name_too_short"
	KindInvalidPhone  = "invalid_phone"
)

// ValidationError is a user-input problem. The Reason is safe to show to
// the submitter verbatim; it is never logged as a system error.
type ValidationError struct {
	Kind   string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// PersistenceError wraps a failed booking transaction. Callers render a
// generic try-again message; the wrapped detail is for the operator log.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("booking could not be saved: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
