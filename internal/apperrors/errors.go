package apperrors

import "fmt"

// ValidationError indicates a bad or missing request input. Handlers map it
// to a 400 with the message in the response body.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing or invalid field: %s", e.Field)
}

// NewValidation creates a ValidationError for the given field.
func NewValidation(field string) error {
	return &ValidationError{Field: field}
}

// AuthError indicates that the credential exchange failed: the bearer
// credential was malformed, rejected upstream, or the tenant configuration
// needed to elevate it is absent. Callers see a generic 500.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("credential exchange failed: %v", e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// NewAuth wraps err as an AuthError.
func NewAuth(err error) error {
	return &AuthError{Err: err}
}

// ReadError indicates a store read failed.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("store read failed: %v", e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// NewRead wraps err as a ReadError.
func NewRead(err error) error {
	return &ReadError{Err: err}
}

// WriteError indicates a store write failed.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("store write failed: %v", e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// NewWrite wraps err as a WriteError.
func NewWrite(err error) error {
	return &WriteError{Err: err}
}
