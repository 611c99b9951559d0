package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrAuthFailed covers both unknown email and wrong password so that
	// login responses cannot be used to enumerate accounts.
	ErrAuthFailed = errors.New("authentication failed")

	// ErrDuplicateEmail is returned when registering with an email that is
	// already taken. Distinct from validation errors by design.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrRequesterNotFound means the token verified but its subject no
	// longer exists in the store.
	ErrRequesterNotFound = errors.New("requester not found")

	ErrUserNotFound         = errors.New("user not found")
	ErrOrganisationNotFound = errors.New("organisation not found")

	// ErrForbidden means the membership check denied access.
	ErrForbidden = errors.New("forbidden")
)

// FieldError describes a single invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every violation found in a request so callers
// receive the complete set in one response rather than one at a time.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) orNil() *ValidationError {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
