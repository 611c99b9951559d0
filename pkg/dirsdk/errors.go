package dirsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// APIError represents a non-2xx response from the directory service.
// It implements the error interface so callers can inspect the status code
// without re-reading the response body.
type APIError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int

	// Message is the human-readable message from the error envelope.
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// ValidationError represents a 422 response listing invalid request fields.
type ValidationError struct {
	Fields []FieldError
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// parseErrorResponse turns an error response body into a typed error.
// Returns nil for 2xx status codes.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	// 422 carries a field error list rather than the standard envelope.
	if resp.StatusCode == http.StatusUnprocessableEntity {
		var valResp ValidationErrorResponse
		if err := json.Unmarshal(body, &valResp); err == nil && len(valResp.Errors) > 0 {
			return &ValidationError{Fields: valResp.Errors}
		}
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    errResp.Message,
		}
	}

	// Fallback: generic error from the status code.
	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
	}
}
