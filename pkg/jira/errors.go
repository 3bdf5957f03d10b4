package jira

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// APIError represents a terminal HTTP-level failure from the Jira API.
type APIError struct {
	StatusCode int    `json:"status_code" yaml:"status_code"`
	Message    string `json:"message"     yaml:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("API error: status_code=%d, message=%s", e.StatusCode, e.Message)
}

// RetryExhaustedError is raised when a rate-limited request is still
// rate-limited after the configured maximum number of retries.
type RetryExhaustedError struct {
	APIError

	// Retries is the number of retries performed before giving up.
	Retries int
}

// NewRetryExhaustedError builds a RetryExhaustedError for the given retry count.
func NewRetryExhaustedError(retries int) *RetryExhaustedError {
	return &RetryExhaustedError{
		APIError: APIError{
			StatusCode: http.StatusTooManyRequests,
			Message:    fmt.Sprintf("rate limited, retries exhausted after %d retries", retries),
		},
		Retries: retries,
	}
}

// Unwrap exposes the embedded APIError so errors.As(err, &apiErr) matches.
func (e *RetryExhaustedError) Unwrap() error {
	return &e.APIError
}

// TransportError represents a failure to complete the network exchange before
// any HTTP status was received. It is never retried by the client.
type TransportError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error during %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Static errors for err113 compliance.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrBaseURLRequired     = errors.New("base URL is required")
	ErrCredentialsRequired = errors.New("credentials are required: provide Username/APIToken or AccessToken")
	ErrClientClosed        = errors.New("client is closed")
	ErrEmptyPath           = errors.New("request path cannot be empty")
	ErrNoMoreItems         = errors.New("no more items")
	ErrFieldNotFound       = errors.New("field not found")
)

// IsNotFound checks if the error is a 404 API error.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is a 401 API error.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsForbidden checks if the error is a 403 API error.
func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

// IsRateLimited checks if the error is a 429 API error, including the
// retry-exhausted variant.
func IsRateLimited(err error) bool {
	return hasStatus(err, http.StatusTooManyRequests)
}

// IsRetryExhausted checks if the error indicates the retry budget was spent
// on a persistent rate limit.
func IsRetryExhausted(err error) bool {
	exhausted := &RetryExhaustedError{}

	return errors.As(err, &exhausted)
}

func hasStatus(err error, status int) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == status
	}

	return false
}

// ErrorBody represents the error payload returned by the Jira API.
type ErrorBody struct {
	ErrorMessages []string          `json:"errorMessages"`
	Errors        map[string]string `json:"errors"`
}

// ExtractErrorMessage produces a human-readable message from a Jira error
// response body. It joins errorMessages and per-field errors when the body is
// the documented JSON shape, falls back to the trimmed raw text, and finally
// to a generic placeholder.
func ExtractErrorMessage(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return "no error details provided"
	}

	var errBody ErrorBody

	err := json.Unmarshal(body, &errBody)
	if err != nil {
		return trimmed
	}

	parts := make([]string, 0, len(errBody.ErrorMessages)+len(errBody.Errors))
	parts = append(parts, errBody.ErrorMessages...)

	// Sorted for deterministic messages.
	fields := make([]string, 0, len(errBody.Errors))
	for field := range errBody.Errors {
		fields = append(fields, field)
	}

	sort.Strings(fields)

	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, errBody.Errors[field]))
	}

	if len(parts) == 0 {
		return trimmed
	}

	return strings.Join(parts, "; ")
}
