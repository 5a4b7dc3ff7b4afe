package api

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for errors.Is() checks.
var (
	// ErrMissingToken is returned when no access token is provided.
	ErrMissingToken = errors.New("access token is required")

	// ErrUnauthorized is returned when the access token is invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired access token")

	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrBadRequest is returned when the server rejects the request parameters.
	ErrBadRequest = errors.New("bad request")

	// ErrRateLimited is returned when the API rate limit is exceeded and the
	// retry budget has been spent.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrServer is returned when the API keeps failing with a 5xx status
	// after the retry budget has been spent.
	ErrServer = errors.New("server error")

	// ErrMaxRetries is the defensive fallback when the retry loop exits
	// without an explicit terminal error.
	ErrMaxRetries = errors.New("maximum retries exceeded")
)

// APIError represents a terminal HTTP error from the Raindrop API.
// Hint, when present, suggests how the caller can remediate the failure.
type APIError struct {
	StatusCode int
	Message    string
	Hint       string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch {
	case e.StatusCode == 401:
		return target == ErrUnauthorized
	case e.StatusCode == 404:
		return target == ErrNotFound
	case e.StatusCode == 400:
		return target == ErrBadRequest
	case e.StatusCode == 429:
		return target == ErrRateLimited
	case e.StatusCode >= 500:
		return target == ErrServer
	}
	return false
}

// NetworkError represents a transport-level failure that survived the
// retry budget.
type NetworkError struct {
	Err      error
	URL      string
	Attempts int
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error after %d attempts: %v", e.Attempts, e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// TimeoutError represents an attempt that exceeded the per-request timeout
// guard. Timeouts are terminal and never retried.
type TimeoutError struct {
	Operation string
	Timeout   time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s timed out after %v", e.Operation, e.Timeout)
}

// Remediation hints surfaced with terminal errors.
const (
	hintUnauthorized = "re-authenticate with a valid access token"
	hintNotFound     = "verify the identifier and try again"
	hintBadRequest   = "check the request parameters"
	hintRateLimited  = "wait before issuing more requests"
	hintServer       = "the service is having trouble, retry later"
)

// classifyStatus maps a terminal HTTP status code to an APIError carrying
// a remediation hint. 429 and 5xx reach this mapping only after the retry
// budget is exhausted.
func classifyStatus(status int, message string) *APIError {
	e := &APIError{StatusCode: status, Message: message}
	switch {
	case status == 401:
		e.Hint = hintUnauthorized
	case status == 404:
		e.Hint = hintNotFound
	case status == 400:
		e.Hint = hintBadRequest
	case status == 429:
		e.Hint = hintRateLimited
	case status >= 500:
		e.Hint = hintServer
	}
	return e
}
