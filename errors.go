package raindrop

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/raindropctl/raindropctl/internal/api"
	"github.com/raindropctl/raindropctl/internal/schema"
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

	// ErrRateLimited is returned when the rate limit is exceeded and the
	// retry budget has been spent.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrServer is returned when the API keeps failing with a 5xx status
	// after the retry budget has been spent.
	ErrServer = errors.New("server error")

	// ErrInvalidResponse is returned when a response fails structural
	// validation. A malformed server response is never retried.
	ErrInvalidResponse = errors.New("invalid server response")

	// ErrMaxRetries is the defensive fallback when the retry loop exits
	// without an explicit terminal error.
	ErrMaxRetries = errors.New("maximum retries exceeded")
)

// RaindropError is implemented by all SDK errors.
type RaindropError interface {
	error
	RaindropError() // marker method
}

// APIError represents a terminal HTTP error from the Raindrop API.
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

// RaindropError implements the RaindropError interface.
func (e *APIError) RaindropError() {}

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

// Status returns the HTTP status code.
func (e *APIError) Status() int { return e.StatusCode }

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
func (e *NetworkError) Unwrap() error { return e.Err }

// RaindropError implements the RaindropError interface.
func (e *NetworkError) RaindropError() {}

// Status returns the synthesized status code for network failures.
func (e *NetworkError) Status() int { return http.StatusServiceUnavailable }

// TimeoutError represents an attempt that exceeded the per-request timeout
// guard. Timeouts are terminal; a slow request is not re-attempted.
type TimeoutError struct {
	Operation string
	Timeout   time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s timed out after %v", e.Operation, e.Timeout)
}

// RaindropError implements the RaindropError interface.
func (e *TimeoutError) RaindropError() {}

// Status returns the synthesized status code for timeouts.
func (e *TimeoutError) Status() int { return http.StatusGatewayTimeout }

// SchemaError reports a response payload that failed structural validation.
// Violations lists every violated field path and the reason.
type SchemaError struct {
	Endpoint   string
	Violations []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: invalid response shape: %s",
		e.Endpoint, strings.Join(e.Violations, "; "))
}

// RaindropError implements the RaindropError interface.
func (e *SchemaError) RaindropError() {}

// Is implements errors.Is for sentinel error matching.
func (e *SchemaError) Is(target error) bool {
	return target == ErrInvalidResponse
}

// Status returns the synthesized status code for schema violations.
func (e *SchemaError) Status() int { return http.StatusInternalServerError }

// ValidationError reports malformed or missing caller input, detected before
// any network call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "invalid input: " + e.Message
}

// RaindropError implements the RaindropError interface.
func (e *ValidationError) RaindropError() {}

// Status returns the synthesized status code for input validation failures.
func (e *ValidationError) Status() int { return http.StatusBadRequest }

// StatusOf returns the numeric status code carried by a terminal error,
// synthesized for non-HTTP failures. Returns 0 for unrecognized errors.
func StatusOf(err error) int {
	var s interface{ Status() int }
	if errors.As(err, &s) {
		return s.Status()
	}
	return 0
}

// HintOf returns the remediation hint carried by a terminal error, if any.
func HintOf(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Hint
	}
	return ""
}

// wrapError converts internal errors to public errors so that errors.Is()
// checks work with this package's sentinels.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode: apiErr.StatusCode,
			Message:    apiErr.Message,
			Hint:       apiErr.Hint,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{
			Err:      netErr.Err,
			URL:      netErr.URL,
			Attempts: netErr.Attempts,
		}
	}

	var toErr *api.TimeoutError
	if errors.As(err, &toErr) {
		return &TimeoutError{
			Operation: toErr.Operation,
			Timeout:   toErr.Timeout,
		}
	}

	var decErr *api.DecodeError
	if errors.As(err, &decErr) {
		return &SchemaError{
			Endpoint:   "envelope",
			Violations: []string{decErr.Err.Error()},
		}
	}

	var schemaErr *schema.Error
	if errors.As(err, &schemaErr) {
		return &SchemaError{
			Endpoint:   schemaErr.Endpoint,
			Violations: schemaErr.Violations,
		}
	}

	switch {
	case errors.Is(err, api.ErrMissingToken):
		return ErrMissingToken
	case errors.Is(err, api.ErrMaxRetries):
		return ErrMaxRetries
	}

	return err
}
