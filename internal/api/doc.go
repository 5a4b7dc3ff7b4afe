// Package api provides HTTP client functionality for communicating with the
// Raindrop REST API. It handles bearer authentication, request/response
// serialization, dry-run interception for mutating calls, and automatic
// retry with exponential backoff for transient failures.
//
// # Retry Behavior
//
// One logical call gets a budget of 3 attempts in total. 429 and 5xx
// responses and generic transport failures consume the budget; each retry
// waits min(base * 2^attempt + jitter, max), and a 429 response's
// Retry-After header is honored when it suggests a longer wait. Other 4xx
// statuses are terminal immediately, and an attempt that trips the
// per-request timeout guard is terminal as well: retrying a slow request
// would not bound total latency.
//
// # Error Handling
//
// Terminal failures map to a fixed taxonomy. Use errors.Is with the
// package's sentinel errors ([ErrUnauthorized], [ErrNotFound],
// [ErrRateLimited], [ErrServer], ...) or errors.As with [*APIError],
// [*NetworkError], and [*TimeoutError] for details and remediation hints.
package api
