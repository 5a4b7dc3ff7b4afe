package raindrop

import (
	"net/http"
	"time"

	"github.com/raindropctl/raindropctl/internal/api"
	"github.com/rs/zerolog"
)

const (
	// DefaultArchiveURL is the Wayback Machine availability endpoint used by
	// archive checks. It is a separate third-party service: no auth, no retry.
	DefaultArchiveURL = "https://archive.org/wayback/available"

	// archiveTimeout bounds the best-effort archive availability check.
	archiveTimeout = 15 * time.Second
)

// clientConfig holds configuration for the client. It is read-only after
// construction; a Client instance can be shared across concurrent calls.
type clientConfig struct {
	baseURL    string
	archiveURL string
	httpClient *http.Client
	timeout    time.Duration
	dryRun     bool
	logger     zerolog.Logger
	retry      *api.RetryConfig
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithArchiveURL sets the archive availability endpoint.
func WithArchiveURL(url string) Option {
	return func(c *clientConfig) {
		c.archiveURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the per-attempt timeout guard.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithDryRun enables dry-run mode: mutating operations are simulated with
// synthetic responses and an audit log line instead of network I/O.
// Read-only operations still hit the real API.
func WithDryRun(dryRun bool) Option {
	return func(c *clientConfig) {
		c.dryRun = dryRun
	}
}

// WithLogger sets the logger used for retry warnings, dry-run audit lines,
// and best-effort failure notices. Default is a no-op logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithRetry overrides the retry schedule: total attempt budget and the
// base/cap of the exponential backoff. The assumed wait for a rate-limited
// response without a Retry-After header keeps its default.
func WithRetry(maxAttempts int, baseDelay, maxDelay time.Duration) Option {
	return func(c *clientConfig) {
		cfg := api.DefaultRetryConfig()
		cfg.MaxAttempts = maxAttempts
		cfg.BaseDelay = baseDelay
		cfg.MaxDelay = maxDelay
		c.retry = cfg
	}
}
