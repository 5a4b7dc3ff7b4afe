package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the Raindrop REST API root.
	DefaultBaseURL = "https://api.raindrop.io/rest/v1"

	// DefaultTimeout is the per-attempt timeout guard. An attempt that does
	// not complete before the guard fires is aborted and treated as a
	// timeout failure.
	DefaultTimeout = 60 * time.Second

	// maxErrorBody bounds how much of an error response body is read.
	maxErrorBody = 64 << 10
)

// Client is the HTTP API client. It owns the request pipeline: URL and
// header construction, the per-attempt timeout guard, retry with exponential
// backoff, outcome classification, and dry-run interception. A Client is
// immutable after construction and safe for concurrent use.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	retry      *RetryConfig
	timeout    time.Duration
	dryRun     bool
	logger     zerolog.Logger
}

// Option configures the API client.
type Option func(*Client)

// WithBaseURL sets the base URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithRetryConfig overrides the retry configuration.
func WithRetryConfig(cfg *RetryConfig) Option {
	return func(c *Client) {
		c.retry = cfg
	}
}

// WithTimeout sets the per-attempt timeout guard.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithDryRun enables dry-run mode: mutating requests are short-circuited
// with synthetic responses instead of performing network I/O.
func WithDryRun(dryRun bool) Option {
	return func(c *Client) {
		c.dryRun = dryRun
	}
}

// WithLogger sets the logger used for retry warnings and dry-run audit lines.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a new API client.
func New(token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	c := &Client{
		baseURL: DefaultBaseURL,
		token:   token,
		retry:   DefaultRetryConfig(),
		timeout: DefaultTimeout,
		logger:  zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}

	return c, nil
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// DryRun reports whether dry-run mode is enabled.
func (c *Client) DryRun() bool {
	return c.dryRun
}

// outcome captures the result of one attempt for classification.
type outcome struct {
	env           *Envelope
	decodeErr     error
	status        int
	message       string
	retryAfter    time.Duration
	hasRetryAfter bool
	transport     error
	timedOut      bool
}

// Do performs one logical API call: it retries transiently-failing attempts
// with bounded exponential backoff, enforces the per-attempt timeout, and
// maps every failure into a terminal error. Mutating methods are intercepted
// in dry-run mode.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body any) (*Envelope, error) {
	var data []byte
	if body != nil {
		var err error
		data, err = json.Marshal(body)
		if err != nil {
			return nil, err
		}
	}

	if c.dryRun && method != http.MethodGet {
		return c.dryRunResponse(method, path, data), nil
	}

	urlStr := c.baseURL + path
	if len(query) > 0 {
		urlStr += "?" + query.Encode()
	}

	logger := c.logger.With().
		Str("request_id", uuid.NewString()).
		Str("method", method).
		Str("path", path).
		Logger()

	for attempt := 1; attempt <= c.retry.MaxAttempts; attempt++ {
		out := c.attempt(ctx, method, urlStr, data)

		if out.transport != nil {
			if out.timedOut {
				return nil, &TimeoutError{Operation: method + " " + path, Timeout: c.timeout}
			}
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			if attempt >= c.retry.MaxAttempts {
				return nil, &NetworkError{Err: out.transport, URL: urlStr, Attempts: attempt}
			}
			delay := c.retry.Delay(attempt)
			logger.Warn().Err(out.transport).Int("attempt", attempt).Dur("delay", delay).
				Msg("transport failure, retrying")
			if err := c.retry.Wait(ctx, delay); err != nil {
				return nil, err
			}
			continue
		}

		switch {
		case out.status >= 200 && out.status < 300:
			if out.decodeErr != nil {
				return nil, &DecodeError{Err: out.decodeErr}
			}
			if !out.env.Result {
				return nil, &APIError{StatusCode: out.status, Message: resultMessage(out.env)}
			}
			return out.env, nil

		case out.status == 429:
			if attempt >= c.retry.MaxAttempts {
				return nil, classifyStatus(429, out.message)
			}
			// An absent header assumes the default wait; an explicit
			// Retry-After of zero leaves the plain backoff in charge.
			hint := c.retry.RetryAfterDefault
			if out.hasRetryAfter {
				hint = out.retryAfter
			}
			delay := c.retry.DelayWithHint(attempt, hint)
			logger.Warn().Int("attempt", attempt).Dur("delay", delay).
				Msg("rate limited, retrying")
			if err := c.retry.Wait(ctx, delay); err != nil {
				return nil, err
			}

		case out.status >= 500:
			if attempt >= c.retry.MaxAttempts {
				return nil, classifyStatus(out.status, out.message)
			}
			delay := c.retry.Delay(attempt)
			logger.Warn().Int("status", out.status).Int("attempt", attempt).Dur("delay", delay).
				Msg("server error, retrying")
			if err := c.retry.Wait(ctx, delay); err != nil {
				return nil, err
			}

		default:
			// Other 4xx: terminal, never retried.
			return nil, classifyStatus(out.status, out.message)
		}
	}

	return nil, ErrMaxRetries
}

// attempt performs a single transport call. The response body is fully
// consumed before returning so the attempt context can be cancelled safely.
func (c *Client) attempt(ctx context.Context, method, urlStr string, body []byte) outcome {
	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(attemptCtx, method, urlStr, reader)
	if err != nil {
		return outcome{transport: err}
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return outcome{
			transport: err,
			timedOut:  errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil,
		}
	}
	defer resp.Body.Close()

	out := outcome{status: resp.StatusCode}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		var env Envelope
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			out.decodeErr = err
			return out
		}
		out.env = &env
		return out
	}

	if resp.StatusCode == 429 {
		out.retryAfter, out.hasRetryAfter = parseRetryAfter(resp.Header.Get("Retry-After"))
	}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	out.message = extractErrorMessage(raw)
	return out
}

// parseRetryAfter parses a Retry-After header (integer seconds). The second
// return reports whether the header carried a usable value, so an explicit
// zero stays distinguishable from an absent or malformed header.
func parseRetryAfter(header string) (time.Duration, bool) {
	if header == "" {
		return 0, false
	}
	seconds, err := strconv.Atoi(header)
	if err != nil || seconds < 0 {
		return 0, false
	}
	return time.Duration(seconds) * time.Second, true
}

func resultMessage(env *Envelope) string {
	if env.ErrorMessage != "" {
		return env.ErrorMessage
	}
	return "operation failed"
}

// DecodeError reports a successful response whose body could not be decoded
// as an Envelope.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "decode response: " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}
