package raindrop

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/raindropctl/raindropctl/internal/api"
	"github.com/raindropctl/raindropctl/internal/schema"
	"github.com/rs/zerolog"
)

// Client is the Raindrop API client. One method corresponds to one logical
// resource operation; every method either returns a fully-typed value or a
// terminal error from the request pipeline. A Client holds no mutable state
// after construction and is safe for concurrent use.
type Client struct {
	api        *api.Client
	logger     zerolog.Logger
	archiveURL string
	httpClient *http.Client
}

// New creates a new Raindrop client with the given access token.
func New(token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	cfg := &clientConfig{
		baseURL:    api.DefaultBaseURL,
		archiveURL: DefaultArchiveURL,
		timeout:    api.DefaultTimeout,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := buildAPIClient(token, cfg)
	if err != nil {
		return nil, wrapError(err)
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: archiveTimeout}
	}

	return &Client{
		api:        apiClient,
		logger:     cfg.logger,
		archiveURL: cfg.archiveURL,
		httpClient: httpClient,
	}, nil
}

// buildAPIClient creates and configures an API client from the given config.
func buildAPIClient(token string, cfg *clientConfig) (*api.Client, error) {
	apiOpts := []api.Option{
		api.WithBaseURL(cfg.baseURL),
		api.WithDryRun(cfg.dryRun),
		api.WithLogger(cfg.logger),
	}
	if cfg.timeout > 0 {
		apiOpts = append(apiOpts, api.WithTimeout(cfg.timeout))
	}
	if cfg.retry != nil {
		apiOpts = append(apiOpts, api.WithRetryConfig(cfg.retry))
	}
	if cfg.httpClient != nil {
		apiOpts = append(apiOpts, api.WithHTTPClient(cfg.httpClient))
	}
	return api.New(token, apiOpts...)
}

// DryRun reports whether the client simulates mutating operations.
func (c *Client) DryRun() bool {
	return c.api.DryRun()
}

// The helpers below are the single request + validate + unwrap path every
// facade method goes through: perform the call, pick the envelope sub-field,
// validate it against the endpoint's contract, and decode into the typed
// destination.

func (c *Client) fetchItem(ctx context.Context, method, path string, query url.Values, body any, def *schema.ObjectDef, v any) error {
	env, err := c.api.Do(ctx, method, path, query, body)
	if err != nil {
		return wrapError(err)
	}
	if env.Item == nil {
		return &SchemaError{Endpoint: def.Name, Violations: []string{"item: required field missing"}}
	}
	if err := def.Validate(env.Item); err != nil {
		return wrapError(err)
	}
	return unmarshalPayload(env.Item, v, def.Name)
}

func (c *Client) fetchItems(ctx context.Context, method, path string, query url.Values, body any, def *schema.ObjectDef, v any) error {
	env, err := c.api.Do(ctx, method, path, query, body)
	if err != nil {
		return wrapError(err)
	}
	if env.Items == nil {
		return &SchemaError{Endpoint: def.Name, Violations: []string{"items: required field missing"}}
	}
	if err := def.ValidateList(env.Items); err != nil {
		return wrapError(err)
	}
	return unmarshalPayload(env.Items, v, def.Name)
}

// unmarshalPayload decodes an already-validated payload into its typed
// destination.
func unmarshalPayload(raw json.RawMessage, v any, endpoint string) error {
	if err := json.Unmarshal(raw, v); err != nil {
		return &SchemaError{Endpoint: endpoint, Violations: []string{err.Error()}}
	}
	return nil
}

// fetchModified runs a batch mutation and returns the server's modified
// count (falling back to the generic count field).
func (c *Client) fetchModified(ctx context.Context, method, path string, body any) (int, error) {
	env, err := c.api.Do(ctx, method, path, nil, body)
	if err != nil {
		return 0, wrapError(err)
	}
	if env.Modified != nil {
		return *env.Modified, nil
	}
	if env.Count != nil {
		return *env.Count, nil
	}
	return 0, nil
}

// exec runs an operation whose response carries only the success flag.
func (c *Client) exec(ctx context.Context, method, path string, body any) error {
	_, err := c.api.Do(ctx, method, path, nil, body)
	return wrapError(err)
}
