package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// Upload performs a multipart file upload. It bypasses the JSON request
// pipeline entirely: no JSON content type, no retry schedule. Dry-run
// interception still applies, and a non-2xx status is still a terminal
// classified error.
func (c *Client) Upload(ctx context.Context, path, field, filename string, content io.Reader) (*Envelope, error) {
	if c.dryRun {
		return c.dryRunResponse(http.MethodPut, path, nil), nil
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		return nil, fmt.Errorf("create multipart body: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("read upload content: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finalize multipart body: %w", err)
	}

	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodPut, c.baseURL+path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	// The multipart writer supplies the boundary; do not override with JSON.
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, &TimeoutError{Operation: "PUT " + path, Timeout: c.timeout}
		}
		return nil, &NetworkError{Err: err, URL: c.baseURL + path, Attempts: 1}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, classifyStatus(resp.StatusCode, extractErrorMessage(raw))
	}

	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, &DecodeError{Err: err}
	}
	if !env.Result {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: resultMessage(&env)}
	}
	return &env, nil
}
