// Package smoke drives a running server through its observable
// contracts end to end: the auth chain outcomes per token, pagination
// clamping, sequential id assignment, and exact category search.
package smoke

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// client wraps http.Client with a base URL and JSON decoding.
type client struct {
	base string
	http *http.Client
}

func newClient(base string, timeout time.Duration) *client {
	return &client{
		base: base,
		http: &http.Client{Timeout: timeout},
	}
}

// do performs a request and decodes the JSON response body into a
// generic map alongside the status code.
func (c *client) do(ctx context.Context, method, path string, query url.Values) (int, map[string]any, error) {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read body of %s %s: %w", method, path, err)
	}
	var body map[string]any
	if len(raw) > 0 {
		// Non-JSON bodies (e.g. plain 404 pages) are not an error here;
		// checks assert on status codes in that case.
		_ = json.Unmarshal(raw, &body)
	}
	return resp.StatusCode, body, nil
}

func (c *client) get(ctx context.Context, path string, query url.Values) (int, map[string]any, error) {
	return c.do(ctx, http.MethodGet, path, query)
}

func (c *client) post(ctx context.Context, path string, query url.Values) (int, map[string]any, error) {
	return c.do(ctx, http.MethodPost, path, query)
}

func (c *client) delete(ctx context.Context, path string, query url.Values) (int, map[string]any, error) {
	return c.do(ctx, http.MethodDelete, path, query)
}
