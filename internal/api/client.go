package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/sabinstha/brewdash/internal/session"
)

// Client executes one HTTP request against the admin API and classifies the
// outcome. It attaches the bearer token from the injected session store and
// never retries on its own; a user-facing retry re-invokes the same call.
type Client struct {
	baseURL        string
	http           *http.Client
	session        session.Store
	onUnauthorized func()
}

// Response is a successful outcome. NoContent marks 2xx responses with an
// empty body (e.g. DELETE).
type Response struct {
	Status    int
	Body      json.RawMessage
	NoContent bool
}

// Decode unmarshals the response body into v.
func (r *Response) Decode(v any) error {
	if r.NoContent {
		return &Error{Kind: KindProtocol, Status: r.Status, Message: "expected a response body but got none"}
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return &Error{Kind: KindProtocol, Status: r.Status, Message: fmt.Sprintf("failed to decode response: %v", err)}
	}
	return nil
}

// NewClient creates an API client. onUnauthorized runs once per 401 response,
// after the session token has been cleared; pass nil when no navigation or
// notification side effect is wanted.
func NewClient(baseURL string, timeout time.Duration, sess session.Store, onUnauthorized func()) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: timeout,
		},
		session:        sess,
		onUnauthorized: onUnauthorized,
	}
}

// Do executes one request with a JSON body (nil for none).
func (c *Client) Do(ctx context.Context, method, path string, body any) (*Response, error) {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewBuffer(jsonData)
	}
	return c.send(ctx, method, path, reader, "application/json")
}

// DoMultipart executes one request with a caller-built multipart body. The
// payload is passed through untouched; contentType carries the boundary.
func (c *Client) DoMultipart(ctx context.Context, method, path string, body io.Reader, contentType string) (*Response, error) {
	return c.send(ctx, method, path, body, contentType)
}

func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, http.MethodGet, path, nil)
}

func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, http.MethodPost, path, body)
}

func (c *Client) Patch(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, http.MethodPatch, path, body)
}

func (c *Client) Put(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, http.MethodPut, path, body)
}

func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, http.MethodDelete, path, nil)
}

func (c *Client) send(ctx context.Context, method, path string, body io.Reader, contentType string) (*Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil && contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if token, ok := c.session.Token(); ok {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Message: fmt.Sprintf("request failed: %v", err)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Message: fmt.Sprintf("failed to read response: %v", err)}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if len(bytes.TrimSpace(respBody)) == 0 {
			return &Response{Status: resp.StatusCode, NoContent: true}, nil
		}
		return &Response{Status: resp.StatusCode, Body: respBody}, nil
	}

	if resp.StatusCode == http.StatusUnauthorized {
		_ = c.session.Clear()
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return nil, &Error{Kind: KindUnauthorized, Status: resp.StatusCode, Message: "session expired"}
	}

	return nil, &Error{
		Kind:    KindRequestFailed,
		Status:  resp.StatusCode,
		Message: parseErrorBody(respBody, resp.Status),
	}
}

// parseErrorBody extracts a human-readable message from a DRF-style error
// payload: either {"detail": "..."} or a field-keyed validation map. Falls
// back to the HTTP status text.
func parseErrorBody(body []byte, statusText string) string {
	var detail struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &detail); err == nil && detail.Detail != "" {
		return detail.Detail
	}

	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err == nil && len(fields) > 0 {
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var parts []string
		for _, k := range keys {
			switch v := fields[k].(type) {
			case string:
				parts = append(parts, fmt.Sprintf("%s: %s", k, v))
			case []any:
				for _, item := range v {
					if s, ok := item.(string); ok {
						parts = append(parts, fmt.Sprintf("%s: %s", k, s))
					}
				}
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, "; ")
		}
	}

	return statusText
}
