// Package api is the adapter for the practice-management backend. It is the
// only place that knows the wire shapes; callers deal in domain types.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/marisolhealth/sessiondesk/internal/domain"
)

// Client talks to the practice backend over REST.
//
// Reads (appointment feed, assignable lists) go through a client with a
// bounded timeout; mutations (start, end, progress, assign) go through one
// without, since abandoning a non-idempotent call client-side can leave the
// server with a session the UI does not know about.
type Client struct {
	baseURL string
	token   string
	read    *http.Client
	write   *http.Client
	logger  *slog.Logger
}

// NewClient creates a new backend client
func NewClient(baseURL, token string, readTimeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		read:    &http.Client{Timeout: readTimeout},
		write:   &http.Client{},
		logger:  logger,
	}
}

// get issues a GET through the timeout-bounded read client and decodes the
// JSON response into out.
func (c *Client) get(ctx context.Context, op, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &domain.APIError{Op: op, Err: err}
	}
	c.decorate(req, false)

	resp, err := c.read.Do(req)
	if err != nil {
		return &domain.APIError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.statusError(op, resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domain.APIError{Op: op, Message: "failed to parse response", Err: err}
	}
	return nil
}

// send issues a mutating call through the unbounded write client and returns
// the raw response body for callers that need to probe it.
func (c *Client) send(ctx context.Context, op, method, path string, body any) ([]byte, error) {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, &domain.APIError{Op: op, Message: "failed to encode request", Err: err}
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return nil, &domain.APIError{Op: op, Err: err}
	}
	c.decorate(req, true)

	c.logger.Debug("backend call", "op", op, "method", method, "path", path)

	resp, err := c.write.Do(req)
	if err != nil {
		return nil, &domain.APIError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.APIError{Op: op, Message: "failed to read response", Err: err}
	}

	if resp.StatusCode == http.StatusConflict {
		return data, &domain.APIError{Op: op, StatusCode: resp.StatusCode, Err: domain.ErrConflict}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return data, &domain.APIError{Op: op, StatusCode: resp.StatusCode, Message: errorMessage(data)}
	}
	return data, nil
}

// decorate sets auth and content headers. Mutating requests carry a
// client-generated request id so retries are traceable server-side.
func (c *Client) decorate(req *http.Request, mutating bool) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Accept", "application/json")
	if mutating {
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Request-ID", uuid.NewString())
	}
}

func (c *Client) statusError(op string, resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	apiErr := &domain.APIError{Op: op, StatusCode: resp.StatusCode, Message: errorMessage(data)}
	switch resp.StatusCode {
	case http.StatusNotFound:
		apiErr.Err = domain.ErrNotFound
	case http.StatusConflict:
		apiErr.Err = domain.ErrConflict
	}
	return apiErr
}

// errorMessage pulls a human-readable message out of an error body, tolerating
// the couple of shapes the backend uses.
func errorMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return ""
}

// pathEscape joins path segments, escaping ids so a hostile id cannot
// rewrite the route.
func pathEscape(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return "/" + strings.Join(escaped, "/")
}
