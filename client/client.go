package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aetherrootr/sub-cache/model"
)

// RequestError is returned for any non-2xx backend response. Message is
// the backend's {"error": "..."} field when the body parses as JSON, the
// status line otherwise.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

// Client is a typed wrapper over the backend's /sub/* endpoints. One
// attempt per call: no retries and no client-side timeout; callers bound
// requests through ctx when they need a deadline.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

func New(baseURL string, log *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{},
		log:        log,
	}
}

type AddRequest struct {
	Name    string        `json:"name"`
	Type    model.SubType `json:"type"`
	URL     string        `json:"url,omitempty"`
	Content string        `json:"content,omitempty"`
}

// UpdateRequest has no name field: the name is immutable after creation
// and an update must never resend it.
type UpdateRequest struct {
	Type    model.SubType `json:"type"`
	URL     string        `json:"url,omitempty"`
	Content string        `json:"content,omitempty"`
}

type AddResult struct {
	ID      int64  `json:"id"`
	Message string `json:"message,omitempty"`
}

type listResponse struct {
	SubList []model.SubscriptionSource `json:"sub_list"`
}

type messageResponse struct {
	Message string `json:"message,omitempty"`
}

func (c *Client) List(ctx context.Context) ([]model.SubscriptionSource, error) {
	var resp listResponse
	if err := c.request(ctx, http.MethodGet, "/sub/list", nil, &resp); err != nil {
		return nil, err
	}

	if resp.SubList == nil {
		return []model.SubscriptionSource{}, nil
	}

	return resp.SubList, nil
}

func (c *Client) Add(ctx context.Context, req AddRequest) (*AddResult, error) {
	var resp AddResult
	if err := c.request(ctx, http.MethodPost, "/sub/add", req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Client) Update(ctx context.Context, id int64, req UpdateRequest) error {
	var resp messageResponse

	return c.request(ctx, http.MethodPost, fmt.Sprintf("/sub/update/%d", id), req, &resp)
}

// Delete does not expect a JSON body on success. On failure the raw
// response text becomes the error message, falling back to the status
// line when the body is empty.
func (c *Client) Delete(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/sub/delete/%d", id)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", http.MethodDelete, path, err)
	}
	defer c.closeBody(ctx, resp.Body, path)

	if isSuccess(resp.StatusCode) {
		return nil
	}

	raw, readErr := io.ReadAll(resp.Body)
	msg := strings.TrimSpace(string(raw))
	if readErr != nil || msg == "" {
		msg = statusLine(resp)
	}

	return &RequestError{Status: resp.StatusCode, Message: msg}
}

func (c *Client) RefreshCache(ctx context.Context, id int64) error {
	var resp messageResponse

	return c.request(ctx, http.MethodPost, fmt.Sprintf("/sub/refresh/%d", id), struct{}{}, &resp)
}

func (c *Client) request(ctx context.Context, method string, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer c.closeBody(ctx, resp.Body, path)

	if !isSuccess(resp.StatusCode) {
		return &RequestError{Status: resp.StatusCode, Message: errorMessage(resp)}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	// An empty success body decodes as an empty object.
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	if err = json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}

	return nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

// errorMessage prefers the backend's {"error": "..."} convention and
// falls back to the status line.
func errorMessage(resp *http.Response) string {
	raw, err := io.ReadAll(resp.Body)
	if err == nil {
		var body struct {
			Error string `json:"error"`
		}
		if jsonErr := json.Unmarshal(raw, &body); jsonErr == nil && strings.TrimSpace(body.Error) != "" {
			return body.Error
		}
	}

	return statusLine(resp)
}

func statusLine(resp *http.Response) string {
	return fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
}

func (c *Client) closeBody(ctx context.Context, body io.ReadCloser, path string) {
	if err := body.Close(); err != nil {
		c.log.ErrorContext(ctx, "Failed to close response body",
			"error", err,
			"path", path)
	}
}
