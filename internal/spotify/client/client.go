// Package client implements the Spotify Web API control surface: transport
// commands, playback-state queries and paginated library retrieval.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the Spotify Web API base URL.
const DefaultBaseURL = "https://api.spotify.com/v1"

// Client is a Spotify API client. Every request carries the token current at
// call time, so replacing the controller's token takes effect immediately.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      func() string
	verbose    bool
	logFunc    func(format string, args ...interface{})
}

// New creates a client whose requests are authorized by the given token
// supplier.
func New(token func() string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    DefaultBaseURL,
		token:      token,
	}
}

// NewStatic creates a client bound to a fixed token.
func NewStatic(token string) *Client {
	return New(func() string { return token })
}

// SetBaseURL overrides the API base URL.
func (c *Client) SetBaseURL(u string) {
	c.baseURL = strings.TrimSuffix(u, "/")
}

// SetVerbose enables verbose logging.
func (c *Client) SetVerbose(verbose bool, logFunc func(format string, args ...interface{})) {
	c.verbose = verbose
	c.logFunc = logFunc
}

func (c *Client) log(format string, args ...interface{}) {
	if c.verbose && c.logFunc != nil {
		c.logFunc(format, args...)
	}
}

// Get performs a GET request. path may be a relative API path or an absolute
// URL, as handed out by pagination cursors.
func (c *Client) Get(ctx context.Context, path string, result interface{}) error {
	status, body, err := c.do(ctx, "GET", path, nil)
	if err != nil {
		return err
	}
	if status == http.StatusNoContent || result == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// Put performs a PUT request. A nil body sends no payload at all.
func (c *Client) Put(ctx context.Context, path string, body interface{}) error {
	_, _, err := c.do(ctx, "PUT", path, body)
	return err
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) error {
	_, _, err := c.do(ctx, "POST", path, body)
	return err
}

// do issues a single request. Failures are not retried; transient-error
// policy belongs to the caller.
func (c *Client) do(ctx context.Context, method, path string, body interface{}) (int, []byte, error) {
	fullURL := path
	if !strings.HasPrefix(path, "http") {
		fullURL = c.baseURL + path
	}

	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = strings.NewReader(string(jsonBody))
		c.log("[spotify] %s %s\n  body: %s", method, fullURL, string(jsonBody))
	} else {
		c.log("[spotify] %s %s", method, fullURL)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}

	respBody, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.log("[spotify] response: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))

	if resp.StatusCode >= 400 {
		c.log("[spotify] response body: %s", string(respBody))
		var apiErr APIError
		if err := json.Unmarshal(respBody, &apiErr); err == nil && apiErr.ErrorInfo.Message != "" {
			return resp.StatusCode, respBody, &apiErr
		}
		return resp.StatusCode, respBody, fmt.Errorf("API error: status %d, body: %s", resp.StatusCode, string(respBody))
	}

	return resp.StatusCode, respBody, nil
}

// APIError represents a Spotify API error response.
type APIError struct {
	ErrorInfo struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Spotify API error %d: %s", e.ErrorInfo.Status, e.ErrorInfo.Message)
}

// IsAuthError checks if an error is a 401 from the API.
func IsAuthError(err error) bool {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.ErrorInfo.Status == http.StatusUnauthorized
	}
	return false
}

// BuildURL builds a URL with query parameters. path may be relative or
// absolute.
func BuildURL(path string, params map[string]string) string {
	if len(params) == 0 {
		return path
	}

	u, _ := url.Parse(path)
	q := u.Query()
	for k, v := range params {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	return u.String()
}
