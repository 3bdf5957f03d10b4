// Package http implements the shared request-execution core every resource
// client funnels through: URL construction, parameter filtering, one reusable
// connection pool, and 429-aware retry with exponential backoff.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/jira-client/internal/auth"
	"github.com/fivetwenty-io/jira-client/internal/constants"
	"github.com/fivetwenty-io/jira-client/pkg/jira"
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request represents an API request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response represents an API response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client is the HTTP client for the Jira API. One Client owns one underlying
// connection pool, created lazily on first use and released by Close.
type Client struct {
	baseURL      string
	authProvider auth.Provider
	userAgent    string
	logger       Logger
	debug        bool
	retryMax     int
	retryWaitMin time.Duration
	retryWaitMax time.Duration
	httpTimeout  time.Duration

	mu      sync.Mutex
	session *retryablehttp.Client
	closed  bool
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging when a logger is set.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig sets the retry ceiling and backoff window.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.retryMax = retryMax
		c.retryWaitMin = waitMin
		c.retryWaitMax = waitMax
	}
}

// WithHTTPTimeout bounds each request attempt.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpTimeout = timeout
	}
}

// NewClient creates a new API client. A nil auth provider sends requests
// unauthenticated.
func NewClient(baseURL string, authProvider auth.Provider, opts ...Option) *Client {
	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		authProvider: authProvider,
		userAgent:    "jira-client/1.0",
		retryMax:     constants.DefaultRetryMax,
		retryWaitMin: constants.DefaultRetryWaitMin,
		retryWaitMax: constants.DefaultRetryWaitMax,
		httpTimeout:  constants.DefaultHTTPTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// acquire returns the shared session, creating it on first use. The lock is
// released before any I/O happens.
func (c *Client) acquire() (*retryablehttp.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, jira.ErrClientClosed
	}

	if c.session == nil {
		c.session = c.newSession()
	}

	return c.session, nil
}

// newSession builds the retrying HTTP client around a pooled transport.
func (c *Client) newSession() *retryablehttp.Client {
	session := retryablehttp.NewClient()
	session.Logger = nil
	session.RetryMax = c.retryMax
	session.RetryWaitMin = c.retryWaitMin
	session.RetryWaitMax = c.retryWaitMax
	session.CheckRetry = RetryPolicy
	session.Backoff = RetryBackoff
	session.HTTPClient.Timeout = c.httpTimeout

	retryMax := c.retryMax
	session.ErrorHandler = func(resp *http.Response, err error, numTries int) (*http.Response, error) {
		if resp != nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
		}

		if err != nil {
			return nil, err
		}

		return nil, jira.NewRetryExhaustedError(retryMax)
	}

	return session
}

// Close releases the connection pool. Safe to call multiple times; requests
// after Close fail with jira.ErrClientClosed.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	if c.session != nil {
		c.session.HTTPClient.CloseIdleConnections()
	}

	c.closed = true
}

// buildURL joins the base URL, the API prefix, and the normalized path.
func (c *Client) buildURL(path string) (string, error) {
	trimmed := strings.Trim(strings.TrimSpace(path), "/")
	if trimmed == "" {
		return "", jira.ErrEmptyPath
	}

	return c.baseURL + "/" + constants.APIPathPrefix + "/" + trimmed, nil
}

// FilterBody drops nil-valued keys from a map body. An empty filtered map
// becomes nil so no body is transmitted. Non-map bodies pass through.
func FilterBody(body interface{}) interface{} {
	if body == nil {
		return nil
	}

	mapped, ok := body.(map[string]interface{})
	if !ok {
		return body
	}

	filtered := make(map[string]interface{}, len(mapped))

	for key, value := range mapped {
		if value == nil {
			continue
		}

		filtered[key] = value
	}

	if len(filtered) == 0 {
		return nil
	}

	return filtered
}

// FilterQuery drops keys whose values are all empty.
func FilterQuery(query url.Values) url.Values {
	if query == nil {
		return nil
	}

	filtered := url.Values{}

	for key, values := range query {
		for _, value := range values {
			if value != "" {
				filtered.Add(key, value)
			}
		}
	}

	if len(filtered) == 0 {
		return nil
	}

	return filtered
}

// Do executes a request against the API, retrying rate-limited responses per
// the configured backoff policy. Non-2xx responses return both the response
// and a jira.APIError; transport failures return a jira.TransportError and
// are never retried.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	session, err := c.acquire()
	if err != nil {
		return nil, err
	}

	fullURL, err := c.buildURL(req.Path)
	if err != nil {
		return nil, err
	}

	query := FilterQuery(req.Query)
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var rawBody []byte

	body := FilterBody(req.Body)
	if body != nil {
		rawBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
	}

	httpReq, err := c.newRequest(ctx, req, fullURL, rawBody)
	if err != nil {
		return nil, err
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := session.Do(httpReq)
	if err != nil {
		exhausted := &jira.RetryExhaustedError{}
		if errors.As(err, &exhausted) {
			return nil, exhausted
		}

		return nil, &jira.TransportError{Op: req.Method + " " + req.Path, Err: err}
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &jira.TransportError{Op: req.Method + " " + req.Path, Err: err}
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"url":         fullURL,
			"status_code": resp.StatusCode,
		})
	}

	if Classify(resp.StatusCode) != OutcomeSuccess {
		return resp, &jira.APIError{
			StatusCode: resp.StatusCode,
			Message:    jira.ExtractErrorMessage(respBody),
		}
	}

	return resp, nil
}

// newRequest builds the retryable request with headers and credentials.
func (c *Client) newRequest(ctx context.Context, req *Request, fullURL string, rawBody []byte) (*retryablehttp.Request, error) {
	var bodyArg interface{}
	if rawBody != nil {
		bodyArg = rawBody
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, bodyArg)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if rawBody != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.authProvider != nil {
		err = c.authProvider.Apply(ctx, httpReq.Request)
		if err != nil {
			return nil, fmt.Errorf("applying credentials: %w", err)
		}
	}

	return httpReq, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}
