// Package http implements the single-round-trip transport under the TestRail
// client: one authenticated request, success normalized to raw bytes,
// failure normalized to a typed error.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"github.com/autoocto/testrail-tools/pkg/testrail"
	"github.com/hashicorp/go-retryablehttp"
)

const (
	// apiPrefix is the service-mandated path under which every operation
	// lives. The "?" is part of the grammar: the whole API path travels in
	// the URL's query string.
	apiPrefix = "/index.php?/api/v2/"

	// linkPrefix re-bases server-issued continuation links.
	linkPrefix = "/index.php?/"

	defaultUserAgent = "testrail-tools/1.0"
)

// Logger interface for HTTP client logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Credentials is the immutable identity of a client instance. The Basic-Auth
// header is computed from it fresh on every request.
type Credentials struct {
	Email  string
	APIKey string
}

// Client is the transport primitive. It is stateless across calls and safe
// for concurrent use; there is no connection-level coordination beyond what
// the underlying http.Transport provides.
type Client struct {
	baseURL    string
	creds      Credentials
	httpClient *retryablehttp.Client
	logger     Logger
	debug      bool
	userAgent  string
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets a logger for the client.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig enables retries for transient failures. The service
// contract has none, so nothing retries unless a caller opts in.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithHTTPTimeout sets an overall per-attempt timeout.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// NewClient creates a new transport client for the given instance URL.
func NewClient(baseURL string, creds Credentials, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		creds:      creds,
		httpClient: retryClient,
		userAgent:  defaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Request represents a single API request. Endpoint addresses an operation
// ("get_cases/12"); Link, when set instead, is a server-issued continuation
// dereferenced verbatim.
type Request struct {
	Method   string
	Endpoint string
	Link     string
	Query    url.Values
	Body     interface{}
	Headers  map[string]string
}

// Response represents an API response. Body holds the verbatim payload;
// callers decode it or pass it through as they see fit.
type Response struct {
	StatusCode int
	Headers    nethttp.Header
	Body       []byte
}

// Do performs one authenticated round trip. Any status in [200,300) is a
// success; any other status returns the response alongside a
// *testrail.APIError, and failures before a status was obtained return a
// *testrail.NetworkError.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.requestURL(req)

	var bodyReader io.Reader

	if req.Body != nil {
		bodyBytes, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		bodyReader = bytes.NewReader(bodyBytes)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.SetBasicAuth(c.creds.Email, c.creds.APIKey)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &testrail.NetworkError{URL: fullURL, Err: err}
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &testrail.NetworkError{URL: fullURL, Err: err}
	}

	response := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": httpResp.StatusCode,
			"url":    fullURL,
		})
	}

	if httpResp.StatusCode >= 200 && httpResp.StatusCode < 300 {
		return response, nil
	}

	return response, apiError(httpResp.StatusCode, respBody)
}

// Get performs a GET request against an operation endpoint.
func (c *Client) Get(ctx context.Context, endpoint string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method:   nethttp.MethodGet,
		Endpoint: endpoint,
		Query:    query,
	})
}

// Post performs a POST request against an operation endpoint. The service
// uses POST for every mutation, including deletes.
func (c *Client) Post(ctx context.Context, endpoint string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method:   nethttp.MethodPost,
		Endpoint: endpoint,
		Body:     body,
	})
}

// FollowLink performs a GET against a continuation link exactly as the
// server emitted it. The link encodes pagination state, including filters
// the caller may never have seen, so it is never parsed or re-encoded here.
func (c *Client) FollowLink(ctx context.Context, link string) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: nethttp.MethodGet,
		Link:   link,
	})
}

func (c *Client) requestURL(req *Request) string {
	if req.Link != "" {
		return c.baseURL + linkPrefix + strings.TrimPrefix(req.Link, "/")
	}

	fullURL := c.baseURL + apiPrefix + req.Endpoint

	// The URL's query string already starts at index.php?, so additional
	// parameters are joined with & rather than a second ?.
	if len(req.Query) > 0 {
		fullURL += "&" + req.Query.Encode()
	}

	return fullURL
}

// apiError maps a non-2xx answer onto the error taxonomy, keeping the raw
// body so callers can distinguish 401/403/404 and diagnose the rest.
func apiError(statusCode int, body []byte) error {
	apiErr := &testrail.APIError{
		StatusCode: statusCode,
		Body:       string(body),
	}

	var payload struct {
		Error string `json:"error"`
	}

	if json.Unmarshal(body, &payload) == nil {
		apiErr.Message = payload.Error
	}

	return apiErr
}
