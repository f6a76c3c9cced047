// Package adminclient is a typed client for the blockproxy admin API.
//
// A Client is built once by the application root, either explicitly with New
// or from the hosting page's URL with FromLocation (FromWindow under wasm),
// and passed to whatever needs it. Every call is a single round trip.
package adminclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jroosing/blockproxy/internal/blocking"
	"github.com/jroosing/blockproxy/internal/statistics"
)

// APIPrefix is prepended to every request path.
const APIPrefix = "/api"

const contentTypeJSON = "application/json"

// Client is an HTTP client for the admin gateway.
type Client struct {
	hostname   string
	port       uint16
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the HTTP timeout on a copy of the current http.Client,
// leaving a client passed to WithHTTPClient untouched.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		hc := *c.httpClient
		hc.Timeout = timeout
		c.httpClient = &hc
	}
}

// New creates a client for the gateway at hostname:port.
func New(hostname string, port uint16, opts ...Option) *Client {
	c := &Client{
		hostname: hostname,
		port:     port,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Hostname() string { return c.hostname }

func (c *Client) Port() uint16 { return c.port }

// Endpoint returns the absolute URL for an API path such as "/statistics".
func (c *Client) Endpoint(path string) string {
	return "http://" + net.JoinHostPort(c.hostname, strconv.Itoa(int(c.port))) + APIPrefix + path
}

// GetStatistics returns the current statistics snapshot.
func (c *Client) GetStatistics(ctx context.Context) (statistics.Snapshot, error) {
	return Get[statistics.Snapshot](ctx, c, "/statistics")
}

// GetBlocking returns the current blocking state.
func (c *Client) GetBlocking(ctx context.Context) (blocking.State, error) {
	status, err := Get[blocking.Status](ctx, c, "/blocking")
	return status.State, err
}

// SetBlocking sets the blocking state and returns the state the gateway reports back.
func (c *Client) SetBlocking(ctx context.Context, state blocking.State) (blocking.State, error) {
	status, err := Post[blocking.Status](ctx, c, "/blocking", blocking.Status{State: state})
	return status.State, err
}

// Get issues a GET for path and decodes the JSON response into T.
func Get[T any](ctx context.Context, c *Client, path string) (T, error) {
	var zero T

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Endpoint(path), nil)
	if err != nil {
		return zero, fmt.Errorf("build request: %w", err)
	}
	return do[T](c, req)
}

// Post JSON-encodes body, POSTs it to path and decodes the JSON response into T.
func Post[T, B any](ctx context.Context, c *Client, path string, body B) (T, error) {
	var zero T

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return zero, fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint(path), &buf)
	if err != nil {
		return zero, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", contentTypeJSON)
	return do[T](c, req)
}

func do[T any](c *Client, req *http.Request) (T, error) {
	var out T

	req.Header.Set("Accept", contentTypeJSON)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return out, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return out, parseError(req, resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return out, fmt.Errorf("decode %s response: %w", req.URL.Path, err)
	}
	return out, nil
}

// maxErrorBody bounds how much of a failed response is kept in a StatusError.
const maxErrorBody = 4096

func parseError(req *http.Request, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &StatusError{
		Method:     req.Method,
		Path:       req.URL.Path,
		StatusCode: resp.StatusCode,
		Body:       body,
	}
}
