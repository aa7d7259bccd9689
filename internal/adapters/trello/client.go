// Package trello implements the Trello REST API gateway.
//
// Every request carries the API key and token as the first two query
// parameters. Requests share one http.Client and are paced by a token
// bucket limiter so bulk operations stay under Trello's rate limits.
package trello

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"tro/internal/logging"
	"tro/internal/ports"
)

const (
	// DefaultHost is the Trello API host
	DefaultHost = "https://api.trello.com"

	// DefaultTimeout bounds a single request
	DefaultTimeout = 30 * time.Second

	// DefaultRateLimit is the sustained request rate in requests per second.
	// Trello allows 100 requests per 10 seconds per token.
	DefaultRateLimit = 10

	// maxResponseSize bounds how much of a response body is read
	maxResponseSize = 10 * 1024 * 1024
)

var _ ports.TrelloGateway = (*Client)(nil)

// Param is a single query parameter. Order is preserved when building URLs.
type Param struct {
	Key   string
	Value string
}

// Client is an authenticated Trello API client
type Client struct {
	host    string
	key     string
	token   string
	http    *http.Client
	limiter *rate.Limiter
	log     logging.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithRateLimit sets the sustained request rate. A value <= 0 disables
// limiting.
func WithRateLimit(perSecond float64) Option {
	return func(c *Client) {
		if perSecond <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), max(int(perSecond), 1))
	}
}

// WithLogger sets the logger
func WithLogger(l logging.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// NewClient creates a Client for host authenticated with key and token
func NewClient(host, key, token string, opts ...Option) *Client {
	c := &Client{
		host:    strings.TrimRight(host, "/"),
		key:     key,
		token:   token,
		http:    &http.Client{Timeout: DefaultTimeout},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		log:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL returns host+path with the key and token parameters followed by
// params, in that order.
//
//	c.URL("/1/boards/some-id/", Param{"lists", "open"})
//	// https://api.trello.com/1/boards/some-id/?key=some-key&token=some-token&lists=open
func (c *Client) URL(path string, params ...Param) (string, error) {
	u, err := url.Parse(c.host + path)
	if err != nil {
		return "", fmt.Errorf("invalid url %q: %w", c.host+path, err)
	}

	all := append([]Param{{"key", c.key}, {"token", c.token}}, params...)
	parts := make([]string, len(all))
	for i, p := range all {
		parts[i] = url.QueryEscape(p.Key) + "=" + url.QueryEscape(p.Value)
	}
	u.RawQuery = strings.Join(parts, "&")

	return u.String(), nil
}

// request describes one API call
type request struct {
	method      string
	path        string
	params      []Param
	form        url.Values
	body        io.Reader
	contentType string
}

// do performs req and decodes a JSON response into out when out is non-nil
func (c *Client) do(ctx context.Context, req request, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	target, err := c.URL(req.path, req.params...)
	if err != nil {
		return err
	}

	body := req.body
	contentType := req.contentType
	if req.form != nil {
		body = strings.NewReader(req.form.Encode())
		contentType = "application/x-www-form-urlencoded"
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.method, req.path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("%s %s: read response: %w", req.method, req.path, err)
	}
	c.log.Debug(ctx, "trello request",
		"method", req.method,
		"path", req.path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			Method:     req.method,
			Path:       req.path,
			StatusCode: resp.StatusCode,
			Body:       string(bytes.TrimSpace(data)),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", req.method, req.path, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any, params ...Param) error {
	return c.do(ctx, request{method: http.MethodGet, path: path, params: params}, out)
}

func (c *Client) send(ctx context.Context, method, path string, form url.Values, out any) error {
	return c.do(ctx, request{method: method, path: path, form: form}, out)
}

// segment escapes an ID for use as a path segment
func segment(id string) string {
	return url.PathEscape(id)
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
