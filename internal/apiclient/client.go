// Package apiclient talks to the KarirKit REST API.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"karirkit/internal/config"
	"karirkit/internal/model"
)

const maxErrorBody = 1 << 20

type tokenKey struct{}

// WithToken stores the caller's bearer token in ctx. Requests made with the
// returned context are authenticated as that caller.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFrom returns the bearer token stored by WithToken, if any.
func TokenFrom(ctx context.Context) string {
	s, _ := ctx.Value(tokenKey{}).(string)
	return s
}

// Client is a thin JSON client for the KarirKit API. It is safe for concurrent use.
type Client struct {
	baseURL  string
	http     *http.Client
	duration *prometheus.HistogramVec
}

// New creates a Client whose transport is traced with OpenTelemetry.
// reg may be nil to skip metrics registration.
func New(cfg config.APIConfig, reg prometheus.Registerer) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("api base url is required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}

	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "karirkit_api_request_duration_seconds",
				Help:    "Latency of calls to the KarirKit API.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"resource", "method", "status"},
		),
	}
	if reg != nil {
		if err := reg.Register(c.duration); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Ping checks that the API answers at all. Any status below 500 counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("api unhealthy: status %d", resp.StatusCode)
	}
	return nil
}

// doJSON sends an optional JSON body and decodes a JSON answer into out (if non-nil).
func (c *Client) doJSON(ctx context.Context, resource, method, path string, query url.Values, body, out any) error {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := c.newRequest(ctx, method, path, query, rdr)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, resource, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if tok := TokenFrom(ctx); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	return req, nil
}

func (c *Client) send(req *http.Request, resource string, out any) error {
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.observe(resource, req.Method, "error", start)
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()
	c.observe(resource, req.Method, strconv.Itoa(resp.StatusCode), start)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return decodeError(resp.StatusCode, b)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyResponse
		}
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) observe(resource, method, status string, start time.Time) {
	c.duration.WithLabelValues(resource, method, status).Observe(time.Since(start).Seconds())
}

// LoginResult is the answer of POST /auth/login.
type LoginResult struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, identifier, password string) (*LoginResult, error) {
	var out LoginResult
	body := map[string]string{"identifier": identifier, "password": password}
	if err := c.doJSON(ctx, "auth", http.MethodPost, "/auth/login", nil, body, &out); err != nil {
		return nil, err
	}
	if out.Token == "" {
		return nil, ErrEmptyResponse
	}
	return &out, nil
}

// Logout revokes the token carried by ctx.
func (c *Client) Logout(ctx context.Context) error {
	return c.doJSON(ctx, "auth", http.MethodPost, "/auth/logout", nil, nil, nil)
}

// Me returns the user the token in ctx belongs to.
func (c *Client) Me(ctx context.Context) (*model.User, error) {
	var u model.User
	if err := c.doJSON(ctx, "auth", http.MethodGet, "/auth/me", nil, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
