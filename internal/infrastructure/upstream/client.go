// Package upstream is the HTTP client for the external Jobzen REST API.
//
// Authenticated calls send the caller's access token as a bearer header. A
// 401 answer triggers exactly one refresh through /auth/refresh followed by a
// single retry of the original request.
package upstream

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

	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/jobzen/dashboard/internal/api/metrics"
	"github.com/jobzen/dashboard/internal/core/domain"
	"github.com/jobzen/dashboard/internal/core/ports"
)

const (
	defaultTimeout = 60 * time.Second
	maxBodyBytes   = 1 << 20
)

// Config captures the settings of the API client.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// Transport overrides the round tripper; tests pass httptest transports.
	Transport http.RoundTripper
}

// Client talks to the Jobzen API. It is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

var _ ports.UpstreamAPI = (*Client)(nil)

// New builds a Client. A default timeout is applied when none is provided.
func New(cfg Config, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	transport := cfg.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(transport),
		},
		log: log,
	}
}

// request describes one API call. route is the path template used as the
// metrics label.
type request struct {
	method string
	path   string
	route  string
	query  url.Values
	body   any
}

func (c *Client) url(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// send performs a single HTTP round trip. payload is re-read on every call so
// a request can be replayed after a refresh.
func (c *Client) send(ctx context.Context, r request, payload []byte, bearer string) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, c.url(r.path, r.query), body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(r.route, "error").Inc()
		return nil, fmt.Errorf("send %s %s: %w", r.method, r.route, errors.Join(domain.ErrUpstream, err))
	}
	metrics.UpstreamRequestsTotal.WithLabelValues(r.route, strconv.Itoa(resp.StatusCode)).Inc()

	c.log.Debug().
		Str("method", r.method).
		Str("route", r.route).
		Int("status", resp.StatusCode).
		Msg("upstream call")

	return resp, nil
}

// do performs an unauthenticated call and decodes the answer into out.
func (c *Client) do(ctx context.Context, r request, out any) error {
	payload, err := encodeBody(r.body)
	if err != nil {
		return err
	}
	resp, err := c.send(ctx, r, payload, "")
	if err != nil {
		return err
	}
	return decodeJSON(resp, out)
}

// doAuth performs an authenticated call. On 401 it refreshes the access
// token once, hands it to ts and replays the request. A second 401 is final.
func (c *Client) doAuth(ctx context.Context, ts ports.TokenSource, r request, out any) error {
	payload, err := encodeBody(r.body)
	if err != nil {
		return err
	}

	access, refresh := ts.Tokens()
	resp, err := c.send(ctx, r, payload, access)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return decodeJSON(resp, out)
	}
	discard(resp)

	if refresh == "" {
		metrics.TokenRefreshTotal.WithLabelValues("missing").Inc()
		return fmt.Errorf("%s %s: no refresh token: %w", r.method, r.route, domain.ErrSessionExpired)
	}

	newAccess, err := c.Refresh(ctx, refresh)
	if err != nil {
		metrics.TokenRefreshTotal.WithLabelValues("failure").Inc()
		c.log.Warn().Err(err).Str("route", r.route).Msg("token refresh failed")
		return fmt.Errorf("%s %s: refresh: %w", r.method, r.route, errors.Join(domain.ErrSessionExpired, err))
	}
	metrics.TokenRefreshTotal.WithLabelValues("success").Inc()

	if err := ts.UpdateAccessToken(ctx, newAccess); err != nil {
		return fmt.Errorf("store refreshed token: %w", err)
	}

	resp, err = c.send(ctx, r, payload, newAccess)
	if err != nil {
		return err
	}
	return decodeJSON(resp, out)
}

func encodeBody(body any) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	return raw, nil
}

// decodeJSON reads the response once; non-2xx statuses become *APIError and
// an empty 2xx body leaves out untouched.
func decodeJSON(resp *http.Response, out any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseErrorResponse(resp.StatusCode, body)
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
	_ = resp.Body.Close()
}
