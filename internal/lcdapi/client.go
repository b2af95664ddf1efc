package lcdapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
)

// statusEnvelope is the response shape shared by all service endpoints.
type statusEnvelope struct {
	Status string `json:"status"`
	Result string `json:"result"`
}

// Client talks to the LCD render service. Every request body carries
// the auth token, read from the token source at send time.
type Client struct {
	baseURL string
	tokens  oauth2.TokenSource
	http    *http.Client
	logging bool
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

func WithLogging(enabled bool) Option {
	return func(c *Client) {
		c.logging = enabled
	}
}

// StaticTokens wraps a fixed token, or returns nil for an empty one so
// requests carry no token field at all.
func StaticTokens(token string) oauth2.TokenSource {
	if token == "" {
		return nil
	}
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
}

func New(baseURL string, tokens oauth2.TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		http:    &http.Client{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logging {
		// Wrap a copy so an injected client is left untouched.
		hc := *c.http
		hc.Transport = NewLoggingTransport(hc.Transport)
		c.http = &hc
	}

	return c
}

// do sends one request and decodes the JSON response into out when out
// is non-nil. A blank method means GET. The body map is copied before
// the token is merged in, so callers keep ownership of their maps.
// Each call maps to at most one underlying request; there is no retry.
func (c *Client) do(ctx context.Context, method, path string, body map[string]any, out any) error {
	if c.baseURL == "" {
		return ErrNoBaseURL
	}
	if method == "" {
		method = http.MethodGet
	}

	payload := make(map[string]any, len(body)+1)
	for k, v := range body {
		payload[k] = v
	}
	if c.tokens != nil {
		token, err := c.tokens.Token()
		if err != nil {
			return fmt.Errorf("failed to read auth token: %w", err)
		}
		payload["token"] = token.AccessToken
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}

// checkStatus maps the service's status field onto sentinel errors. A
// blank status is fine, endpoints without an envelope return {}.
func checkStatus(env *statusEnvelope) error {
	switch env.Status {
	case "ok", "":
		return nil
	case "cancel":
		return ErrSaveCanceled
	default:
		return ErrServerRejected
	}
}

// Init performs the auth handshake. The response body carries no data
// the client needs, reachability and the status code are the result.
func (c *Client) Init(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/init", nil, nil)
}

// RenderLCD submits the display rows and returns the rendered SVG
// markup verbatim.
func (c *Client) RenderLCD(ctx context.Context, lines []string) (string, error) {
	if lines == nil {
		lines = []string{}
	}

	var env statusEnvelope
	err := c.do(ctx, http.MethodPost, "/refresh/lcd", map[string]any{"input-data": lines}, &env)
	if err != nil {
		return "", err
	}
	if err := checkStatus(&env); err != nil {
		return "", err
	}
	return env.Result, nil
}

// SaveScreenshot hands the SVG markup to the service for persisting.
// The service may answer "cancel" when its file dialog is dismissed,
// which comes back as ErrSaveCanceled.
func (c *Client) SaveScreenshot(ctx context.Context, svg string) error {
	var env statusEnvelope
	if err := c.do(ctx, http.MethodPost, "/save/screenshot", map[string]any{"svg-data": svg}, &env); err != nil {
		return err
	}
	return checkStatus(&env)
}
