package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/showrunner-hq/showrunner-client/pkg/httpclient"
)

var emptyObject = []byte("{}")

// BaseClient performs RPC calls against a single backend deployment.
// It is safe for concurrent use; its fields are never mutated after construction.
type BaseClient struct {
	baseURL string
	headers map[string]string
	client  httpclient.Client
	log     Logger
}

type settings struct {
	token   string
	baseURL string
	client  httpclient.Client
	log     Logger
}

// Option customises a BaseClient.
type Option func(*settings)

// WithToken attaches "Authorization: Bearer <token>" to every request.
// An empty token leaves the header off.
func WithToken(token string) Option {
	return func(s *settings) { s.token = token }
}

// WithBaseURL bypasses environment resolution and targets url directly.
func WithBaseURL(url string) Option {
	return func(s *settings) { s.baseURL = url }
}

// WithHTTPClient replaces the default resty-backed HTTP client.
func WithHTTPClient(c httpclient.Client) Option {
	return func(s *settings) { s.client = c }
}

// WithLogger routes per-call diagnostics to log.
func WithLogger(log Logger) Option {
	return func(s *settings) { s.log = log }
}

// NewBaseClient builds a BaseClient for the given deployment environment.
func NewBaseClient(environment string, opts ...Option) *BaseClient {
	var s settings
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}

	baseURL := ResolveBaseURL(environment)
	if u := strings.TrimSpace(s.baseURL); u != "" {
		baseURL = u
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
	}

	headers := map[string]string{"Content-Type": "application/json"}
	if s.token != "" {
		headers["Authorization"] = "Bearer " + s.token
	}

	client := s.client
	if client == nil {
		client = httpclient.NewRestyClient(0)
	}

	return &BaseClient{
		baseURL: baseURL,
		headers: headers,
		client:  client,
		log:     loggerOrNop(s.log),
	}
}

// BaseURL returns the resolved base URL, including the trailing slash.
func (c *BaseClient) BaseURL() string { return c.baseURL }

// Do calls rpc with params and decodes the JSON response into out.
// A nil params value is sent as an empty JSON object.
func (c *BaseClient) Do(ctx context.Context, rpc string, params, out any) error {
	body, err := c.call(ctx, rpc, params)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s response: %w", rpc, err)
	}
	return nil
}

// DoVoid calls rpc with params and discards the response body on success.
func (c *BaseClient) DoVoid(ctx context.Context, rpc string, params any) error {
	_, err := c.call(ctx, rpc, params)
	return err
}

func (c *BaseClient) call(ctx context.Context, rpc string, params any) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	payload, err := encodeParams(params)
	if err != nil {
		return nil, fmt.Errorf("encode %s params: %w", rpc, err)
	}

	start := time.Now()
	resp, err := c.client.Post(ctx, c.baseURL+rpc, c.requestHeaders(), payload)
	if err != nil {
		c.log.ErrorObj("rpc transport failed", "rpc_error", map[string]any{
			"rpc":   rpc,
			"error": err.Error(),
		})
		return nil, fmt.Errorf("post %s: %w", rpc, err)
	}

	status := resp.StatusCode()
	c.log.DebugObj("rpc completed", "rpc_result", map[string]any{
		"rpc":        rpc,
		"status":     status,
		"elapsed_ms": time.Since(start).Milliseconds(),
	})

	if status < 200 || status > 299 {
		reqErr := &RequestFailedError{StatusCode: status, Body: string(resp.Body())}
		c.log.WarnObj("rpc returned non-success status", "rpc_failure", map[string]any{
			"rpc":    rpc,
			"status": status,
			"body":   snippet(resp.Body()),
		})
		return nil, reqErr
	}
	return resp.Body(), nil
}

// requestHeaders returns a private copy of the fixed header set.
func (c *BaseClient) requestHeaders() map[string]string {
	out := make(map[string]string, len(c.headers))
	for k, v := range c.headers {
		out[k] = v
	}
	return out
}

func encodeParams(params any) ([]byte, error) {
	if params == nil {
		return emptyObject, nil
	}
	raw, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}
	if bytes.Equal(raw, []byte("null")) {
		return emptyObject, nil
	}
	return raw, nil
}

func snippet(body []byte) string {
	const maxLen = 512
	s := strings.TrimSpace(string(body))
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	return s
}
