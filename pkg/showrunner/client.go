// Package showrunner is the entry point for talking to the showrunner backend.
package showrunner

import (
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/showrunner-hq/showrunner-client/pkg/conferences"
	"github.com/showrunner-hq/showrunner-client/pkg/httpclient"
	"github.com/showrunner-hq/showrunner-client/pkg/transport"
)

// DefaultEnvironment is the deployment targeted when none is given.
const DefaultEnvironment = "prod"

// Option re-exports transport options so callers need a single import.
type Option = transport.Option

var (
	WithToken      = transport.WithToken
	WithBaseURL    = transport.WithBaseURL
	WithHTTPClient = transport.WithHTTPClient
	WithLogger     = transport.WithLogger
)

// WithRestyClient sends requests through c, keeping its retries, proxies and
// default headers. The Authorization and Content-Type headers are still set per call.
func WithRestyClient(c *resty.Client) Option {
	return transport.WithHTTPClient(httpclient.NewRestyClientFrom(c))
}

// Client groups every backend service behind one transport.
type Client struct {
	Conferences *conferences.ServiceClient

	base *transport.BaseClient
}

// New builds a client for environment. An empty environment means DefaultEnvironment.
func New(environment string, opts ...Option) *Client {
	if environment == "" {
		environment = DefaultEnvironment
	}
	base := transport.NewBaseClient(environment, opts...)
	return &Client{
		Conferences: conferences.NewServiceClient(base),
		base:        base,
	}
}

// BaseURL returns the URL every RPC name is appended to.
func (c *Client) BaseURL() string { return c.base.BaseURL() }

var (
	defaultOnce   sync.Once
	defaultClient *Client
)

// Default returns a shared client for DefaultEnvironment without a token.
func Default() *Client {
	defaultOnce.Do(func() {
		defaultClient = New(DefaultEnvironment)
	})
	return defaultClient
}
