/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package apiclient issues authenticated JSON requests against the Deadlink
// Watchdog API. When a request carrying an access token is rejected with
// 401, the client exchanges the refresh token for a new pair and retries the
// request once. Concurrent rejections share a single refresh.
package apiclient

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/UnifyEM/deadlink-watchdog/common/interfaces"
	"github.com/UnifyEM/deadlink-watchdog/common/null"
	"github.com/UnifyEM/deadlink-watchdog/common/schema"
)

const (
	DefaultBaseURL        = "http://localhost:3001"
	DefaultRefreshPath    = schema.EndpointRefresh
	DefaultRefreshTimeout = 30 * time.Second
)

// Ensure Client implements the Requester interface
var _ interfaces.Requester = (*Client)(nil)

type Client struct {
	baseURL        string
	refreshPath    string
	refreshTimeout time.Duration
	timeout        time.Duration
	httpClient     *http.Client
	jar            http.CookieJar
	tokens         interfaces.TokenSource
	onTokenRefresh func(schema.AuthTokens)
	onAuthError    func()
	logger         interfaces.Logger
	cache          interfaces.Cache
	coord          coordinator
}

// Option is a function that configures a Client
type Option func(*Client) error

// New returns a Client. Without WithTokenSource every request is anonymous.
func New(options ...Option) (*Client, error) {
	c := &Client{
		baseURL:        DefaultBaseURL,
		refreshPath:    DefaultRefreshPath,
		refreshTimeout: DefaultRefreshTimeout,
		tokens:         TokenFuncs(nil, nil),
		logger:         null.Logger(),
	}

	for _, option := range options {
		if err := option(c); err != nil {
			return nil, err
		}
	}

	// Copy the HTTP client so that per-client settings never leak into a shared one
	hc := &http.Client{}
	if c.httpClient != nil {
		copied := *c.httpClient
		hc = &copied
	}
	if c.jar != nil {
		hc.Jar = c.jar
	}
	if c.timeout > 0 {
		hc.Timeout = c.timeout
	}
	c.httpClient = hc

	return c, nil
}

// BaseURL returns the configured API base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ClearCache drops every cached response, if a cache is configured
func (c *Client) ClearCache() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

func WithBaseURL(baseURL string) Option {
	return func(c *Client) error {
		baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
		if baseURL == "" {
			return errors.New("base URL is empty")
		}
		if !schema.ValidWebURL(baseURL) {
			return errors.New("base URL must be an http or https URL")
		}
		c.baseURL = baseURL
		return nil
	}
}

// WithTokenSource supplies the access and refresh tokens. The client only
// reads them; new tokens are handed back through WithOnTokenRefresh.
func WithTokenSource(tokens interfaces.TokenSource) Option {
	return func(c *Client) error {
		if tokens == nil {
			return errors.New("token source is nil")
		}
		c.tokens = tokens
		return nil
	}
}

// WithOnTokenRefresh is called once per successful refresh with the new pair
func WithOnTokenRefresh(f func(schema.AuthTokens)) Option {
	return func(c *Client) error {
		if f == nil {
			return errors.New("token refresh callback is nil")
		}
		c.onTokenRefresh = f
		return nil
	}
}

// WithOnAuthError is called once per failed refresh. Hosts use it to drop the session.
func WithOnAuthError(f func()) Option {
	return func(c *Client) error {
		if f == nil {
			return errors.New("auth error callback is nil")
		}
		c.onAuthError = f
		return nil
	}
}

func WithLogger(logger interfaces.Logger) Option {
	return func(c *Client) error {
		if logger == nil {
			return errors.New("logger is nil")
		}
		c.logger = logger
		return nil
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return errors.New("http client is nil")
		}
		c.httpClient = hc
		return nil
	}
}

// WithCookieJar lets the server maintain the token cookies
func WithCookieJar(jar http.CookieJar) Option {
	return func(c *Client) error {
		if jar == nil {
			return errors.New("cookie jar is nil")
		}
		c.jar = jar
		return nil
	}
}

func WithRefreshPath(path string) Option {
	return func(c *Client) error {
		if !strings.HasPrefix(path, "/") {
			return errors.New("refresh path must start with /")
		}
		c.refreshPath = path
		return nil
	}
}

// WithRefreshTimeout bounds the refresh call. The refresh is not cancelled
// when the request that started it is.
func WithRefreshTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return errors.New("refresh timeout must be positive")
		}
		c.refreshTimeout = d
		return nil
	}
}

// WithTimeout bounds every individual HTTP exchange
func WithTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d < 0 {
			return errors.New("timeout is negative")
		}
		c.timeout = d
		return nil
	}
}

// WithCache enables GetCached. Successful mutations and auth failures clear it.
func WithCache(cache interfaces.Cache) Option {
	return func(c *Client) error {
		if cache == nil {
			return errors.New("cache is nil")
		}
		c.cache = cache
		return nil
	}
}
