//
// Copyright (c) 2025-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UnifyEM/deadlink-watchdog/common/cache"
	"github.com/UnifyEM/deadlink-watchdog/common/schema"
)

// fakeAPI accepts "Bearer new" on /api/data and rejects anything else with
// 401. The refresh handler does not answer until gate is closed.
type fakeAPI struct {
	srv *httptest.Server

	rejected  atomic.Int32
	retried   atomic.Int32
	refreshes atomic.Int32

	rejectTarget int32
	gate         chan struct{}
	gateOnce     sync.Once
	refreshFail  bool
	lastRefresh  atomic.Value
}

func newFakeAPI(t *testing.T, rejectTarget int32, refreshFail bool) *fakeAPI {
	f := &fakeAPI{
		rejectTarget: rejectTarget,
		gate:         make(chan struct{}),
		refreshFail:  refreshFail,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/data", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "Bearer new" {
			f.retried.Add(1)
			_, _ = w.Write([]byte(`{"success":true,"value":42}`))
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success":false,"message":"token expired"}`))
		if f.rejected.Add(1) >= f.rejectTarget {
			f.gateOnce.Do(func() { close(f.gate) })
		}
	})
	mux.HandleFunc("POST /api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		f.refreshes.Add(1)

		var form schema.RefreshForm
		_ = json.NewDecoder(r.Body).Decode(&form)
		f.lastRefresh.Store(form.RefreshToken)

		select {
		case <-f.gate:
		case <-time.After(5 * time.Second):
		}

		if f.refreshFail {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"message":"refresh broken"}`))
			return
		}
		_, _ = w.Write([]byte(`{"accessToken":"new","refreshToken":"r2"}`))
	})

	f.srv = httptest.NewServer(mux)
	t.Cleanup(f.srv.Close)
	return f
}

type callbacks struct {
	mu        sync.Mutex
	refreshed []schema.AuthTokens
	authErrs  int
}

func (cb *callbacks) options() []Option {
	return []Option{
		WithOnTokenRefresh(func(t schema.AuthTokens) {
			cb.mu.Lock()
			defer cb.mu.Unlock()
			cb.refreshed = append(cb.refreshed, t)
		}),
		WithOnAuthError(func() {
			cb.mu.Lock()
			defer cb.mu.Unlock()
			cb.authErrs++
		}),
	}
}

func newTestClient(t *testing.T, baseURL string, access, refresh string, cb *callbacks, extra ...Option) *Client {
	t.Helper()
	opts := []Option{
		WithBaseURL(baseURL),
		WithTokenSource(TokenFuncs(
			func() string { return access },
			func() string { return refresh })),
	}
	if cb != nil {
		opts = append(opts, cb.options()...)
	}
	c, err := New(append(opts, extra...)...)
	require.NoError(t, err)
	return c
}

func concurrentGets(c *Client, n int) []error {
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var out struct {
				Value int `json:"value"`
			}
			errs[i] = c.Get(context.Background(), "/api/data", &out)
			if errs[i] == nil && out.Value != 42 {
				errs[i] = errors.New("unexpected body")
			}
		}(i)
	}
	wg.Wait()
	return errs
}

func TestConcurrentRejectionsShareOneRefresh(t *testing.T) {
	const n = 5
	api := newFakeAPI(t, n, false)
	cb := &callbacks{}
	c := newTestClient(t, api.srv.URL, "old", "r1", cb)

	for _, err := range concurrentGets(c, n) {
		assert.NoError(t, err)
	}

	assert.Equal(t, int32(1), api.refreshes.Load())
	assert.Equal(t, int32(n), api.rejected.Load())
	assert.Equal(t, int32(n), api.retried.Load(), "each request is retried exactly once")
	assert.Equal(t, "r1", api.lastRefresh.Load())
	assert.Equal(t, []schema.AuthTokens{{AccessToken: "new", RefreshToken: "r2"}}, cb.refreshed)
	assert.Zero(t, cb.authErrs)
}

func TestTwoGetsOneRefreshBothSucceed(t *testing.T) {
	api := newFakeAPI(t, 2, false)
	cb := &callbacks{}
	c := newTestClient(t, api.srv.URL, "old", "r1", cb)

	errs := concurrentGets(c, 2)
	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.Equal(t, int32(1), api.refreshes.Load())
	assert.Equal(t, int32(2), api.retried.Load())
	assert.Len(t, cb.refreshed, 1)
}

func TestRefreshFailureFailsAllWithOneSignal(t *testing.T) {
	api := newFakeAPI(t, 2, true)
	cb := &callbacks{}
	c := newTestClient(t, api.srv.URL, "old", "r1", cb)

	for _, err := range concurrentGets(c, 2) {
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAuthenticationFailed)
		assert.ErrorIs(t, err, ErrRefreshFailed)
	}

	assert.Equal(t, int32(1), api.refreshes.Load())
	assert.Zero(t, api.retried.Load())
	assert.Equal(t, 1, cb.authErrs)
	assert.Empty(t, cb.refreshed)
}

func TestMissingRefreshTokenIsAuthFailure(t *testing.T) {
	api := newFakeAPI(t, 1, false)
	cb := &callbacks{}
	c := newTestClient(t, api.srv.URL, "old", "", cb)

	err := c.Get(context.Background(), "/api/data", nil)
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
	assert.ErrorIs(t, err, ErrNoRefreshToken)
	assert.Zero(t, api.refreshes.Load())
	assert.Equal(t, 1, cb.authErrs)
}

func TestUnauthorizedWithoutTokenDoesNotRefresh(t *testing.T) {
	api := newFakeAPI(t, 1, false)
	cb := &callbacks{}
	c := newTestClient(t, api.srv.URL, "", "r1", cb)

	err := c.Get(context.Background(), "/api/data", nil)
	var he *HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusUnauthorized, he.Status)
	assert.Equal(t, "token expired", he.Message)
	assert.Zero(t, api.refreshes.Load())
	assert.Zero(t, cb.authErrs)
}

func TestRetryRejectedAgainIsHTTPError(t *testing.T) {
	var refreshes atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/data", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	mux.HandleFunc("POST /api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshes.Add(1)
		_, _ = w.Write([]byte(`{"success":true,"data":{"tokens":{"accessToken":"new","refreshToken":"r2"}}}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	cb := &callbacks{}
	c := newTestClient(t, srv.URL, "old", "r1", cb)
	err := c.Get(context.Background(), "/api/data", nil)

	assert.Equal(t, http.StatusUnauthorized, StatusCode(err))
	assert.NotErrorIs(t, err, ErrAuthenticationFailed)
	assert.Equal(t, int32(1), refreshes.Load())
	assert.Len(t, cb.refreshed, 1)
	assert.Zero(t, cb.authErrs)
}

func TestLateRejectionReusesSettledRefresh(t *testing.T) {
	var refreshes atomic.Int32
	slowArrived := make(chan struct{})
	releaseSlow := make(chan struct{})

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/slow", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "Bearer new" {
			_, _ = w.Write([]byte(`{}`))
			return
		}
		close(slowArrived)
		<-releaseSlow
		w.WriteHeader(http.StatusUnauthorized)
	})
	mux.HandleFunc("GET /api/fast", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "Bearer new" {
			_, _ = w.Write([]byte(`{}`))
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	})
	mux.HandleFunc("POST /api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshes.Add(1)
		_, _ = w.Write([]byte(`{"accessToken":"new","refreshToken":"r2"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	cb := &callbacks{}
	c := newTestClient(t, srv.URL, "old", "r1", cb)

	slowErr := make(chan error, 1)
	go func() {
		slowErr <- c.Get(context.Background(), "/api/slow", nil)
	}()
	<-slowArrived

	require.NoError(t, c.Get(context.Background(), "/api/fast", nil))
	close(releaseSlow)
	require.NoError(t, <-slowErr)

	assert.Equal(t, int32(1), refreshes.Load())
	assert.Len(t, cb.refreshed, 1)
}

// A request can read the epoch before a refresh settles and its token
// after. If the refreshed token is rejected, the settled outcome must not
// be reused.
func TestRejectedRefreshedTokenStartsNewRefresh(t *testing.T) {
	var refreshes atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		n := refreshes.Add(1)
		_, _ = fmt.Fprintf(w, `{"accessToken":"v%d","refreshToken":"r%d"}`, n, n)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	cb := &callbacks{}
	c := newTestClient(t, srv.URL, "v0", "r0", cb)
	ctx := context.Background()
	epoch := c.coord.epoch()

	tokens, err := c.awaitRefresh(ctx, epoch, "v0")
	require.NoError(t, err)
	assert.Equal(t, "v1", tokens.AccessToken)

	tokens, err = c.awaitRefresh(ctx, epoch, "v1")
	require.NoError(t, err)
	assert.Equal(t, "v2", tokens.AccessToken)
	assert.Equal(t, int32(2), refreshes.Load())

	// a stale token from the same epoch still reuses the latest outcome
	tokens, err = c.awaitRefresh(ctx, epoch, "v0")
	require.NoError(t, err)
	assert.Equal(t, "v2", tokens.AccessToken)
	assert.Equal(t, int32(2), refreshes.Load())
	assert.Len(t, cb.refreshed, 2)
	assert.Zero(t, cb.authErrs)
}

func TestServerErrorNeverRefreshes(t *testing.T) {
	var refreshes atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/boom", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"message":"database unavailable"}`))
	})
	mux.HandleFunc("GET /api/html", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html>bad gateway</html>`))
	})
	mux.HandleFunc("POST /api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshes.Add(1)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	cb := &callbacks{}
	c := newTestClient(t, srv.URL, "old", "r1", cb)

	err := c.Get(context.Background(), "/api/boom", nil)
	var he *HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, 500, he.Status)
	assert.Equal(t, "database unavailable", he.Message)
	assert.JSONEq(t, `{"success":false,"message":"database unavailable","status":500}`, string(he.Payload))
	assert.Equal(t, "HTTP 500: database unavailable", he.Error())

	err = c.Get(context.Background(), "/api/html", nil)
	require.ErrorAs(t, err, &he)
	assert.JSONEq(t, `{"message":"HTTP 502","status":502}`, string(he.Payload))
	assert.Equal(t, "HTTP 502", he.Error())

	assert.Zero(t, refreshes.Load())
	assert.Zero(t, cb.authErrs)
}

func TestHeaders(t *testing.T) {
	var mu sync.Mutex
	var auth, contentType []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		auth = append(auth, r.Header.Get("Authorization"))
		contentType = append(contentType, r.Header.Get("Content-Type"))
	}))
	defer srv.Close()

	anon := newTestClient(t, srv.URL, "", "", nil)
	require.NoError(t, anon.Get(context.Background(), "/api/health", nil))

	authed := newTestClient(t, srv.URL, "abc", "", nil)
	require.NoError(t, authed.Post(context.Background(), "/api/websites", map[string]string{"name": "x"}, nil))

	assert.Equal(t, []string{"", "Bearer abc"}, auth)
	assert.Equal(t, []string{"application/json", "application/json"}, contentType)
}

func TestCancelledWaiterDoesNotCancelRefresh(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/data", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	mux.HandleFunc("POST /api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		<-release
		_, _ = w.Write([]byte(`{"accessToken":"new","refreshToken":"r2"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	refreshed := make(chan schema.AuthTokens, 1)
	c, err := New(
		WithBaseURL(srv.URL),
		WithTokenSource(TokenFuncs(func() string { return "old" }, func() string { return "r1" })),
		WithOnTokenRefresh(func(t schema.AuthTokens) { refreshed <- t }))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan error, 1)
	go func() { result <- c.Get(ctx, "/api/data", nil) }()

	<-entered
	cancel()
	assert.ErrorIs(t, <-result, context.Canceled)

	close(release)
	select {
	case tokens := <-refreshed:
		assert.Equal(t, "new", tokens.AccessToken)
	case <-time.After(5 * time.Second):
		t.Fatal("refresh did not complete after the waiter was cancelled")
	}
}

func TestGetCached(t *testing.T) {
	var hits atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/crawls", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`{"success":true,"page":"` + r.URL.Query().Get("page") + `"}`))
	})
	mux.HandleFunc("POST /api/crawls/{id}/retry", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(t, srv.URL, "abc", "", nil, WithCache(cache.New(60)))

	query := map[string][]string{"page": {"2"}, "status": {""}}
	var out struct {
		Page string `json:"page"`
	}
	for i := 0; i < 3; i++ {
		require.NoError(t, c.GetCached(context.Background(), "/api/crawls", query, time.Minute, &out))
	}
	assert.Equal(t, "2", out.Page)
	assert.Equal(t, int32(1), hits.Load())

	require.NoError(t, c.Post(context.Background(), "/api/crawls/c1/retry", nil, nil))
	require.NoError(t, c.GetCached(context.Background(), "/api/crawls", query, time.Minute, &out))
	assert.Equal(t, int32(2), hits.Load())
}

func TestSharedDiskCacheSeparatesServers(t *testing.T) {
	server := func(name string) *httptest.Server {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"server":"` + name + `"}`))
		}))
		t.Cleanup(srv.Close)
		return srv
	}
	a, b := server("A"), server("B")

	dir := t.TempDir()
	get := func(baseURL string) string {
		dc, err := cache.NewDisk(dir, 60)
		require.NoError(t, err)
		c := newTestClient(t, baseURL, "abc", "", nil, WithCache(dc))
		var out struct {
			Server string `json:"server"`
		}
		require.NoError(t, c.GetCached(context.Background(), schema.EndpointMe, nil, time.Minute, &out))
		return out.Server
	}

	assert.Equal(t, "A", get(a.URL))
	assert.Equal(t, "B", get(b.URL))
	assert.Equal(t, "A", get(a.URL))
}

func TestParseTokens(t *testing.T) {
	for _, body := range []string{
		`{"accessToken":"a","refreshToken":"r"}`,
		`{"success":true,"data":{"tokens":{"accessToken":"a","refreshToken":"r"}}}`,
		`{"success":true,"data":{"accessToken":"a","refreshToken":"r"}}`,
	} {
		assert.Equal(t, schema.AuthTokens{AccessToken: "a", RefreshToken: "r"}, parseTokens([]byte(body)), body)
	}
	assert.Equal(t, schema.AuthTokens{}, parseTokens([]byte(`{"success":true}`)))
}

func TestOptions(t *testing.T) {
	_, err := New(WithBaseURL(""))
	assert.Error(t, err)
	_, err = New(WithBaseURL("localhost:3001"))
	assert.Error(t, err)
	_, err = New(WithTokenSource(nil))
	assert.Error(t, err)
	_, err = New(WithRefreshPath("auth/refresh"))
	assert.Error(t, err)
	_, err = New(WithRefreshTimeout(0))
	assert.Error(t, err)

	c, err := New(WithBaseURL("https://api.example.com/"))
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", c.BaseURL())
}
