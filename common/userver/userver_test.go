//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package userver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UnifyEM/deadlink-watchdog/common/null"
)

func newTestServer(t *testing.T, options ...func(*HServer) error) *httptest.Server {
	options = append(options, WithLogger(null.Logger()), WithHealthHandler(true, "/api/health"))
	s, err := New(options...)
	require.NoError(t, err)

	s.AddRoutes(Routes{
		{
			Name:    "echo",
			Methods: []string{http.MethodGet},
			Pattern: "/api/echo/{id}",
			JHandler: func(req *http.Request) JResponse {
				return JResponse{
					HTTPCode: http.StatusOK,
					JSONData: Response{Success: true, Message: GetParam(req, "id")},
					Cookies:  []*http.Cookie{{Name: "seen", Value: "yes", Path: "/"}},
				}
			},
		},
		{
			Name:    "private",
			Methods: []string{http.MethodGet},
			Pattern: "/api/private",
			AuthFunc: func(req *http.Request) (bool, []byte, any) {
				if req.Header.Get("Authorization") != "Bearer ok" {
					return false, []byte(`{"success":false,"message":"Access token required"}`), nil
				}
				return true, nil, "U-1"
			},
			JHandler: func(req *http.Request) JResponse {
				return JResponse{HTTPCode: http.StatusOK, JSONData: Response{Success: true, Message: AuthDetails(req).(string)}}
			},
		},
		{
			Name:     "login",
			Methods:  []string{http.MethodPost},
			Pattern:  "/api/login",
			Limited:  true,
			JHandler: func(_ *http.Request) JResponse { return JResponse{HTTPCode: http.StatusNoContent} },
		},
	})

	h, err := s.Handler()
	require.NoError(t, err)
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func decodeResponse(t *testing.T, resp *http.Response) Response {
	t.Helper()
	defer resp.Body.Close()
	var r Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&r))
	return r
}

func TestRoutes(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/echo/W-1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "no-cache", resp.Header.Get("Pragma"))
	if assert.Len(t, resp.Cookies(), 1) {
		assert.Equal(t, "seen", resp.Cookies()[0].Name)
	}
	assert.Equal(t, "W-1", decodeResponse(t, resp).Message)

	resp, err = http.Get(srv.URL + "/api/health")
	require.NoError(t, err)
	assert.True(t, decodeResponse(t, resp).Success)

	resp, err = http.Get(srv.URL + "/api/missing")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, http.StatusNotFound, decodeResponse(t, resp).Status)

	resp, err = http.Post(srv.URL+"/api/echo/W-1", "application/json", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestAuthFunc(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/private")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Access token required", decodeResponse(t, resp).Message)

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/private", nil)
	req.Header.Set("Authorization", "Bearer ok")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "U-1", decodeResponse(t, resp).Message)
}

func TestRateLimit(t *testing.T) {
	srv := newTestServer(t, WithRateLimit(2, time.Minute))

	for range 2 {
		resp, err := http.Post(srv.URL+"/api/login", "application/json", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		_ = resp.Body.Close()
	}

	resp, err := http.Post(srv.URL+"/api/login", "application/json", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("Retry-After"))
	_ = resp.Body.Close()

	// Unlimited routes are unaffected
	resp, err = http.Get(srv.URL + "/api/echo/x")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestRemoteIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "[::1]:5555"
	assert.Equal(t, "::1", RemoteIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	assert.Equal(t, "203.0.113.9", RemoteIP(req))
}

func TestQueryHelpers(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?page=3&limit=x&isFixed=true", nil)
	assert.Equal(t, 3, QueryInt(req, "page", 1, 1))
	assert.Equal(t, 10, QueryInt(req, "limit", 10, 1))
	assert.True(t, *QueryBool(req, "isFixed"))
	assert.Nil(t, QueryBool(req, "isActive"))
}

func TestRateLimitOption(t *testing.T) {
	_, err := New(WithRateLimit(5, 0))
	assert.Error(t, err)
}
