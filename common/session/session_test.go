//
// Copyright (c) 2025-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/UnifyEM/deadlink-watchdog/common/apiclient"
	"github.com/UnifyEM/deadlink-watchdog/common/null"
	"github.com/UnifyEM/deadlink-watchdog/common/schema"
)

var alice = schema.User{ID: "U-1", Email: "alice@example.com", FirstName: "Alice", LastName: "Smith", Role: schema.RoleUser}

func TestSessionLifecycle(t *testing.T) {
	s, err := New(NewMemoryStore(), nil)
	require.NoError(t, err)
	assert.False(t, s.IsAuthenticated())

	// Refreshed tokens without a user are ignored
	s.Refreshed(schema.AuthTokens{AccessToken: "a0", RefreshToken: "r0"})
	assert.Equal(t, "", s.GetAccessToken())

	require.NoError(t, s.Login(alice, schema.AuthTokens{AccessToken: "a1", RefreshToken: "r1"}))
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "Alice Smith", s.User().FullName())

	s.Refreshed(schema.AuthTokens{AccessToken: "a2", RefreshToken: "r2"})
	assert.Equal(t, "a2", s.GetAccessToken())
	assert.Equal(t, "r2", s.GetRefreshToken())

	updated := alice
	updated.FirstName = "Ally"
	require.NoError(t, s.UpdateUser(updated))
	assert.Equal(t, "Ally", s.User().FirstName)
	assert.Equal(t, "a2", s.GetAccessToken())

	s.AuthError()
	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.User())
	assert.ErrorIs(t, s.UpdateUser(alice), ErrNoSession)
}

func TestNilStore(t *testing.T) {
	_, err := New(nil, nil)
	assert.Error(t, err)
}

func TestBoltStorePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")

	store, err := NewBoltStore(path, null.Logger())
	require.NoError(t, err)
	s, err := New(store, null.Logger())
	require.NoError(t, err)
	require.NoError(t, s.Login(alice, schema.AuthTokens{AccessToken: "a1", RefreshToken: "r1"}))
	store.Close()

	store, err = NewBoltStore(path, null.Logger())
	require.NoError(t, err)
	defer store.Close()
	s, err = New(store, null.Logger())
	require.NoError(t, err)
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "r1", s.GetRefreshToken())

	require.NoError(t, s.Logout())
	_, err = store.Load()
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestCookieStore(t *testing.T) {
	var seen atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie(schema.CookieAccessToken)
		if err == nil {
			seen.Store(c.Value)
		}
	}))
	defer srv.Close()

	store, err := NewCookieStore(srv.URL)
	require.NoError(t, err)
	s, err := New(store, nil)
	require.NoError(t, err)

	require.NoError(t, s.Login(alice, schema.AuthTokens{AccessToken: "a1", RefreshToken: "r1"}))
	assert.Equal(t, "a1", store.GetAccessToken())
	assert.Equal(t, "r1", s.GetRefreshToken())

	hc := &http.Client{Jar: store.Jar()}
	resp, err := hc.Get(srv.URL + "/api/auth/me")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, "a1", seen.Load())

	require.NoError(t, s.Logout())
	assert.Equal(t, "", store.GetAccessToken())
	assert.Equal(t, "", store.GetRefreshToken())
}

func TestCookieAttributes(t *testing.T) {
	plain, err := NewCookieStore("http://localhost:3001")
	require.NoError(t, err)
	c := plain.newCookie(schema.CookieAccessToken, "a", schema.CookieAccessMaxAge)
	assert.False(t, c.Secure)
	assert.Equal(t, "/", c.Path)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
	assert.Equal(t, 86400, c.MaxAge)

	tls, err := NewCookieStore("https://api.example.com", WithMaxAge(60, 120))
	require.NoError(t, err)
	c = tls.newCookie(schema.CookieRefreshToken, "r", tls.refreshMaxAge)
	assert.True(t, c.Secure)
	assert.Equal(t, 120, c.MaxAge)
	assert.Equal(t, -1, tls.newCookie(schema.CookieRefreshToken, "", 120).MaxAge)

	require.NoError(t, tls.Save(State{AccessToken: "a", RefreshToken: "r"}))
	u, _ := url.Parse("https://api.example.com/api/websites")
	assert.Len(t, tls.Jar().Cookies(u), 2)

	_, err = NewCookieStore("not a url")
	assert.Error(t, err)
}

func TestCookieStoreRestoresFromPersistence(t *testing.T) {
	backing := NewMemoryStore()
	require.NoError(t, backing.Save(State{User: &alice, AccessToken: "a1", RefreshToken: "r1"}))

	store, err := NewCookieStore("http://127.0.0.1:3001", WithPersistence(backing))
	require.NoError(t, err)
	s, err := New(store, nil)
	require.NoError(t, err)
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "a1", s.GetAccessToken())

	require.NoError(t, s.Logout())
	_, err = backing.Load()
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestCookieStoreKeepsLifetimeAcrossRestarts(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC))
	backing := NewMemoryStore()
	open := func() *CookieStore {
		store, err := NewCookieStore("http://127.0.0.1:3001",
			WithMaxAge(60, 3600), WithPersistence(backing), WithClock(clock))
		require.NoError(t, err)
		return store
	}

	first := open()
	require.NoError(t, first.Save(State{User: &alice, AccessToken: "A", RefreshToken: "R"}))
	saved, err := backing.Load()
	require.NoError(t, err)
	assert.Equal(t, clock.Now().Add(time.Minute), saved.AccessExpires)
	assert.Equal(t, clock.Now().Add(time.Hour), saved.RefreshExpires)

	// saving the same tokens again does not extend them
	clock.Advance(30 * time.Second)
	bob := alice
	bob.FirstName = "Bob"
	require.NoError(t, first.Save(State{User: &bob, AccessToken: "A", RefreshToken: "R"}))
	saved, err = backing.Load()
	require.NoError(t, err)
	assert.Equal(t, clock.Now().Add(30*time.Second), saved.AccessExpires)

	clock.Advance(2 * time.Minute)
	second := open()
	assert.Equal(t, "", second.GetAccessToken())
	assert.Equal(t, "R", second.GetRefreshToken())

	clock.Advance(time.Hour)
	third := open()
	assert.Equal(t, "", third.GetAccessToken())
	assert.Equal(t, "", third.GetRefreshToken())
}

func TestOAuth2Adapters(t *testing.T) {
	ts := FromOAuth2(oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "a", RefreshToken: "r"}))
	assert.Equal(t, "a", ts.GetAccessToken())
	assert.Equal(t, "r", ts.GetRefreshToken())

	s, err := New(NewMemoryStore(), nil)
	require.NoError(t, err)
	_, err = s.Token()
	assert.Error(t, err)

	require.NoError(t, s.Login(alice, schema.AuthTokens{AccessToken: "a1", RefreshToken: "r1"}))
	tok, err := s.Token()
	require.NoError(t, err)
	assert.Equal(t, "Bearer", tok.TokenType)
	assert.Equal(t, "a1", tok.AccessToken)
}

// The session is the token source and callback target of the API client
func TestSessionDrivesClientRefresh(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer a2" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"success":true,"data":{"user":{"id":"U-1","email":"alice@example.com"}}}`))
	})
	mux.HandleFunc("POST /api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"accessToken":"a2","refreshToken":"r2"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	s, err := New(NewMemoryStore(), nil)
	require.NoError(t, err)
	require.NoError(t, s.Login(alice, schema.AuthTokens{AccessToken: "a1", RefreshToken: "r1"}))

	c, err := apiclient.New(
		apiclient.WithBaseURL(srv.URL),
		apiclient.WithTokenSource(s),
		apiclient.WithOnTokenRefresh(s.Refreshed),
		apiclient.WithOnAuthError(s.AuthError))
	require.NoError(t, err)

	var resp schema.UserResponse
	require.NoError(t, c.Get(context.Background(), schema.EndpointMe, &resp))
	assert.Equal(t, "alice@example.com", resp.Data.User.Email)
	assert.Equal(t, "a2", s.GetAccessToken())
	assert.Equal(t, "r2", s.GetRefreshToken())
}
