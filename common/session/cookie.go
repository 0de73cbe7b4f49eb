/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package session

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/net/publicsuffix"

	"github.com/UnifyEM/deadlink-watchdog/common/interfaces"
	"github.com/UnifyEM/deadlink-watchdog/common/schema"
)

// Ensure CookieStore implements the TokenSource interface
var _ interfaces.TokenSource = (*CookieStore)(nil)

// CookieStore keeps the tokens as cookies scoped to the API base URL, the
// way the browser dashboard does. The jar it holds should be handed to the
// API client so that cookies set by the server are seen here as well.
type CookieStore struct {
	mu            sync.Mutex
	jar           http.CookieJar
	base          *url.URL
	secure        bool
	accessMaxAge  int
	refreshMaxAge int
	user          *schema.User
	persist       Store
	clock         clockwork.Clock

	// last saved tokens and when their cookies expire
	access         string
	refresh        string
	accessExpires  time.Time
	refreshExpires time.Time
}

// CookieOption configures a CookieStore
type CookieOption func(*CookieStore) error

// WithJar supplies an existing jar instead of a new public suffix aware one
func WithJar(jar http.CookieJar) CookieOption {
	return func(s *CookieStore) error {
		if jar == nil {
			return errors.New("cookie jar is nil")
		}
		s.jar = jar
		return nil
	}
}

// WithMaxAge overrides the cookie lifetimes in seconds
func WithMaxAge(access, refresh int) CookieOption {
	return func(s *CookieStore) error {
		if access <= 0 || refresh <= 0 {
			return errors.New("cookie max age must be positive")
		}
		s.accessMaxAge = access
		s.refreshMaxAge = refresh
		return nil
	}
}

// WithPersistence mirrors every change to another store and restores the
// cookies from it when the CookieStore is created
func WithPersistence(store Store) CookieOption {
	return func(s *CookieStore) error {
		if store == nil {
			return errors.New("persistence store is nil")
		}
		s.persist = store
		return nil
	}
}

// WithClock replaces the clock used to track cookie expiry
func WithClock(clock clockwork.Clock) CookieOption {
	return func(s *CookieStore) error {
		if clock == nil {
			return errors.New("clock is nil")
		}
		s.clock = clock
		return nil
	}
}

// NewCookieStore returns a store for baseURL. With persistence, cookies
// are restored with whatever lifetime they had left when they were saved.
func NewCookieStore(baseURL string, options ...CookieOption) (*CookieStore, error) {
	base, err := url.Parse(baseURL)
	if err != nil || base.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q", baseURL)
	}

	s := &CookieStore{
		base:          base,
		secure:        base.Scheme == "https",
		accessMaxAge:  schema.CookieAccessMaxAge,
		refreshMaxAge: schema.CookieRefreshMaxAge,
		clock:         clockwork.NewRealClock(),
	}
	for _, option := range options {
		if err = option(s); err != nil {
			return nil, err
		}
	}

	if s.jar == nil {
		if s.jar, err = cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List}); err != nil {
			return nil, fmt.Errorf("error creating cookie jar: %w", err)
		}
	}

	if s.persist != nil {
		state, err := s.persist.Load()
		switch {
		case errors.Is(err, ErrNoSession):
		case err != nil:
			return nil, fmt.Errorf("error loading session: %w", err)
		default:
			s.user = state.User
			s.access, s.accessExpires = state.AccessToken, state.AccessExpires
			s.refresh, s.refreshExpires = state.RefreshToken, state.RefreshExpires

			// saved by a store that does not track expiry
			if s.access != "" && s.accessExpires.IsZero() {
				s.accessExpires = s.expiry(s.accessMaxAge)
			}
			if s.refresh != "" && s.refreshExpires.IsZero() {
				s.refreshExpires = s.expiry(s.refreshMaxAge)
			}
			s.setCookies()
		}
	}
	return s, nil
}

// Jar returns the jar holding the token cookies
func (s *CookieStore) Jar() http.CookieJar {
	return s.jar
}

// newCookie builds a token cookie. Secure is only set for https base URLs
// because a jar never returns secure cookies for plain http.
func (s *CookieStore) newCookie(name, value string, maxAge int) *http.Cookie {
	if value == "" {
		maxAge = -1
	}
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   s.secure,
		SameSite: http.SameSiteStrictMode,
	}
}

func (s *CookieStore) expiry(maxAge int) time.Time {
	return s.clock.Now().Add(time.Duration(maxAge) * time.Second)
}

// stamp returns the expiry for value. It only moves when the token changes.
func (s *CookieStore) stamp(value, prev string, expires time.Time, maxAge int) time.Time {
	switch {
	case value == "":
		return time.Time{}
	case value == prev && !expires.IsZero():
		return expires
	default:
		return s.expiry(maxAge)
	}
}

// remaining returns the whole seconds left before expires, or -1 once
// the cookie should be gone
func (s *CookieStore) remaining(value string, expires time.Time) (string, int) {
	if value == "" {
		return "", -1
	}
	left := int(expires.Sub(s.clock.Now()) / time.Second)
	if left < 1 {
		return "", -1
	}
	return value, left
}

func (s *CookieStore) setCookies() {
	access, accessAge := s.remaining(s.access, s.accessExpires)
	refresh, refreshAge := s.remaining(s.refresh, s.refreshExpires)
	s.jar.SetCookies(s.base, []*http.Cookie{
		s.newCookie(schema.CookieAccessToken, access, accessAge),
		s.newCookie(schema.CookieRefreshToken, refresh, refreshAge),
	})
}

func (s *CookieStore) cookie(name string) string {
	for _, c := range s.jar.Cookies(s.base) {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

func (s *CookieStore) GetAccessToken() string {
	return s.cookie(schema.CookieAccessToken)
}

func (s *CookieStore) GetRefreshToken() string {
	return s.cookie(schema.CookieRefreshToken)
}

// Load returns the tokens currently in the jar and the remembered user
func (s *CookieStore) Load() (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := State{
		User:         s.user,
		AccessToken:  s.GetAccessToken(),
		RefreshToken: s.GetRefreshToken(),
	}
	if state.User == nil && state.AccessToken == "" && state.RefreshToken == "" {
		return State{}, ErrNoSession
	}
	return state, nil
}

func (s *CookieStore) Save(state State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = state.User
	s.accessExpires = s.stamp(state.AccessToken, s.access, s.accessExpires, s.accessMaxAge)
	s.refreshExpires = s.stamp(state.RefreshToken, s.refresh, s.refreshExpires, s.refreshMaxAge)
	s.access, s.refresh = state.AccessToken, state.RefreshToken
	s.setCookies()

	state.AccessExpires, state.RefreshExpires = s.accessExpires, s.refreshExpires
	if s.persist != nil {
		return s.persist.Save(state)
	}
	return nil
}

// Clear expires both cookies
func (s *CookieStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.access, s.refresh = "", ""
	s.accessExpires, s.refreshExpires = time.Time{}, time.Time{}
	s.setCookies()
	if s.persist != nil {
		return s.persist.Clear()
	}
	return nil
}
