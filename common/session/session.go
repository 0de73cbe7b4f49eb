/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package session owns the signed-in user and their token pair. The API
// client reads tokens through interfaces.TokenSource and reports new ones
// through Refreshed and AuthError.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/UnifyEM/deadlink-watchdog/common/fields"
	"github.com/UnifyEM/deadlink-watchdog/common/interfaces"
	"github.com/UnifyEM/deadlink-watchdog/common/null"
	"github.com/UnifyEM/deadlink-watchdog/common/schema"
)

// ErrNoSession is returned by Store.Load when nothing has been saved
var ErrNoSession = errors.New("no session")

// Ensure Session implements the TokenSource interface
var _ interfaces.TokenSource = (*Session)(nil)

// State is what a Store persists
type State struct {
	User         *schema.User `json:"user,omitempty"`
	AccessToken  string       `json:"accessToken,omitempty"`
	RefreshToken string       `json:"refreshToken,omitempty"`

	// Set by CookieStore so that restored cookies keep their lifetime
	AccessExpires  time.Time `json:"accessExpires,omitzero"`
	RefreshExpires time.Time `json:"refreshExpires,omitzero"`
}

// Store persists session state
type Store interface {
	Load() (State, error)
	Save(State) error
	Clear() error
}

type Session struct {
	mu     sync.RWMutex
	store  Store
	state  State
	logger interfaces.Logger
}

// New loads any saved state from store. A nil logger discards output.
func New(store Store, logger interfaces.Logger) (*Session, error) {
	if store == nil {
		return nil, errors.New("session store is nil")
	}
	if logger == nil {
		logger = null.Logger()
	}

	state, err := store.Load()
	if err != nil && !errors.Is(err, ErrNoSession) {
		return nil, fmt.Errorf("error loading session: %w", err)
	}

	return &Session{store: store, state: state, logger: logger}, nil
}

// GetAccessToken reads through to the store when it is itself a token
// source (cookie transport), otherwise returns the saved token
func (s *Session) GetAccessToken() string {
	if ts, ok := s.store.(interfaces.TokenSource); ok {
		return ts.GetAccessToken()
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.AccessToken
}

func (s *Session) GetRefreshToken() string {
	if ts, ok := s.store.(interfaces.TokenSource); ok {
		return ts.GetRefreshToken()
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.RefreshToken
}

// User returns a copy of the signed-in user or nil
func (s *Session) User() *schema.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.User == nil {
		return nil
	}
	u := *s.state.User
	return &u
}

// IsAuthenticated is true when both a user and an access token are present
func (s *Session) IsAuthenticated() bool {
	return s.GetAccessToken() != "" && s.User() != nil
}

// Login replaces the session with user and tokens
func (s *Session) Login(user schema.User, tokens schema.AuthTokens) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = State{User: &user, AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}
	if err := s.store.Save(s.state); err != nil {
		return fmt.Errorf("error saving session: %w", err)
	}
	s.logger.Info(3100, "signed in", fields.NewFields(fields.NewField("email", user.Email)))
	return nil
}

// Logout forgets the user and tokens
func (s *Session) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = State{}
	if err := s.store.Clear(); err != nil {
		return fmt.Errorf("error clearing session: %w", err)
	}
	s.logger.Info(3101, "signed out", nil)
	return nil
}

// UpdateUser replaces the stored user record, keeping the tokens
func (s *Session) UpdateUser(user schema.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.User == nil {
		return ErrNoSession
	}
	s.state.User = &user
	if err := s.store.Save(s.state); err != nil {
		return fmt.Errorf("error saving session: %w", err)
	}
	return nil
}

// Refreshed stores a refreshed token pair. Tokens that arrive when no user
// is signed in are ignored.
func (s *Session) Refreshed(tokens schema.AuthTokens) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.User == nil {
		s.logger.Debug(3103, "ignoring refreshed tokens without a signed in user", nil)
		return
	}

	s.state.AccessToken = tokens.AccessToken
	s.state.RefreshToken = tokens.RefreshToken
	if err := s.store.Save(s.state); err != nil {
		s.logger.Error(3104, "error saving refreshed tokens", fields.NewFields(fields.Error(err)))
		return
	}
	s.logger.Debug(3102, "saved refreshed tokens", nil)
}

// AuthError drops the session after a failed refresh
func (s *Session) AuthError() {
	s.logger.Warning(3105, "session expired, signing out", nil)
	if err := s.Logout(); err != nil {
		s.logger.Error(3106, "error clearing session", fields.NewFields(fields.Error(err)))
	}
}
