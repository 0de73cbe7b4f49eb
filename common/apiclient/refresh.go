/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/UnifyEM/deadlink-watchdog/common/fields"
	"github.com/UnifyEM/deadlink-watchdog/common/schema"
)

type refreshState int

const (
	refreshIdle refreshState = iota
	refreshRunning
)

// refreshCall is the shared handle of one refresh. tokens, err and seq
// are written before done is closed and never after.
type refreshCall struct {
	done   chan struct{}
	tokens schema.AuthTokens
	err    error
	seq    uint64
}

// issued reports whether this refresh produced token
func (r *refreshCall) issued(token string) bool {
	return r.err == nil && r.tokens.AccessToken == token
}

// coordinator ensures that at most one refresh is outstanding. completed
// counts settled refreshes so that a request sent before a refresh settled
// can reuse its outcome instead of starting another one.
type coordinator struct {
	mu        sync.Mutex
	state     refreshState
	pending   *refreshCall
	last      *refreshCall
	completed uint64
}

// epoch must be read before the access token a request is sent with
func (co *coordinator) epoch() uint64 {
	co.mu.Lock()
	defer co.mu.Unlock()
	return co.completed
}

// join returns the refresh whose outcome applies to a request sent at
// epoch with token. A settled refresh that issued token itself does not
// apply. leader is true when the caller must run the returned call.
func (co *coordinator) join(epoch uint64, token string) (call *refreshCall, leader bool) {
	co.mu.Lock()
	defer co.mu.Unlock()

	switch {
	case co.state == refreshRunning:
		return co.pending, false
	case co.completed > epoch && co.last != nil && !co.last.issued(token):
		return co.last, false
	}

	call = &refreshCall{done: make(chan struct{})}
	co.state = refreshRunning
	co.pending = call
	return call, true
}

func (co *coordinator) finish(call *refreshCall) {
	co.mu.Lock()
	co.state = refreshIdle
	co.pending = nil
	co.last = call
	co.completed++
	call.seq = co.completed
	co.mu.Unlock()
	close(call.done)
}

// awaitRefresh returns new tokens for a request that was sent with token
// and rejected with 401, starting a refresh only if none applies yet. A
// cancelled ctx stops the wait but not the refresh.
func (c *Client) awaitRefresh(ctx context.Context, epoch uint64, token string) (schema.AuthTokens, error) {
	for {
		call, leader := c.coord.join(epoch, token)
		if leader {
			go c.runRefresh(ctx, call)
		} else {
			c.logger.Debug(3012, "waiting for shared token refresh", nil)
		}

		select {
		case <-call.done:
		case <-ctx.Done():
			return schema.AuthTokens{}, ctx.Err()
		}

		// A refresh that was running when the request was sent may have
		// issued the very token that was rejected
		if leader || !call.issued(token) {
			return call.tokens, call.err
		}
		epoch = call.seq
	}
}

// runRefresh performs the exchange and notifies the host exactly once
// before any waiter is released
func (c *Client) runRefresh(parent context.Context, call *refreshCall) {
	defer c.coord.finish(call)

	ctx, cancel := context.WithTimeout(context.WithoutCancel(parent), c.refreshTimeout)
	defer cancel()

	c.logger.Info(3010, "access token rejected, attempting refresh", nil)

	tokens, err := c.exchange(ctx)
	if err != nil {
		call.err = fmt.Errorf("%w: %w", ErrAuthenticationFailed, err)
		c.logger.Warning(3014, "token refresh failed", fields.NewFields(fields.Error(err)))
		c.ClearCache()
		if c.onAuthError != nil {
			c.onAuthError()
		}
		return
	}

	call.tokens = tokens
	c.logger.Info(3011, "access token refresh successful", nil)
	if c.onTokenRefresh != nil {
		c.onTokenRefresh(tokens)
	}
}

// exchange posts the refresh token and returns the new pair
func (c *Client) exchange(ctx context.Context) (schema.AuthTokens, error) {
	refreshToken := c.tokens.GetRefreshToken()
	if refreshToken == "" {
		return schema.AuthTokens{}, ErrNoRefreshToken
	}

	body, err := json.Marshal(schema.RefreshForm{RefreshToken: refreshToken})
	if err != nil {
		return schema.AuthTokens{}, fmt.Errorf("%w: %w", ErrRefreshFailed, err)
	}

	status, data, err := c.send(ctx, http.MethodPost, c.refreshPath, body, "")
	if err != nil {
		return schema.AuthTokens{}, fmt.Errorf("%w: %w", ErrRefreshFailed, err)
	}
	if status < 200 || status > 299 {
		return schema.AuthTokens{}, fmt.Errorf("%w: %w", ErrRefreshFailed, newHTTPError(status, data))
	}

	tokens := parseTokens(data)
	if tokens.AccessToken == "" {
		return schema.AuthTokens{}, fmt.Errorf("%w: response did not include an access token", ErrRefreshFailed)
	}

	// Servers that do not rotate refresh tokens may omit it
	if tokens.RefreshToken == "" {
		tokens.RefreshToken = refreshToken
	}
	return tokens, nil
}
