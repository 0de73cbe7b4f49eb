/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package cache provides TTL caches for byte slices indexed by string keys
package cache

import (
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/UnifyEM/deadlink-watchdog/common/interfaces"
)

// Instance implements the Cache interface and provides
// a simple in-memory cache for byte slices indexed by string keys.
type Instance struct {
	mu    sync.Mutex
	clock clockwork.Clock
	cache map[string]cacheItem
	ttl   int // default time to live in seconds
}

type cacheItem struct {
	bytes   []byte
	expires time.Time
}

// Option configures a cache
type Option func(*options)

type options struct {
	clock clockwork.Clock
}

// WithClock replaces the wall clock used for expiry checks
func WithClock(clock clockwork.Clock) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{clock: clockwork.NewRealClock()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func New(ttl int, opts ...Option) interfaces.Cache {
	o := buildOptions(opts)
	return &Instance{
		clock: o.clock,
		cache: make(map[string]cacheItem),
		ttl:   ttl}
}

func (c *Instance) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[string]cacheItem)
}

func (c *Instance) TTL(ttl int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ttl = ttl
}

func (c *Instance) Set(key string, data []byte) {
	c.mu.Lock()
	ttl := c.ttl
	c.mu.Unlock()
	c.SetFor(key, data, ttl)
}

// SetFor stores data with its own TTL. A TTL of zero or less is not cached.
func (c *Instance) SetFor(key string, data []byte, ttl int) {
	if ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache[key] = cacheItem{
		bytes:   data,
		expires: c.clock.Now().Add(time.Duration(ttl) * time.Second)}
}

func (c *Instance) Get(key string) []byte {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.cache[key]
	if !ok {
		return nil
	}

	// Expiration check
	if !c.clock.Now().Before(v.expires) {
		delete(c.cache, key)
		return nil
	}
	return v.bytes
}

func (c *Instance) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.cache, key)
}

func (c *Instance) DeletePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.cache {
		if strings.HasPrefix(key, prefix) {
			delete(c.cache, key)
		}
	}
}
