//
// Copyright (c) 2025-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package cache

import (
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UnifyEM/deadlink-watchdog/common/interfaces"
)

func exercise(t *testing.T, c interfaces.Cache, clock clockwork.FakeClock) {
	c.Set("/api/auth/me", []byte("user"))
	c.SetFor("/api/crawls?page=1", []byte("p1"), 60)
	c.SetFor("/api/crawls?page=2", []byte("p2"), 60)
	c.SetFor("/api/dashboard/overview", []byte("o"), 0)

	assert.Equal(t, []byte("user"), c.Get("/api/auth/me"))
	assert.Equal(t, []byte("p1"), c.Get("/api/crawls?page=1"))
	assert.Nil(t, c.Get("/api/dashboard/overview"))

	c.DeletePrefix("/api/crawls")
	assert.Nil(t, c.Get("/api/crawls?page=1"))
	assert.Nil(t, c.Get("/api/crawls?page=2"))
	assert.NotNil(t, c.Get("/api/auth/me"))

	clock.Advance(299 * time.Second)
	assert.NotNil(t, c.Get("/api/auth/me"))
	clock.Advance(time.Second)
	assert.Nil(t, c.Get("/api/auth/me"))

	c.SetFor("a", []byte("1"), 10)
	c.SetFor("b", []byte("2"), 10)
	c.Delete("a")
	assert.Nil(t, c.Get("a"))
	c.Clear()
	assert.Nil(t, c.Get("b"))
}

func TestMemory(t *testing.T) {
	clock := clockwork.NewFakeClock()
	exercise(t, New(300, WithClock(clock)), clock)
}

func TestDisk(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c, err := NewDisk(t.TempDir(), 300, WithClock(clock))
	require.NoError(t, err)
	exercise(t, c, clock)
}

func TestDiskSharedAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	clock := clockwork.NewFakeClock()

	c1, err := NewDisk(dir, 60, WithClock(clock))
	require.NoError(t, err)
	c1.Set("/api/websites", []byte(`{"success":true}`))

	c2, err := NewDisk(dir, 60, WithClock(clock))
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"success":true}`), c2.Get("/api/websites"))

	long := "/api/x?" + strings.Repeat("q", maxKeyLength)
	c2.Set(long, []byte("x"))
	assert.Nil(t, c2.Get(long))
}

func TestDiskRequiresDir(t *testing.T) {
	_, err := NewDisk("", 60)
	assert.Error(t, err)
}
