//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package util

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UnifyEM/deadlink-watchdog/cli/global"
)

func TestNVPairs(t *testing.T) {
	p := NewNVPairs([]string{"Server_URL=http://a:1/x=y", "junk", "debug=true"})
	assert.Equal(t, map[string]string{"server_url": "http://a:1/x=y", "debug": "true"}, p.ToMap())
}

func TestOptionalBool(t *testing.T) {
	b, err := OptionalBool("active", "")
	require.NoError(t, err)
	assert.Nil(t, b)

	b, err = OptionalBool("active", "false")
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.False(t, *b)

	_, err = OptionalBool("active", "maybe")
	assert.EqualError(t, err, "--active must be true or false")
}

func TestConfirmAssumeYes(t *testing.T) {
	old := global.AssumeYes
	global.AssumeYes = true
	t.Cleanup(func() { global.AssumeYes = old })

	assert.NoError(t, Confirm("Delete everything"))
}

func TestWatch(t *testing.T) {
	clock := clockwork.NewFakeClock()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := make(chan struct{}, 10)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, clock, 30*time.Second, func(context.Context) error {
			calls <- struct{}{}
			return nil
		})
	}()

	<-calls
	clock.BlockUntil(1)
	clock.Advance(30 * time.Second)
	<-calls
	clock.Advance(30 * time.Second)
	<-calls

	cancel()
	require.NoError(t, <-done)
}

func TestWatchStopsOnError(t *testing.T) {
	clock := clockwork.NewFakeClock()
	boom := errors.New("boom")
	n := 0

	done := make(chan error, 1)
	go func() {
		done <- Watch(context.Background(), clock, time.Second, func(context.Context) error {
			n++
			if n == 2 {
				return boom
			}
			return nil
		})
	}()

	clock.BlockUntil(1)
	clock.Advance(time.Second)
	assert.ErrorIs(t, <-done, boom)
	assert.Equal(t, 2, n)
}
