//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UnifyEM/deadlink-watchdog/common/interfaces"
	"github.com/UnifyEM/deadlink-watchdog/common/null"
)

func TestRunTicksAndStops(t *testing.T) {
	clock := clockwork.NewFakeClock()
	var tasks, stops atomic.Int32
	background := make(chan struct{})

	s, err := New(
		WithLogger(null.Logger()),
		WithClock(clock),
		WithTaskTicker(time.Minute),
		WithBackgroundFunc(func(ctx context.Context, _ interfaces.Logger) {
			close(background)
			<-ctx.Done()
		}),
		WithTasksFunc(func(interfaces.Logger) { tasks.Add(1) }),
		WithStopFunc(func(interfaces.Logger) { stops.Add(1) }))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	<-background
	clock.BlockUntil(1)
	clock.Advance(time.Minute)
	assert.Eventually(t, func() bool { return tasks.Load() == 1 }, time.Second, 5*time.Millisecond)
	clock.Advance(time.Minute)
	assert.Eventually(t, func() bool { return tasks.Load() == 2 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("service did not stop")
	}
	assert.Equal(t, int32(1), stops.Load())
}

func TestRunRequiresLogger(t *testing.T) {
	s, err := New()
	require.NoError(t, err)
	assert.Error(t, s.Run(context.Background()))
}

func TestOptionValidation(t *testing.T) {
	_, err := New(WithTaskTicker(0))
	assert.Error(t, err)
	_, err = New(WithClock(nil))
	assert.Error(t, err)
}
