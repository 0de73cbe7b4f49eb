//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package codes

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cdb "github.com/UnifyEM/deadlink-watchdog/common/db"
	"github.com/UnifyEM/deadlink-watchdog/common/null"
	"github.com/UnifyEM/deadlink-watchdog/common/schema"
)

const testBucket = "Codes"

type backend struct {
	store   Store
	advance func(time.Duration)
}

func newBolt(t *testing.T) backend {
	t.Helper()
	store, err := cdb.Open(filepath.Join(t.TempDir(), "codes.db"), []string{testBucket}, null.Logger())
	require.NoError(t, err)
	t.Cleanup(store.Close)
	clock := clockwork.NewFakeClock()
	return backend{store: NewBolt(store, testBucket, clock), advance: clock.Advance}
}

func newRedis(t *testing.T) backend {
	t.Helper()
	mr := miniredis.RunT(t)
	s := NewRedisClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = s.Close() })
	return backend{store: s, advance: mr.FastForward}
}

func backends(t *testing.T, test func(*testing.T, backend)) {
	t.Run("bolt", func(t *testing.T) { test(t, newBolt(t)) })
	t.Run("redis", func(t *testing.T) { test(t, newRedis(t)) })
}

func TestConsume(t *testing.T) {
	backends(t, func(t *testing.T, b backend) {
		ctx := context.Background()
		require.NoError(t, b.store.Save(ctx, PurposeVerify, "Alice@Example.com", "123456", time.Hour))

		assert.ErrorIs(t, b.store.Consume(ctx, PurposeVerify, "alice@example.com", "654321"), ErrMismatch)
		assert.NoError(t, b.store.Consume(ctx, PurposeVerify, "alice@example.com", "123456"))
		assert.ErrorIs(t, b.store.Consume(ctx, PurposeVerify, "alice@example.com", "123456"), ErrNotFound)
		assert.ErrorIs(t, b.store.Consume(ctx, PurposeReset, "alice@example.com", "123456"), ErrNotFound)
	})
}

func TestConsumeAttempts(t *testing.T) {
	backends(t, func(t *testing.T, b backend) {
		ctx := context.Background()
		require.NoError(t, b.store.Save(ctx, PurposeVerify, "bob@example.com", "123456", time.Hour))

		for range MaxAttempts - 1 {
			assert.ErrorIs(t, b.store.Consume(ctx, PurposeVerify, "bob@example.com", "000000"), ErrMismatch)
		}
		assert.ErrorIs(t, b.store.Consume(ctx, PurposeVerify, "bob@example.com", "000000"), ErrAttempts)
		assert.ErrorIs(t, b.store.Consume(ctx, PurposeVerify, "bob@example.com", "123456"), ErrNotFound)
	})
}

func TestExpiry(t *testing.T) {
	backends(t, func(t *testing.T, b backend) {
		ctx := context.Background()
		require.NoError(t, b.store.Save(ctx, PurposeVerify, "carol@example.com", "123456", time.Minute))
		require.NoError(t, b.store.Save(ctx, PurposeReset, "token", "U-1", time.Minute))

		b.advance(2 * time.Minute)
		assert.ErrorIs(t, b.store.Consume(ctx, PurposeVerify, "carol@example.com", "123456"), ErrNotFound)
		_, err := b.store.Take(ctx, PurposeReset, "token")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTake(t *testing.T) {
	backends(t, func(t *testing.T, b backend) {
		ctx := context.Background()
		require.NoError(t, b.store.Save(ctx, PurposeReset, "token", "U-1", time.Hour))

		v, err := b.store.Take(ctx, PurposeReset, "token")
		require.NoError(t, err)
		assert.Equal(t, "U-1", v)

		_, err = b.store.Take(ctx, PurposeReset, "token")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestBoltPrune(t *testing.T) {
	b := newBolt(t)
	ctx := context.Background()
	require.NoError(t, b.store.Save(ctx, PurposeVerify, "a@example.com", "111111", time.Minute))
	require.NoError(t, b.store.Save(ctx, PurposeVerify, "b@example.com", "222222", time.Hour))

	b.advance(2 * time.Minute)
	n, err := b.store.(*BoltStore).Prune()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.NoError(t, b.store.Consume(ctx, PurposeVerify, "b@example.com", "222222"))
}

func TestNewCode(t *testing.T) {
	code, err := NewCode()
	require.NoError(t, err)
	assert.True(t, schema.ValidCode(code))
}
