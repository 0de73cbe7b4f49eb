//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package codes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "dlw"

// RedisStore keeps codes in redis, which expires them on its own
type RedisStore struct {
	redis  *redis.Client
	prefix string
}

// NewRedis connects to the server at addr and checks that it responds
func NewRedis(ctx context.Context, addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis %s: %w", addr, err)
	}
	return NewRedisClient(client), nil
}

func NewRedisClient(client *redis.Client) *RedisStore {
	return &RedisStore{redis: client, prefix: redisKeyPrefix}
}

func (s *RedisStore) key(purpose, key string) string {
	return s.prefix + ":" + storeKey(purpose, key)
}

func (s *RedisStore) Save(ctx context.Context, purpose, key, value string, ttl time.Duration) error {
	data, err := json.Marshal(record{Value: value, ExpiresAt: time.Now().Add(ttl)})
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, s.key(purpose, key), data, ttl).Err()
}

func (s *RedisStore) Consume(ctx context.Context, purpose, key, value string) error {
	const maxRetries = 4
	k := s.key(purpose, key)

	for range maxRetries {
		err := s.redis.Watch(ctx, func(tx *redis.Tx) error {
			data, err := tx.Get(ctx, k).Bytes()
			if err != nil {
				return err
			}
			var r record
			if err = json.Unmarshal(data, &r); err != nil {
				return err
			}

			// Redis expiry has second granularity, so check the record too
			keep, result := r.check(value, time.Now())
			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				if keep != nil {
					updated, err := json.Marshal(keep)
					if err != nil {
						return err
					}
					pipe.Set(ctx, k, updated, redis.KeepTTL)
				} else {
					pipe.Del(ctx, k)
				}
				return nil
			})
			if err != nil {
				return err
			}
			return result
		}, k)

		switch {
		case errors.Is(err, redis.TxFailedErr):
			continue
		case errors.Is(err, redis.Nil):
			return ErrNotFound
		}
		return err
	}
	return ErrNotFound
}

func (s *RedisStore) Take(ctx context.Context, purpose, key string) (string, error) {
	data, err := s.redis.GetDel(ctx, s.key(purpose, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	var r record
	if err = json.Unmarshal(data, &r); err != nil {
		return "", err
	}
	if !time.Now().Before(r.ExpiresAt) {
		return "", ErrNotFound
	}
	return r.Value, nil
}

func (s *RedisStore) Close() error {
	return s.redis.Close()
}
