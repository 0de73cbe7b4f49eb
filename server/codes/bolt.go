//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package codes

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jonboulle/clockwork"
	"go.etcd.io/bbolt"

	cdb "github.com/UnifyEM/deadlink-watchdog/common/db"
)

// BoltStore keeps codes in a bucket of the server database. Expired
// entries are ignored on read and removed by Prune.
type BoltStore struct {
	store  *cdb.Store
	bucket string
	clock  clockwork.Clock
}

func NewBolt(store *cdb.Store, bucket string, clock clockwork.Clock) *BoltStore {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &BoltStore{store: store, bucket: bucket, clock: clock}
}

func (s *BoltStore) Save(_ context.Context, purpose, key, value string, ttl time.Duration) error {
	return s.store.SetData(s.bucket, storeKey(purpose, key), record{
		Value:     value,
		ExpiresAt: s.clock.Now().Add(ttl),
	})
}

func (s *BoltStore) Consume(_ context.Context, purpose, key, value string) error {
	k := storeKey(purpose, key)
	var result error

	// Failed attempts are written back, so the outcome is returned
	// outside the transaction
	err := s.store.Update(func(tx *bbolt.Tx) error {
		var r record
		if err := cdb.Get(tx, s.bucket, k, &r); err != nil {
			if errors.Is(err, cdb.ErrNotFound) {
				result = ErrNotFound
				return nil
			}
			return err
		}

		var keep *record
		keep, result = r.check(value, s.clock.Now())
		if keep != nil {
			return cdb.Put(tx, s.bucket, k, keep)
		}
		return tx.Bucket([]byte(s.bucket)).Delete([]byte(k))
	})
	if err != nil {
		return err
	}
	return result
}

func (s *BoltStore) Take(_ context.Context, purpose, key string) (string, error) {
	k := storeKey(purpose, key)
	var r record
	err := s.store.Update(func(tx *bbolt.Tx) error {
		if err := cdb.Get(tx, s.bucket, k, &r); err != nil {
			return err
		}
		return tx.Bucket([]byte(s.bucket)).Delete([]byte(k))
	})
	if errors.Is(err, cdb.ErrNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	if !s.clock.Now().Before(r.ExpiresAt) {
		return "", ErrNotFound
	}
	return r.Value, nil
}

// Prune deletes expired entries and returns the number removed
func (s *BoltStore) Prune() (int, error) {
	now := s.clock.Now()
	var expired []string
	err := s.store.ForEach(s.bucket, func(k, v []byte) error {
		var r record
		if err := json.Unmarshal(v, &r); err != nil || !now.Before(r.ExpiresAt) {
			expired = append(expired, string(k))
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	for _, k := range expired {
		if err = s.store.DeleteData(s.bucket, k); err != nil {
			return 0, err
		}
	}
	return len(expired), nil
}

// Close is a no-op, the database belongs to the caller
func (s *BoltStore) Close() error {
	return nil
}
