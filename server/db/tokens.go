//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package db

import (
	"errors"
	"time"

	"go.etcd.io/bbolt"

	cdb "github.com/UnifyEM/deadlink-watchdog/common/db"
)

// RefreshRecord tracks an issued refresh token by its JWT ID. A token
// that has been replaced must never be presented again.
type RefreshRecord struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	IssuedAt   time.Time `json:"issued_at"`
	ExpiresAt  time.Time `json:"expires_at"`
	ReplacedBy string    `json:"replaced_by,omitempty"`
	Revoked    bool      `json:"revoked,omitempty"`
}

func (d *DB) StoreRefresh(r RefreshRecord) error {
	return d.store.SetData(BucketRefreshTokens, r.ID, r)
}

// RotateRefresh marks oldID as replaced by next and stores next in the
// same transaction. Presenting a replaced or revoked token revokes every
// token of its user and returns ErrTokenReuse.
func (d *DB) RotateRefresh(oldID string, next RefreshRecord, now time.Time) error {
	var reused string
	err := d.store.Update(func(tx *bbolt.Tx) error {
		var old RefreshRecord
		if err := cdb.Get(tx, BucketRefreshTokens, oldID, &old); err != nil {
			if errors.Is(err, cdb.ErrNotFound) {
				return ErrTokenUnknown
			}
			return err
		}
		if old.UserID != next.UserID {
			return ErrTokenUnknown
		}
		if old.ReplacedBy != "" || old.Revoked {
			reused = old.UserID
			return nil
		}
		if !now.Before(old.ExpiresAt) {
			return ErrTokenExpired
		}
		old.ReplacedBy = next.ID
		if err := cdb.Put(tx, BucketRefreshTokens, old.ID, old); err != nil {
			return err
		}
		return cdb.Put(tx, BucketRefreshTokens, next.ID, next)
	})
	if err != nil {
		return err
	}
	if reused != "" {
		if err = d.RevokeUserTokens(reused); err != nil {
			return err
		}
		return ErrTokenReuse
	}
	return nil
}

// RevokeUserTokens revokes every refresh token issued to the user
func (d *DB) RevokeUserTokens(userID string) error {
	return d.store.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BucketRefreshTokens))
		revoked := map[string]RefreshRecord{}
		err := b.ForEach(func(k, _ []byte) error {
			var r RefreshRecord
			if err := cdb.Get(tx, BucketRefreshTokens, string(k), &r); err != nil {
				return err
			}
			if r.UserID == userID && !r.Revoked {
				r.Revoked = true
				revoked[r.ID] = r
			}
			return nil
		})
		if err != nil {
			return err
		}
		for id, r := range revoked {
			if err = cdb.Put(tx, BucketRefreshTokens, id, r); err != nil {
				return err
			}
		}
		return nil
	})
}

// PruneRefresh deletes refresh records that expired before now and
// returns the number removed
func (d *DB) PruneRefresh(now time.Time) (int, error) {
	expired, err := list(d.store, BucketRefreshTokens, func(r *RefreshRecord) bool {
		return now.After(r.ExpiresAt)
	})
	if err != nil {
		return 0, err
	}
	for _, r := range expired {
		if err = d.store.DeleteData(BucketRefreshTokens, r.ID); err != nil {
			return 0, err
		}
	}
	return len(expired), nil
}
