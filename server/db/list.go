//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package db

import (
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	cdb "github.com/UnifyEM/deadlink-watchdog/common/db"
)

// list decodes every record in a bucket, keeping those accepted by keep.
// A nil keep returns everything.
func list[T any](store *cdb.Store, bucket string, keep func(*T) bool) ([]T, error) {
	var items []T
	err := store.ForEach(bucket, func(key, value []byte) error {
		var item T
		if err := json.Unmarshal(value, &item); err != nil {
			return fmt.Errorf("record %s in %s: %w", key, bucket, err)
		}
		if keep == nil || keep(&item) {
			items = append(items, item)
		}
		return nil
	})
	return items, err
}

// update applies fn to a record inside a single transaction
func update[T any](store *cdb.Store, bucket, key string, fn func(*T) error) (T, error) {
	var item T
	err := store.Update(func(tx *bbolt.Tx) error {
		if err := cdb.Get(tx, bucket, key, &item); err != nil {
			return err
		}
		if err := fn(&item); err != nil {
			return err
		}
		return cdb.Put(tx, bucket, key, item)
	})
	return item, err
}
