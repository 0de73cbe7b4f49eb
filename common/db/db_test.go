//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/UnifyEM/deadlink-watchdog/common/null"
)

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestStore(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "nested", "test.db"), []string{"Things"}, null.Logger())
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.SetData("Things", "a", record{Name: "alpha", Count: 1}))
	require.NoError(t, s.SetData("Things", "b", record{Name: "beta", Count: 2}))

	var r record
	require.NoError(t, s.GetData("Things", "a", &r))
	assert.Equal(t, record{Name: "alpha", Count: 1}, r)

	assert.ErrorIs(t, s.GetData("Things", "zz", &r), ErrNotFound)
	assert.ErrorIs(t, s.GetData("Missing", "a", &r), ErrBucketNotFound)

	exists, err := s.KeyExists("Things", "b")
	require.NoError(t, err)
	assert.True(t, exists)

	var names []string
	require.NoError(t, s.ForEach("Things", func(k, _ []byte) error {
		names = append(names, string(k))
		return nil
	}))
	assert.Equal(t, []string{"a", "b"}, names)

	require.NoError(t, s.DeleteData("Things", "a"))
	exists, _ = s.KeyExists("Things", "a")
	assert.False(t, exists)
}

func TestUpdateTransaction(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "tx.db"), []string{"Counters"}, null.Logger())
	require.NoError(t, err)
	defer s.Close()

	for i := 0; i < 3; i++ {
		require.NoError(t, s.Update(func(tx *bbolt.Tx) error {
			var r record
			if err := Get(tx, "Counters", "c", &r); err != nil && err != ErrNotFound {
				return err
			}
			r.Count++
			return Put(tx, "Counters", "c", r)
		}))
	}

	var r record
	require.NoError(t, s.GetData("Counters", "c", &r))
	assert.Equal(t, 3, r.Count)
}
