/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package session

import (
	"errors"
	"fmt"

	"github.com/UnifyEM/deadlink-watchdog/common/db"
	"github.com/UnifyEM/deadlink-watchdog/common/interfaces"
)

const (
	BucketSession = "Session"
	keyCurrent    = "current"
)

// BoltStore persists state in a bbolt file so that it survives between
// CLI invocations
type BoltStore struct {
	store *db.Store
}

func NewBoltStore(path string, logger interfaces.Logger) (*BoltStore, error) {
	store, err := db.Open(path, []string{BucketSession}, logger)
	if err != nil {
		return nil, fmt.Errorf("error opening session store: %w", err)
	}
	return &BoltStore{store: store}, nil
}

func (b *BoltStore) Load() (State, error) {
	var state State
	err := b.store.GetData(BucketSession, keyCurrent, &state)
	if errors.Is(err, db.ErrNotFound) {
		return State{}, ErrNoSession
	}
	return state, err
}

func (b *BoltStore) Save(state State) error {
	return b.store.SetData(BucketSession, keyCurrent, state)
}

func (b *BoltStore) Clear() error {
	return b.store.DeleteData(BucketSession, keyCurrent)
}

func (b *BoltStore) Close() {
	b.store.Close()
}
