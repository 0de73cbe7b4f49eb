//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

// Package codes holds short-lived secrets: email verification codes and
// password reset tokens
package codes

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/UnifyEM/deadlink-watchdog/common/crypto"
	"github.com/UnifyEM/deadlink-watchdog/common/schema"
)

const (
	PurposeVerify = "verify"
	PurposeReset  = "reset"
)

// MaxAttempts is the number of wrong guesses before a code is discarded
const MaxAttempts = 5

var (
	ErrNotFound = errors.New("code not found or expired")
	ErrMismatch = errors.New("code does not match")
	ErrAttempts = errors.New("too many attempts")
)

// Store keeps values under purpose and key until they expire or are used
type Store interface {
	// Save replaces any existing value
	Save(ctx context.Context, purpose, key, value string, ttl time.Duration) error
	// Consume deletes the entry if value matches and counts a failed attempt otherwise
	Consume(ctx context.Context, purpose, key, value string) error
	// Take returns and deletes the value
	Take(ctx context.Context, purpose, key string) (string, error)
	Close() error
}

type record struct {
	Value     string    `json:"value"`
	ExpiresAt time.Time `json:"expires_at"`
	Attempts  int       `json:"attempts"`
}

// check compares value with the record. It returns the updated record
// to keep, or nil when the entry should be deleted.
func (r *record) check(value string, now time.Time) (*record, error) {
	if !now.Before(r.ExpiresAt) {
		return nil, ErrNotFound
	}
	if subtle.ConstantTimeCompare([]byte(r.Value), []byte(value)) == 1 {
		return nil, nil
	}
	r.Attempts++
	if r.Attempts >= MaxAttempts {
		return nil, ErrAttempts
	}
	return r, ErrMismatch
}

func storeKey(purpose, key string) string {
	return purpose + ":" + strings.ToLower(key)
}

// NewCode returns a random numeric verification code
func NewCode() (string, error) {
	return crypto.RandomString(schema.CodeDigits, schema.CodeLength)
}
