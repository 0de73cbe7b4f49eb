/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package db

import (
	"errors"
	"time"
)

var (
	ErrBadCredentials  = errors.New("invalid email or password")
	ErrAccountDisabled = errors.New("account disabled")
)

// CheckAuth verifies the password for the account with the given email.
// On success LastLoginAt is updated and the stored record is returned.
func (d *DB) CheckAuth(email, pass string) (*UserRecord, error) {
	u, err := d.GetUserByEmail(email)
	if err != nil {
		// Hash anyway so that unknown accounts take as long as known ones
		_, _ = VerifyHash(pass, dummyHash)
		return nil, ErrBadCredentials
	}

	// Compare the provided password with the stored hash
	if !u.CheckPassword(pass) {
		return nil, ErrBadCredentials
	}

	if !u.IsActive {
		return nil, ErrAccountDisabled
	}

	return d.UpdateUser(u.ID, func(rec *UserRecord) error {
		now := time.Now()
		rec.LastLoginAt = &now
		return nil
	})
}

// SetAuth creates the account or replaces its password and role. Used
// by the console to create administrators.
func (d *DB) SetAuth(email, pass, role string) (*UserRecord, error) {
	if existing, err := d.GetUserByEmail(email); err == nil {
		return d.UpdateUser(existing.ID, func(rec *UserRecord) error {
			rec.Role = role
			rec.IsActive = true
			rec.EmailVerified = true
			return rec.SetPassword(pass)
		})
	}

	u := &UserRecord{
		Email:         email,
		Role:          role,
		IsActive:      true,
		EmailVerified: true,
	}
	if err := u.SetPassword(pass); err != nil {
		return nil, err
	}
	if err := d.CreateUser(u); err != nil {
		return nil, err
	}
	return u, nil
}
