//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package db

import (
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	cdb "github.com/UnifyEM/deadlink-watchdog/common/db"
	"github.com/UnifyEM/deadlink-watchdog/common/schema"
)

// UserRecord is the stored account, including the password hash
type UserRecord struct {
	ID            string     `json:"id"`
	Email         string     `json:"email"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	Role          string     `json:"role"`
	EmailVerified bool       `json:"email_verified"`
	IsActive      bool       `json:"is_active"`
	PasswordHash  string     `json:"password_hash"`
	LastLoginAt   *time.Time `json:"last_login_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// User returns the public view of the record
func (u *UserRecord) User() schema.User {
	return schema.User{
		ID:            u.ID,
		Email:         u.Email,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Role:          u.Role,
		EmailVerified: u.EmailVerified,
		LastLoginAt:   u.LastLoginAt,
	}
}

func (u *UserRecord) AdminUser() schema.AdminUser {
	return schema.AdminUser{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

func (u *UserRecord) Summary() schema.UserSummary {
	return schema.UserSummary{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// SetPassword replaces the password hash
func (u *UserRecord) SetPassword(pass string) error {
	hash, err := GenerateHash(pass)
	if err != nil {
		return fmt.Errorf("hash error: %w", err)
	}
	u.PasswordHash = hash
	return nil
}

// CheckPassword reports whether pass matches the stored hash
func (u *UserRecord) CheckPassword(pass string) bool {
	ok, err := VerifyHash(pass, u.PasswordHash)
	return err == nil && ok
}

// CreateUser stores a new user. The email address must not be in use.
func (d *DB) CreateUser(u *UserRecord) error {
	if u.ID == "" {
		u.ID = NewID(PrefixUser)
	}
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now

	return d.store.Update(func(tx *bbolt.Tx) error {
		var id string
		if err := cdb.Get(tx, BucketUserEmails, emailKey(u.Email), &id); err == nil {
			return fmt.Errorf("email %s: %w", u.Email, ErrExists)
		}
		if err := cdb.Put(tx, BucketUsers, u.ID, u); err != nil {
			return err
		}
		return cdb.Put(tx, BucketUserEmails, emailKey(u.Email), u.ID)
	})
}

func (d *DB) GetUser(id string) (*UserRecord, error) {
	var u UserRecord
	if err := d.store.GetData(BucketUsers, validateKey(id), &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (d *DB) GetUserByEmail(email string) (*UserRecord, error) {
	var id string
	if err := d.store.GetData(BucketUserEmails, emailKey(email), &id); err != nil {
		return nil, err
	}
	return d.GetUser(id)
}

// UpdateUser applies fn to the stored user atomically. An email change
// moves the email index entry and fails if the new address is taken.
func (d *DB) UpdateUser(id string, fn func(*UserRecord) error) (*UserRecord, error) {
	var u UserRecord
	err := d.store.Update(func(tx *bbolt.Tx) error {
		if err := cdb.Get(tx, BucketUsers, validateKey(id), &u); err != nil {
			return err
		}
		oldEmail := emailKey(u.Email)
		if err := fn(&u); err != nil {
			return err
		}
		u.UpdatedAt = time.Now()

		if newEmail := emailKey(u.Email); newEmail != oldEmail {
			var other string
			if err := cdb.Get(tx, BucketUserEmails, newEmail, &other); err == nil && other != u.ID {
				return fmt.Errorf("email %s: %w", u.Email, ErrExists)
			}
			if err := tx.Bucket([]byte(BucketUserEmails)).Delete([]byte(oldEmail)); err != nil {
				return err
			}
			if err := cdb.Put(tx, BucketUserEmails, newEmail, u.ID); err != nil {
				return err
			}
		}
		return cdb.Put(tx, BucketUsers, u.ID, u)
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ListUsers returns users accepted by keep, newest first
func (d *DB) ListUsers(keep func(*UserRecord) bool) ([]UserRecord, error) {
	users, err := list(d.store, BucketUsers, keep)
	if err != nil {
		return nil, err
	}
	newest(users, func(u *UserRecord) time.Time { return u.CreatedAt })
	return users, nil
}
