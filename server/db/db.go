/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package db holds the development server records in bbolt buckets
package db

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	cdb "github.com/UnifyEM/deadlink-watchdog/common/db"
	"github.com/UnifyEM/deadlink-watchdog/common/interfaces"
)

// A separate package with a struct is used for looser coupling with the database

type DB struct {
	store  *cdb.Store
	logger interfaces.Logger
}

const (
	BucketUsers         = "Users"
	BucketUserEmails    = "UserEmails"
	BucketWebsites      = "Websites"
	BucketCrawls        = "Crawls"
	BucketBrokenLinks   = "BrokenLinks"
	BucketRefreshTokens = "RefreshTokens"
	BucketCodes         = "Codes"
)

var bucketList = []string{BucketUsers, BucketUserEmails, BucketWebsites, BucketCrawls,
	BucketBrokenLinks, BucketRefreshTokens, BucketCodes}

var (
	ErrNotFound     = cdb.ErrNotFound
	ErrExists       = errors.New("record already exists")
	ErrTokenUnknown = errors.New("refresh token not recognized")
	ErrTokenReuse   = errors.New("refresh token reused")
	ErrTokenExpired = errors.New("refresh token expired")
)

// ID prefixes
const (
	PrefixUser    = "U-"
	PrefixWebsite = "W-"
	PrefixCrawl   = "C-"
	PrefixLink    = "L-"
	PrefixToken   = "T-"
)

// Open opens (or creates) the database at the specified path
func Open(filePath string, logger interfaces.Logger) (*DB, error) {
	store, err := cdb.Open(filePath, bucketList, logger)
	if err != nil {
		return nil, fmt.Errorf("unable to open or create database: %w", err)
	}
	return &DB{store: store, logger: logger}, nil
}

// Close the database, ignore any errors
func (d *DB) Close() {
	d.store.Close()
}

// Store exposes the underlying bucket store for components that keep
// their own records, such as the verification code store
func (d *DB) Store() *cdb.Store {
	return d.store
}

// NewID returns a random ID with the given prefix
func NewID(prefix string) string {
	return prefix + uuid.New().String()
}

// newest sorts records by creation time, most recent first
func newest[T any](items []T, created func(*T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return created(&items[i]).After(created(&items[j]))
	})
}
