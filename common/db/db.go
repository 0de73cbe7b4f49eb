/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package db wraps a bbolt file with JSON-serialized records in named buckets
package db

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"

	"github.com/UnifyEM/deadlink-watchdog/common/interfaces"
)

var (
	ErrNotFound       = errors.New("key not found")
	ErrBucketNotFound = errors.New("bucket not found")
)

type Store struct {
	db     *bbolt.DB
	logger interfaces.Logger
}

// Open opens (or creates) a Bolt DB at the specified path and creates the
// listed buckets if they do not already exist
func Open(filePath string, buckets []string, logger interfaces.Logger) (*Store, error) {
	logger.Debugf(2201, "Opening database: %s", filePath)

	if err := os.MkdirAll(filepath.Dir(filePath), 0700); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// The Timeout option allows Bolt to wait if the file is locked by another process
	db, err := bbolt.Open(filePath, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, bucketName := range buckets {
			if _, createErr := tx.CreateBucketIfNotExists([]byte(bucketName)); createErr != nil {
				return fmt.Errorf("failed to create bucket %s: %w", bucketName, createErr)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, logger: logger}, nil
}

// Close the database, ignore any errors
func (s *Store) Close() {
	_ = s.db.Close()
}

// SetData serializes and stores data in a specified bucket using a given key
func (s *Store) SetData(bucketName string, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize data: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		if err != nil {
			return fmt.Errorf("%s bucket: %w", bucketName, err)
		}
		if err = bucket.Put([]byte(key), data); err != nil {
			return fmt.Errorf("failed to store data in bucket: %w", err)
		}
		return nil
	})
}

// GetData retrieves and deserializes data from a specified bucket using a
// given key. A nil result only checks for presence.
func (s *Store) GetData(bucketName string, key string, result any) error {
	return s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		if bucket == nil {
			return ErrBucketNotFound
		}

		data := bucket.Get([]byte(key))
		if data == nil {
			return ErrNotFound
		}

		if result != nil {
			if err := json.Unmarshal(data, result); err != nil {
				return fmt.Errorf("failed to deserialize data: %w", err)
			}
		}
		return nil
	})
}

// DeleteData deletes data from a specified bucket using a given key
func (s *Store) DeleteData(bucketName string, key string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		if bucket == nil {
			return ErrBucketNotFound
		}
		if err := bucket.Delete([]byte(key)); err != nil {
			return fmt.Errorf("error deleting data %w", err)
		}
		return nil
	})
}

// KeyExists checks if a key exists in a specified bucket
func (s *Store) KeyExists(bucketName string, key string) (bool, error) {
	var exists bool
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		if bucket == nil {
			return ErrBucketNotFound
		}
		exists = bucket.Get([]byte(key)) != nil
		return nil
	})
	return exists, err
}

// ForEach iterates over all keys in the specified bucket and applies the given function
func (s *Store) ForEach(bucketName string, fn func(key, value []byte) error) error {
	return s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		if b == nil {
			return fmt.Errorf("bucket %s: %w", bucketName, ErrBucketNotFound)
		}
		return b.ForEach(fn)
	})
}

// Update runs fn in a read-write transaction. Used when a read and a
// write must be atomic, such as refresh token rotation.
func (s *Store) Update(fn func(tx *bbolt.Tx) error) error {
	return s.db.Update(fn)
}

// Get reads and decodes a record inside an existing transaction
func Get(tx *bbolt.Tx, bucketName, key string, result any) error {
	bucket := tx.Bucket([]byte(bucketName))
	if bucket == nil {
		return ErrBucketNotFound
	}
	data := bucket.Get([]byte(key))
	if data == nil {
		return ErrNotFound
	}
	return json.Unmarshal(data, result)
}

// Put encodes and writes a record inside an existing transaction
func Put(tx *bbolt.Tx, bucketName, key string, value any) error {
	bucket, err := tx.CreateBucketIfNotExists([]byte(bucketName))
	if err != nil {
		return err
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return bucket.Put([]byte(key), data)
}
