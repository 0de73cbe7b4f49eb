//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package db

import (
	"bytes"
	"encoding/json"
	"time"

	"go.etcd.io/bbolt"

	"github.com/UnifyEM/deadlink-watchdog/common/schema"
)

// WebsiteRecord adds moderation data that is not part of the website view
type WebsiteRecord struct {
	schema.Website
	Reports int `json:"reports"`
}

func (d *DB) CreateWebsite(w *WebsiteRecord) error {
	if w.ID == "" {
		w.ID = NewID(PrefixWebsite)
	}
	now := time.Now()
	if w.CreatedAt.IsZero() {
		w.CreatedAt = now
	}
	w.UpdatedAt = now
	return d.store.SetData(BucketWebsites, w.ID, w)
}

func (d *DB) GetWebsite(id string) (*WebsiteRecord, error) {
	var w WebsiteRecord
	if err := d.store.GetData(BucketWebsites, validateKey(id), &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (d *DB) UpdateWebsite(id string, fn func(*WebsiteRecord) error) (*WebsiteRecord, error) {
	w, err := update(d.store, BucketWebsites, validateKey(id), func(w *WebsiteRecord) error {
		if err := fn(w); err != nil {
			return err
		}
		w.UpdatedAt = time.Now()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// DeleteWebsite removes the website with its crawls and broken links
func (d *DB) DeleteWebsite(id string) error {
	id = validateKey(id)
	return d.store.Update(func(tx *bbolt.Tx) error {
		websites := tx.Bucket([]byte(BucketWebsites))
		if websites.Get([]byte(id)) == nil {
			return ErrNotFound
		}
		if err := websites.Delete([]byte(id)); err != nil {
			return err
		}
		for _, bucket := range []string{BucketCrawls, BucketBrokenLinks} {
			if err := deleteWhere(tx.Bucket([]byte(bucket)), id); err != nil {
				return err
			}
		}
		return nil
	})
}

// deleteWhere removes every record whose websiteId matches
func deleteWhere(b *bbolt.Bucket, websiteID string) error {
	var ref struct {
		WebsiteID string `json:"websiteId"`
	}
	var doomed [][]byte
	err := b.ForEach(func(k, v []byte) error {
		ref.WebsiteID = ""
		if err := json.Unmarshal(v, &ref); err != nil {
			return err
		}
		if ref.WebsiteID == websiteID {
			doomed = append(doomed, bytes.Clone(k))
		}
		return nil
	})
	if err != nil {
		return err
	}
	for _, k := range doomed {
		if err = b.Delete(k); err != nil {
			return err
		}
	}
	return nil
}

// ListWebsites returns websites accepted by keep, newest first
func (d *DB) ListWebsites(keep func(*WebsiteRecord) bool) ([]WebsiteRecord, error) {
	websites, err := list(d.store, BucketWebsites, keep)
	if err != nil {
		return nil, err
	}
	newest(websites, func(w *WebsiteRecord) time.Time { return w.CreatedAt })
	return websites, nil
}
