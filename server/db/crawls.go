//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package db

import (
	"time"

	"github.com/UnifyEM/deadlink-watchdog/common/schema"
)

func (d *DB) CreateCrawl(c *schema.CrawlResult) error {
	if c.ID == "" {
		c.ID = NewID(PrefixCrawl)
	}
	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
	c.BrokenLinkRecords = nil
	return d.store.SetData(BucketCrawls, c.ID, c)
}

func (d *DB) GetCrawl(id string) (*schema.CrawlResult, error) {
	var c schema.CrawlResult
	if err := d.store.GetData(BucketCrawls, validateKey(id), &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (d *DB) UpdateCrawl(id string, fn func(*schema.CrawlResult) error) (*schema.CrawlResult, error) {
	c, err := update(d.store, BucketCrawls, validateKey(id), func(c *schema.CrawlResult) error {
		if err := fn(c); err != nil {
			return err
		}
		c.UpdatedAt = time.Now()
		c.BrokenLinkRecords = nil
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCrawls returns crawls accepted by keep, newest first
func (d *DB) ListCrawls(keep func(*schema.CrawlResult) bool) ([]schema.CrawlResult, error) {
	crawls, err := list(d.store, BucketCrawls, keep)
	if err != nil {
		return nil, err
	}
	newest(crawls, func(c *schema.CrawlResult) time.Time { return c.CreatedAt })
	return crawls, nil
}

// PutBrokenLink creates or replaces a broken link record
func (d *DB) PutBrokenLink(l *schema.CrawlBrokenLink) error {
	if l.ID == "" {
		l.ID = NewID(PrefixLink)
	}
	now := time.Now()
	if l.CreatedAt.IsZero() {
		l.CreatedAt = now
	}
	if l.FirstDetectedAt.IsZero() {
		l.FirstDetectedAt = now
	}
	l.UpdatedAt = now
	return d.store.SetData(BucketBrokenLinks, l.ID, l)
}

// ListBrokenLinks returns broken links accepted by keep, newest first
func (d *DB) ListBrokenLinks(keep func(*schema.CrawlBrokenLink) bool) ([]schema.CrawlBrokenLink, error) {
	links, err := list(d.store, BucketBrokenLinks, keep)
	if err != nil {
		return nil, err
	}
	newest(links, func(l *schema.CrawlBrokenLink) time.Time { return l.CreatedAt })
	return links, nil
}
