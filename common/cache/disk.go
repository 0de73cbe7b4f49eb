/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package cache

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/peterbourgon/diskv/v3"

	"github.com/UnifyEM/deadlink-watchdog/common/interfaces"
)

// maxKeyLength keeps encoded file names within common filesystem limits.
// Longer keys are simply not cached.
const maxKeyLength = 120

// Disk implements the Cache interface on top of diskv so that cached
// responses survive between CLI invocations. Each record starts with an
// 8 byte big-endian expiry time in unix nanoseconds.
type Disk struct {
	mu    sync.Mutex
	clock clockwork.Clock
	d     *diskv.Diskv
	ttl   int
}

// NewDisk creates (if necessary) and opens a disk cache rooted at dir
func NewDisk(dir string, ttl int, opts ...Option) (interfaces.Cache, error) {
	if dir == "" {
		return nil, fmt.Errorf("cache directory is required")
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("error creating cache directory: %w", err)
	}

	o := buildOptions(opts)
	return &Disk{
		clock: o.clock,
		ttl:   ttl,
		d: diskv.New(diskv.Options{
			BasePath:     dir,
			Transform:    func(string) []string { return []string{} },
			CacheSizeMax: 1 << 20,
		}),
	}, nil
}

// encodeKey maps arbitrary keys to file names. Hex encoding keeps key
// prefixes as file name prefixes.
func encodeKey(key string) string {
	return hex.EncodeToString([]byte(key))
}

func (c *Disk) TTL(ttl int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ttl = ttl
}

func (c *Disk) Clear() {
	_ = c.d.EraseAll()
}

func (c *Disk) Set(key string, data []byte) {
	c.mu.Lock()
	ttl := c.ttl
	c.mu.Unlock()
	c.SetFor(key, data, ttl)
}

func (c *Disk) SetFor(key string, data []byte, ttl int) {
	if ttl <= 0 || len(key) > maxKeyLength {
		return
	}

	expires := c.clock.Now().Add(time.Duration(ttl) * time.Second)
	record := make([]byte, 8, 8+len(data))
	binary.BigEndian.PutUint64(record, uint64(expires.UnixNano()))
	record = append(record, data...)

	_ = c.d.Write(encodeKey(key), record)
}

func (c *Disk) Get(key string) []byte {
	if len(key) > maxKeyLength {
		return nil
	}

	name := encodeKey(key)
	record, err := c.d.Read(name)
	if err != nil || len(record) < 8 {
		return nil
	}

	expires := time.Unix(0, int64(binary.BigEndian.Uint64(record[:8])))
	if !c.clock.Now().Before(expires) {
		_ = c.d.Erase(name)
		return nil
	}
	return record[8:]
}

func (c *Disk) Delete(key string) {
	_ = c.d.Erase(encodeKey(key))
}

func (c *Disk) DeletePrefix(prefix string) {
	var names []string
	for name := range c.d.KeysPrefix(encodeKey(prefix), nil) {
		names = append(names, name)
	}
	for _, name := range names {
		_ = c.d.Erase(name)
	}
}
