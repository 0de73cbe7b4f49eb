//
// Copyright (c) 2025-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package interfaces

type Cache interface {
	TTL(int)                    // Default time to live in seconds
	Clear()                     // Clear the cache
	Set(string, []byte)         // Set an item using the default TTL
	SetFor(string, []byte, int) // Set an item with its own TTL in seconds
	Get(string) []byte          // Get an item, nil if missing or expired
	Delete(string)              // Remove a single item
	DeletePrefix(string)        // Remove all items whose key starts with the prefix
}
