// Package cache stores serialized analysis reports keyed by input text.
// Cached entries are derived annotations only and expire with their TTL;
// documents themselves are never persisted.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for report caching.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a cache key from document text.
func Key(text string) string {
	hash := sha256.Sum256([]byte(text))
	return "clauselens:v1:" + hex.EncodeToString(hash[:])
}
