package cache

import (
	"context"
	"errors"
	"strings"
	"time"
)

// MaxKeyLength is the maximum allowed length for a cache key.
const MaxKeyLength = 512

// Sentinel errors for cache operations.
var (
	ErrNilCache   = errors.New("cache: cache is nil")
	ErrInvalidKey = errors.New("cache: key is invalid")
	ErrKeyTooLong = errors.New("cache: key exceeds max length")
)

// Cache is the interface for memoizing remote API responses.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: methods should honor cancellation/deadlines where applicable.
// - Errors: Get should never error; it returns (nil, false) on miss.
type Cache interface {
	// Get retrieves a cached payload. Returns (nil, false) on miss or expiry.
	Get(ctx context.Context, key RequestKey) ([]byte, bool)

	// Set stores a payload with the given TTL. TTL=0 means no caching.
	Set(ctx context.Context, key RequestKey, value []byte, ttl time.Duration) error

	// Delete removes a cached payload. Idempotent - no error on miss.
	Delete(ctx context.Context, key RequestKey) error

	// Clear removes every entry unconditionally. There is no partial
	// clear by key or resource class.
	Clear(ctx context.Context) error

	// Len reports the number of stored entries, expired or not.
	Len() int
}

// ValidateKey checks if a canonical key string is valid for caching.
func ValidateKey(key string) error {
	if key == "" || strings.TrimSpace(key) == "" {
		return ErrInvalidKey
	}
	if len(key) > MaxKeyLength {
		return ErrKeyTooLong
	}
	// Reject keys with newlines or carriage returns
	if strings.ContainsAny(key, "\n\r") {
		return ErrInvalidKey
	}
	return nil
}
