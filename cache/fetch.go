package cache

import "context"

// FetchFunc loads a payload from the origin when the cache cannot serve it.
type FetchFunc func(ctx context.Context) ([]byte, error)

// Fetch wraps an origin load with memoization.
// On cache hit, it returns the cached payload without calling fn.
// On cache miss, it calls fn and stores the result under key with the
// freshness window for class. Errors are NOT cached.
//
// The returned bool reports whether the payload came from the cache.
//
// Nothing serializes overlapping fetches of the same key: two concurrent
// misses both call fn and race to overwrite the entry. For idempotent GETs
// both loads return equivalent data, so this is an accepted inefficiency.
func Fetch(ctx context.Context, c Cache, key RequestKey, policy Policy, class Class, fn FetchFunc) ([]byte, bool, error) {
	if c == nil {
		return nil, false, ErrNilCache
	}

	ttl := policy.TTLFor(class)

	// Caching disabled for this class - load directly
	if ttl <= 0 {
		value, err := fn(ctx)
		return value, false, err
	}

	if cached, ok := c.Get(ctx, key); ok {
		return cached, true, nil
	}

	// Cache miss - load from origin
	value, err := fn(ctx)
	if err != nil {
		// Don't cache errors
		return nil, false, err
	}

	_ = c.Set(ctx, key, value, ttl)

	return value, false, nil
}
