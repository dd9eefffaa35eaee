// Package cache provides request memoization for remote API responses.
//
// It provides a Cache interface with a memory implementation, typed request
// keys built from endpoint paths and query parameters, and freshness policies
// with per-resource-class TTLs.
package cache
