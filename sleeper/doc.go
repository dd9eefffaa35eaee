// Package sleeper provides a read-only client for the Sleeper fantasy
// football API with per-resource response memoization.
//
// Every accessor is a thin, parameter-validated wrapper over FetchResource,
// which concatenates the configured base URL with a typed request key,
// performs an HTTP GET, and caches the decoded body under the key's
// freshness class. Accessors propagate failures unmodified: the client never
// retries and never backs off, so callers must handle errors explicitly.
//
// Nothing serializes overlapping calls to the same path. Two concurrent
// calls to an uncached path may both miss and issue duplicate GETs, each
// populating the same cache key. Both requests return equivalent data for
// an idempotent GET, so this is an accepted inefficiency.
package sleeper
