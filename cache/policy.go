package cache

import "time"

// Class selects which freshness window applies to a resource.
type Class int

const (
	// ClassStandard is the freshness class for most resources: short-lived
	// data such as rosters, matchups, and transactions.
	ClassStandard Class = iota

	// ClassBulk is the freshness class for large, slow-moving payloads.
	// The full player directory uses this class.
	ClassBulk
)

func (c Class) String() string {
	switch c {
	case ClassBulk:
		return "bulk"
	default:
		return "standard"
	}
}

// Policy configures per-class freshness windows.
type Policy struct {
	// StandardTTL is the freshness window for ClassStandard resources.
	// If zero, caching of standard resources is disabled.
	StandardTTL time.Duration

	// BulkTTL is the freshness window for ClassBulk resources.
	// If zero, caching of bulk resources is disabled.
	BulkTTL time.Duration
}

// DefaultPolicy returns the default freshness policy.
// StandardTTL: 5 minutes, BulkTTL: 24 hours.
func DefaultPolicy() Policy {
	return Policy{
		StandardTTL: 5 * time.Minute,
		BulkTTL:     24 * time.Hour,
	}
}

// NoCachePolicy returns a policy that disables caching entirely.
func NoCachePolicy() Policy {
	return Policy{}
}

// ShouldCache returns true if caching is enabled for any class.
func (p Policy) ShouldCache() bool {
	return p.StandardTTL > 0 || p.BulkTTL > 0
}

// TTLFor returns the freshness window for the given class.
func (p Policy) TTLFor(class Class) time.Duration {
	switch class {
	case ClassBulk:
		return p.BulkTTL
	default:
		return p.StandardTTL
	}
}
