package cache

import "net/url"

// RequestKey identifies a cached response by endpoint path and query
// parameters. Two requests that share a path but differ in parameters get
// distinct keys, so semantically distinct responses never collide.
//
// Contract:
// - Determinism: the same endpoint and parameters must produce the same key,
//   regardless of the order parameters were added in.
type RequestKey struct {
	// Endpoint is the resource path relative to the API base URL,
	// e.g. "/league/123/rosters".
	Endpoint string

	// Params holds the query parameters, if any.
	Params url.Values
}

// NewKey builds a RequestKey for an endpoint with no query parameters.
func NewKey(endpoint string) RequestKey {
	return RequestKey{Endpoint: endpoint}
}

// NewKeyWithParams builds a RequestKey for an endpoint with query parameters.
func NewKeyWithParams(endpoint string, params url.Values) RequestKey {
	return RequestKey{Endpoint: endpoint, Params: params}
}

// String returns the canonical form of the key.
// Format: <endpoint> or <endpoint>?<encoded params>
// url.Values.Encode sorts parameters by key, so the result is deterministic.
func (k RequestKey) String() string {
	if len(k.Params) == 0 {
		return k.Endpoint
	}
	return k.Endpoint + "?" + k.Params.Encode()
}

// Validate checks that the canonical form is a usable cache key.
func (k RequestKey) Validate() error {
	return ValidateKey(k.String())
}
