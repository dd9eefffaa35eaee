// Package observe provides observability primitives for remote API requests.
//
// It is a pure instrumentation library: no transport, no caching, no I/O
// beyond exporter setup. The sleeper client wires the observer's tracer,
// instruments, and logger into its request path.
package observe
