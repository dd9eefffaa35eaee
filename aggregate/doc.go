// Package aggregate provides composite read operations over the sleeper
// client. Each operation issues multiple underlying requests and folds the
// results into a single success/failure envelope, so consumers never need
// error handling for multi-request flows: failures are captured and
// reported in-band, never thrown past the envelope boundary.
package aggregate
