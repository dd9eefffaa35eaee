package health

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// DefaultCheckTimeout bounds a remote probe when no timeout is configured.
const DefaultCheckTimeout = 5 * time.Second

// DefaultSlowThreshold is the probe latency above which the remote API is
// reported as degraded rather than healthy.
const DefaultSlowThreshold = 2 * time.Second

// Pinger verifies a remote dependency is reachable. *sleeper.Client
// satisfies this interface.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RemoteCheckerConfig configures a RemoteChecker.
type RemoteCheckerConfig struct {
	// Name identifies the checker. Defaults to "remote-api".
	Name string

	// Timeout bounds each probe. Defaults to DefaultCheckTimeout.
	Timeout time.Duration

	// SlowThreshold is the latency above which a successful probe is
	// reported as degraded. Defaults to DefaultSlowThreshold.
	SlowThreshold time.Duration
}

// RemoteChecker probes the remote fantasy API through a Pinger.
type RemoteChecker struct {
	pinger        Pinger
	name          string
	timeout       time.Duration
	slowThreshold time.Duration
}

var _ Checker = (*RemoteChecker)(nil)

// NewRemoteChecker creates a checker that pings the remote API.
func NewRemoteChecker(pinger Pinger, cfg RemoteCheckerConfig) *RemoteChecker {
	if cfg.Name == "" {
		cfg.Name = "remote-api"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultCheckTimeout
	}
	if cfg.SlowThreshold <= 0 {
		cfg.SlowThreshold = DefaultSlowThreshold
	}
	return &RemoteChecker{
		pinger:        pinger,
		name:          cfg.Name,
		timeout:       cfg.Timeout,
		slowThreshold: cfg.SlowThreshold,
	}
}

// Name returns the name of this checker.
func (c *RemoteChecker) Name() string {
	return c.name
}

// Check pings the remote API and classifies the outcome by latency.
func (c *RemoteChecker) Check(ctx context.Context) Result {
	if c.pinger == nil {
		return Unhealthy("no client configured", ErrNilPinger)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	err := c.pinger.Ping(ctx)
	elapsed := time.Since(start)

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return Unhealthy(
				fmt.Sprintf("probe timed out after %s", c.timeout),
				fmt.Errorf("%w: %v", ErrCheckTimeout, err),
			).WithDuration(elapsed)
		}
		return Unhealthy("probe failed", err).WithDuration(elapsed)
	}

	if elapsed > c.slowThreshold {
		return Degraded(fmt.Sprintf("probe slow: %s", elapsed)).WithDuration(elapsed)
	}
	return Healthy("remote API reachable").WithDuration(elapsed)
}
