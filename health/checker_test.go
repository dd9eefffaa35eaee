package health

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonwraymond/leagueops/sleeper"
)

type fakePinger struct {
	err   error
	delay time.Duration
}

func (p *fakePinger) Ping(ctx context.Context) error {
	if p.delay > 0 {
		select {
		case <-time.After(p.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return p.err
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusHealthy, "healthy"},
		{StatusDegraded, "degraded"},
		{StatusUnhealthy, "unhealthy"},
		{Status(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.status.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRemoteCheckerDefaults(t *testing.T) {
	checker := NewRemoteChecker(&fakePinger{}, RemoteCheckerConfig{})

	if checker.Name() != "remote-api" {
		t.Errorf("Name() = %q, want %q", checker.Name(), "remote-api")
	}
	if checker.timeout != DefaultCheckTimeout {
		t.Errorf("timeout = %v, want %v", checker.timeout, DefaultCheckTimeout)
	}
	if checker.slowThreshold != DefaultSlowThreshold {
		t.Errorf("slowThreshold = %v, want %v", checker.slowThreshold, DefaultSlowThreshold)
	}
}

func TestRemoteCheckerHealthy(t *testing.T) {
	checker := NewRemoteChecker(&fakePinger{}, RemoteCheckerConfig{})

	result := checker.Check(context.Background())

	if result.Status != StatusHealthy {
		t.Fatalf("Status = %v, want %v (error: %v)", result.Status, StatusHealthy, result.Error)
	}
	if result.Timestamp.IsZero() {
		t.Error("Timestamp not set")
	}
}

func TestRemoteCheckerUnhealthy(t *testing.T) {
	probeErr := errors.New("connection refused")
	checker := NewRemoteChecker(&fakePinger{err: probeErr}, RemoteCheckerConfig{})

	result := checker.Check(context.Background())

	if result.Status != StatusUnhealthy {
		t.Fatalf("Status = %v, want %v", result.Status, StatusUnhealthy)
	}
	if !errors.Is(result.Error, probeErr) {
		t.Errorf("Error = %v, want %v", result.Error, probeErr)
	}
}

func TestRemoteCheckerTimeout(t *testing.T) {
	checker := NewRemoteChecker(
		&fakePinger{delay: time.Second},
		RemoteCheckerConfig{Timeout: 20 * time.Millisecond},
	)

	result := checker.Check(context.Background())

	if result.Status != StatusUnhealthy {
		t.Fatalf("Status = %v, want %v", result.Status, StatusUnhealthy)
	}
	if !errors.Is(result.Error, ErrCheckTimeout) {
		t.Errorf("Error = %v, want %v", result.Error, ErrCheckTimeout)
	}
}

func TestRemoteCheckerDegraded(t *testing.T) {
	checker := NewRemoteChecker(
		&fakePinger{delay: 30 * time.Millisecond},
		RemoteCheckerConfig{SlowThreshold: 10 * time.Millisecond},
	)

	result := checker.Check(context.Background())

	if result.Status != StatusDegraded {
		t.Fatalf("Status = %v, want %v", result.Status, StatusDegraded)
	}
}

func TestRemoteCheckerNilPinger(t *testing.T) {
	checker := NewRemoteChecker(nil, RemoteCheckerConfig{})

	result := checker.Check(context.Background())

	if result.Status != StatusUnhealthy {
		t.Fatalf("Status = %v, want %v", result.Status, StatusUnhealthy)
	}
	if !errors.Is(result.Error, ErrNilPinger) {
		t.Errorf("Error = %v, want %v", result.Error, ErrNilPinger)
	}
}

func TestRemoteCheckerWithClient(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/state/nfl" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		hits++
		fmt.Fprint(w, `{"week":3,"season":"2025","season_type":"regular"}`)
	}))
	defer server.Close()

	client := sleeper.New(sleeper.Config{BaseURL: server.URL})
	checker := NewRemoteChecker(client, RemoteCheckerConfig{Name: "sleeper"})

	result := checker.Check(context.Background())
	if result.Status != StatusHealthy {
		t.Fatalf("Status = %v, want %v (error: %v)", result.Status, StatusHealthy, result.Error)
	}

	// The probe bypasses the cache, so a second check hits the network again.
	checker.Check(context.Background())
	if hits != 2 {
		t.Errorf("server hits = %d, want 2", hits)
	}
}

func TestCheckerFunc(t *testing.T) {
	checker := NewCheckerFunc("custom", func(context.Context) Result {
		return Healthy("ok")
	})

	if checker.Name() != "custom" {
		t.Errorf("Name() = %q, want %q", checker.Name(), "custom")
	}
	if got := checker.Check(context.Background()); got.Status != StatusHealthy {
		t.Errorf("Status = %v, want %v", got.Status, StatusHealthy)
	}
}
