// Package health provides availability probes for the remote fantasy API.
//
// A Checker reports whether a component is usable. The only built-in checker
// is RemoteChecker, which pings the API's season state endpoint through the
// client so the probe follows the same transport as real requests.
//
//	checker := health.NewRemoteChecker(client, health.RemoteCheckerConfig{
//	    Timeout: 5 * time.Second,
//	})
//	result := checker.Check(ctx)
//	if result.Status != health.StatusHealthy {
//	    log.Printf("remote API unavailable: %s", result.Message)
//	}
package health
