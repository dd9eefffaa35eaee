package sleeper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jonwraymond/leagueops/cache"
	"github.com/jonwraymond/leagueops/observe"
)

// DefaultBaseURL is the public Sleeper API endpoint.
const DefaultBaseURL = "https://api.sleeper.app/v1"

// DefaultSport is the sport segment used in player and state endpoints.
const DefaultSport = "nfl"

// Config configures the API client.
type Config struct {
	// BaseURL is the API root every request path is appended to.
	// Default: DefaultBaseURL.
	BaseURL string

	// Sport selects the player directory and season state endpoints.
	// Default: DefaultSport.
	Sport string

	// Policy sets the freshness windows for cached responses.
	// Zero value disables caching; use cache.DefaultPolicy() for the
	// standard 5m/24h windows.
	Policy cache.Policy

	// Cache is the response store. If nil, a new in-memory cache is used.
	Cache cache.Cache

	// HTTPClient is the HTTP client to use. If nil, a default client with
	// no timeout is used; a hung request then blocks its caller until the
	// context is canceled.
	HTTPClient *http.Client

	// Logger receives request logs. If nil, logging is disabled.
	Logger observe.Logger

	// Tracer receives request spans. If nil, tracing is disabled.
	Tracer observe.Tracer

	// Instruments receives request metrics. If nil, metrics are disabled.
	Instruments observe.Instruments
}

// Client is the single point of contact with the remote service. It owns
// the response cache and enforces uniform error surfacing. Construct one
// per process and share it by reference; the cache lives as long as the
// client does.
type Client struct {
	baseURL     string
	sport       string
	policy      cache.Policy
	cache       cache.Cache
	httpClient  *http.Client
	logger      observe.Logger
	tracer      observe.Tracer
	instruments observe.Instruments
}

// New creates a new client.
func New(cfg Config) *Client {
	// Apply defaults
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Sport == "" {
		cfg.Sport = DefaultSport
	}
	if cfg.Cache == nil {
		cfg.Cache = cache.NewMemoryCache()
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{}
	}
	if cfg.Logger == nil {
		cfg.Logger = observe.NewNoopLogger()
	}
	if cfg.Tracer == nil {
		cfg.Tracer = observe.NewNoopTracer()
	}
	if cfg.Instruments == nil {
		cfg.Instruments = observe.NewNoopInstruments()
	}

	return &Client{
		baseURL:     cfg.BaseURL,
		sport:       cfg.Sport,
		policy:      cfg.Policy,
		cache:       cfg.Cache,
		httpClient:  cfg.HTTPClient,
		logger:      cfg.Logger,
		tracer:      cfg.Tracer,
		instruments: cfg.Instruments,
	}
}

// FetchResource returns the raw payload for key, serving it from the cache
// when useCache is true and a fresh entry exists. Otherwise it performs the
// HTTP GET and stores the body under key with the freshness window for
// class. Failures are logged and returned unmodified; they are never cached
// and never retried.
func (c *Client) FetchResource(ctx context.Context, resource string, key cache.RequestKey, class cache.Class, useCache bool) ([]byte, error) {
	meta := observe.RequestMeta{
		Resource:   resource,
		Endpoint:   key.Endpoint,
		CacheClass: class.String(),
	}

	ctx, span := c.tracer.StartSpan(ctx, meta)
	start := time.Now()

	var (
		payload []byte
		hit     bool
		err     error
	)
	if useCache {
		payload, hit, err = cache.Fetch(ctx, c.cache, key, c.policy, class, func(ctx context.Context) ([]byte, error) {
			return c.get(ctx, key)
		})
	} else {
		// Bypass the cache read but still refresh the stored entry.
		payload, err = c.get(ctx, key)
		if err == nil {
			_ = c.cache.Set(ctx, key, payload, c.policy.TTLFor(class))
		}
	}

	duration := time.Since(start)
	c.tracer.EndSpan(span, err)
	c.instruments.RecordRequest(ctx, meta, duration, hit, err)

	reqLogger := c.logger.WithRequest(meta)
	fields := []observe.Field{
		{Key: "duration_ms", Value: float64(duration.Milliseconds())},
		{Key: "cache_hit", Value: hit},
	}
	if err != nil {
		fields = append(fields, observe.Field{Key: "error", Value: err.Error()})
		reqLogger.Error(ctx, "request failed", fields...)
		return nil, err
	}
	reqLogger.Debug(ctx, "request completed", fields...)

	return payload, nil
}

// get performs the HTTP GET for key against the configured base URL.
func (c *Client) get(ctx context.Context, key cache.RequestKey) ([]byte, error) {
	target := c.baseURL + key.String()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("sleeper: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sleeper: GET %s: %w", key.Endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RequestError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Endpoint:   key.Endpoint,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("sleeper: read body %s: %w", key.Endpoint, err)
	}

	return body, nil
}

// getJSON fetches key and decodes the payload into out.
func (c *Client) getJSON(ctx context.Context, resource string, key cache.RequestKey, class cache.Class, useCache bool, out any) error {
	payload, err := c.FetchResource(ctx, resource, key, class, useCache)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("sleeper: decode %s: %w", key.Endpoint, err)
	}
	return nil
}

// ClearCache empties the response cache unconditionally. There is no
// partial clear by key or class.
func (c *Client) ClearCache(ctx context.Context) error {
	return c.cache.Clear(ctx)
}

// Ping verifies the remote API is reachable by fetching the season state
// endpoint. The cache is bypassed so the probe always exercises the network.
func (c *Client) Ping(ctx context.Context) error {
	key := cache.NewKey("/state/" + c.sport)
	_, err := c.FetchResource(ctx, "state", key, cache.ClassStandard, false)
	return err
}
