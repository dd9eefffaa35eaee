package sleeper

import (
	"context"
	"net/url"
	"strconv"

	"github.com/jonwraymond/leagueops/cache"
)

// Defaults for the trending players query.
const (
	DefaultTrendingLookbackHours = 24
	DefaultTrendingLimit         = 25
)

// TrendAdd and TrendDrop are the accepted trending query types.
const (
	TrendAdd  = "add"
	TrendDrop = "drop"
)

// RequestOption adjusts how a single accessor call is served.
type RequestOption func(*requestOptions)

type requestOptions struct {
	useCache bool
}

// WithoutCache skips the cache read for one call, forcing a network fetch.
// The fresh response still replaces the stored entry.
func WithoutCache() RequestOption {
	return func(o *requestOptions) { o.useCache = false }
}

// useCacheFrom resolves the cache behavior for an accessor call. Accessors
// serve from the cache by default.
func useCacheFrom(opts []RequestOption) bool {
	o := requestOptions{useCache: true}
	for _, opt := range opts {
		opt(&o)
	}
	return o.useCache
}

// League returns a league's info.
func (c *Client) League(ctx context.Context, leagueID string, opts ...RequestOption) (*League, error) {
	if leagueID == "" {
		return nil, ErrMissingLeagueID
	}
	var out League
	key := cache.NewKey("/league/" + leagueID)
	if err := c.getJSON(ctx, "league", key, cache.ClassStandard, useCacheFrom(opts), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Rosters returns every roster in a league.
func (c *Client) Rosters(ctx context.Context, leagueID string, opts ...RequestOption) ([]Roster, error) {
	if leagueID == "" {
		return nil, ErrMissingLeagueID
	}
	var out []Roster
	key := cache.NewKey("/league/" + leagueID + "/rosters")
	if err := c.getJSON(ctx, "rosters", key, cache.ClassStandard, useCacheFrom(opts), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Users returns every member of a league.
func (c *Client) Users(ctx context.Context, leagueID string, opts ...RequestOption) ([]LeagueUser, error) {
	if leagueID == "" {
		return nil, ErrMissingLeagueID
	}
	var out []LeagueUser
	key := cache.NewKey("/league/" + leagueID + "/users")
	if err := c.getJSON(ctx, "users", key, cache.ClassStandard, useCacheFrom(opts), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Drafts returns a league's drafts in service-provided order.
func (c *Client) Drafts(ctx context.Context, leagueID string, opts ...RequestOption) ([]Draft, error) {
	if leagueID == "" {
		return nil, ErrMissingLeagueID
	}
	var out []Draft
	key := cache.NewKey("/league/" + leagueID + "/drafts")
	if err := c.getJSON(ctx, "drafts", key, cache.ClassStandard, useCacheFrom(opts), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Draft returns a single draft.
func (c *Client) Draft(ctx context.Context, draftID string, opts ...RequestOption) (*Draft, error) {
	if draftID == "" {
		return nil, ErrMissingDraftID
	}
	var out Draft
	key := cache.NewKey("/draft/" + draftID)
	if err := c.getJSON(ctx, "draft", key, cache.ClassStandard, useCacheFrom(opts), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DraftPicks returns every pick made in a draft.
func (c *Client) DraftPicks(ctx context.Context, draftID string, opts ...RequestOption) ([]DraftPick, error) {
	if draftID == "" {
		return nil, ErrMissingDraftID
	}
	var out []DraftPick
	key := cache.NewKey("/draft/" + draftID + "/picks")
	if err := c.getJSON(ctx, "picks", key, cache.ClassStandard, useCacheFrom(opts), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TradedPicks returns the traded picks in a draft.
func (c *Client) TradedPicks(ctx context.Context, draftID string, opts ...RequestOption) ([]TradedPick, error) {
	if draftID == "" {
		return nil, ErrMissingDraftID
	}
	var out []TradedPick
	key := cache.NewKey("/draft/" + draftID + "/traded_picks")
	if err := c.getJSON(ctx, "traded_picks", key, cache.ClassStandard, useCacheFrom(opts), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AllPlayers returns the full player directory keyed by player id. The
// directory is a large, slow-moving payload, so it always uses the bulk
// freshness class regardless of the standard TTL.
func (c *Client) AllPlayers(ctx context.Context, opts ...RequestOption) (map[string]Player, error) {
	var out map[string]Player
	key := cache.NewKey("/players/" + c.sport)
	if err := c.getJSON(ctx, "players", key, cache.ClassBulk, useCacheFrom(opts), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPlayer returns the directory entry for playerID. The returned bool
// reports whether the player exists; an absent id is not an error. This is
// a pure lookup over AllPlayers and adds no cache entry of its own.
func (c *Client) GetPlayer(ctx context.Context, playerID string, opts ...RequestOption) (*Player, bool, error) {
	if playerID == "" {
		return nil, false, ErrMissingPlayerID
	}
	players, err := c.AllPlayers(ctx, opts...)
	if err != nil {
		return nil, false, err
	}
	player, ok := players[playerID]
	if !ok {
		return nil, false, nil
	}
	return &player, true, nil
}

// UserByName looks up a user account by username.
func (c *Client) UserByName(ctx context.Context, username string, opts ...RequestOption) (*User, error) {
	if username == "" {
		return nil, ErrMissingUsername
	}
	var out User
	key := cache.NewKey("/user/" + username)
	if err := c.getJSON(ctx, "user", key, cache.ClassStandard, useCacheFrom(opts), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TrendingPlayers returns the players most added or dropped across the
// service. trendType must be TrendAdd or TrendDrop. Non-positive
// lookbackHours and limit fall back to the defaults (24 hours, 25 players).
func (c *Client) TrendingPlayers(ctx context.Context, trendType string, lookbackHours, limit int, opts ...RequestOption) ([]TrendingPlayer, error) {
	if trendType != TrendAdd && trendType != TrendDrop {
		return nil, ErrInvalidTrendType
	}
	if lookbackHours <= 0 {
		lookbackHours = DefaultTrendingLookbackHours
	}
	if limit <= 0 {
		limit = DefaultTrendingLimit
	}

	params := url.Values{}
	params.Set("lookback_hours", strconv.Itoa(lookbackHours))
	params.Set("limit", strconv.Itoa(limit))

	var out []TrendingPlayer
	key := cache.NewKeyWithParams("/players/"+c.sport+"/trending/"+trendType, params)
	if err := c.getJSON(ctx, "trending", key, cache.ClassStandard, useCacheFrom(opts), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Matchups returns a league's matchups for a week.
func (c *Client) Matchups(ctx context.Context, leagueID string, week int, opts ...RequestOption) ([]Matchup, error) {
	if leagueID == "" {
		return nil, ErrMissingLeagueID
	}
	if week < 1 {
		return nil, ErrInvalidWeek
	}
	var out []Matchup
	key := cache.NewKey("/league/" + leagueID + "/matchups/" + strconv.Itoa(week))
	if err := c.getJSON(ctx, "matchups", key, cache.ClassStandard, useCacheFrom(opts), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Transactions returns a league's transactions for a week.
func (c *Client) Transactions(ctx context.Context, leagueID string, week int, opts ...RequestOption) ([]Transaction, error) {
	if leagueID == "" {
		return nil, ErrMissingLeagueID
	}
	if week < 1 {
		return nil, ErrInvalidWeek
	}
	var out []Transaction
	key := cache.NewKey("/league/" + leagueID + "/transactions/" + strconv.Itoa(week))
	if err := c.getJSON(ctx, "transactions", key, cache.ClassStandard, useCacheFrom(opts), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// State returns the sport's current season state.
func (c *Client) State(ctx context.Context, opts ...RequestOption) (*SeasonState, error) {
	var out SeasonState
	key := cache.NewKey("/state/" + c.sport)
	if err := c.getJSON(ctx, "state", key, cache.ClassStandard, useCacheFrom(opts), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
