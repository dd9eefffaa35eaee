package aggregate

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonwraymond/leagueops/observe"
	"github.com/jonwraymond/leagueops/sleeper"
)

// NoDraftsMessage is the envelope error reported when a league has no drafts.
const NoDraftsMessage = "No drafts found for this league"

// LeagueResult is the envelope for LeagueData. On failure, Error carries the
// message of the first failing sub-request and the data fields are empty;
// partial results are never surfaced.
type LeagueResult struct {
	Success bool
	League  *sleeper.League
	Rosters []sleeper.Roster
	Users   []sleeper.LeagueUser
	Error   string
}

// DraftResult is the envelope for DraftData.
type DraftResult struct {
	Success bool
	Draft   *sleeper.Draft
	Picks   []sleeper.DraftPick
	Error   string
}

// Aggregator runs composite reads against a shared client.
type Aggregator struct {
	client *sleeper.Client
	logger observe.Logger
}

// New creates an Aggregator. If logger is nil, logging is disabled.
func New(client *sleeper.Client, logger observe.Logger) *Aggregator {
	if logger == nil {
		logger = observe.NewNoopLogger()
	}
	return &Aggregator{
		client: client,
		logger: logger,
	}
}

// LeagueData fetches a league's info, rosters, and users concurrently and
// waits for all three. Any single failure fails the whole operation.
func (a *Aggregator) LeagueData(ctx context.Context, leagueID string) LeagueResult {
	var (
		league  *sleeper.League
		rosters []sleeper.Roster
		users   []sleeper.LeagueUser
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		league, err = a.client.League(gctx, leagueID)
		return err
	})
	g.Go(func() error {
		var err error
		rosters, err = a.client.Rosters(gctx, leagueID)
		return err
	})
	g.Go(func() error {
		var err error
		users, err = a.client.Users(gctx, leagueID)
		return err
	})

	if err := g.Wait(); err != nil {
		a.logger.Error(ctx, "league data fetch failed",
			observe.Field{Key: "league_id", Value: leagueID},
			observe.Field{Key: "error", Value: err.Error()},
		)
		return LeagueResult{Error: err.Error()}
	}

	return LeagueResult{
		Success: true,
		League:  league,
		Rosters: rosters,
		Users:   users,
	}
}

// DraftData fetches a league's drafts and, when at least one exists, the
// picks of the first draft in service-provided order. A league with no
// drafts is an envelope failure, not an error.
func (a *Aggregator) DraftData(ctx context.Context, leagueID string) DraftResult {
	drafts, err := a.client.Drafts(ctx, leagueID)
	if err != nil {
		a.logger.Error(ctx, "draft list fetch failed",
			observe.Field{Key: "league_id", Value: leagueID},
			observe.Field{Key: "error", Value: err.Error()},
		)
		return DraftResult{Error: err.Error()}
	}

	if len(drafts) == 0 {
		return DraftResult{Error: NoDraftsMessage}
	}

	draft := drafts[0]
	picks, err := a.client.DraftPicks(ctx, draft.DraftID)
	if err != nil {
		a.logger.Error(ctx, "draft picks fetch failed",
			observe.Field{Key: "draft_id", Value: draft.DraftID},
			observe.Field{Key: "error", Value: err.Error()},
		)
		return DraftResult{Error: err.Error()}
	}

	return DraftResult{
		Success: true,
		Draft:   &draft,
		Picks:   picks,
	}
}
