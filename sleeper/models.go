package sleeper

// League describes a fantasy league.
type League struct {
	LeagueID         string             `json:"league_id"`
	Name             string             `json:"name"`
	Season           string             `json:"season"`
	SeasonType       string             `json:"season_type"`
	Sport            string             `json:"sport"`
	Status           string             `json:"status"`
	TotalRosters     int                `json:"total_rosters"`
	RosterPositions  []string           `json:"roster_positions"`
	Settings         map[string]any     `json:"settings"`
	ScoringSettings  map[string]float64 `json:"scoring_settings"`
	DraftID          string             `json:"draft_id"`
	PreviousLeagueID string             `json:"previous_league_id"`
	Avatar           string             `json:"avatar"`
}

// Roster is one team's roster within a league.
type Roster struct {
	RosterID int            `json:"roster_id"`
	OwnerID  string         `json:"owner_id"`
	LeagueID string         `json:"league_id"`
	Players  []string       `json:"players"`
	Starters []string       `json:"starters"`
	Reserve  []string       `json:"reserve"`
	Settings RosterSettings `json:"settings"`
}

// RosterSettings holds a roster's season record and points.
type RosterSettings struct {
	Wins           int `json:"wins"`
	Losses         int `json:"losses"`
	Ties           int `json:"ties"`
	FPTS           int `json:"fpts"`
	FPTSDecimal    int `json:"fpts_decimal"`
	FPTSAgainst    int `json:"fpts_against"`
	FPTSAgainstDec int `json:"fpts_against_decimal"`
	WaiverPosition int `json:"waiver_position"`
	WaiverBudget   int `json:"waiver_budget_used"`
}

// LeagueUser is a league member, including display metadata.
type LeagueUser struct {
	UserID      string            `json:"user_id"`
	DisplayName string            `json:"display_name"`
	Avatar      string            `json:"avatar"`
	IsOwner     bool              `json:"is_owner"`
	Metadata    map[string]string `json:"metadata"`
}

// TeamName returns the user's custom team name, falling back to the
// display name when none is set.
func (u LeagueUser) TeamName() string {
	if name, ok := u.Metadata["team_name"]; ok && name != "" {
		return name
	}
	return u.DisplayName
}

// User is a Sleeper account looked up by name.
type User struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Avatar      string `json:"avatar"`
}

// Draft describes a league draft.
type Draft struct {
	DraftID        string         `json:"draft_id"`
	LeagueID       string         `json:"league_id"`
	Type           string         `json:"type"`
	Status         string         `json:"status"`
	Season         string         `json:"season"`
	SeasonType     string         `json:"season_type"`
	Sport          string         `json:"sport"`
	StartTime      int64          `json:"start_time"`
	Settings       map[string]int `json:"settings"`
	DraftOrder     map[string]int `json:"draft_order"`
	SlotToRosterID map[string]int `json:"slot_to_roster_id"`
}

// DraftPick is a single selection within a draft.
type DraftPick struct {
	DraftID   string            `json:"draft_id"`
	PlayerID  string            `json:"player_id"`
	PickedBy  string            `json:"picked_by"`
	RosterID  int               `json:"roster_id"`
	Round     int               `json:"round"`
	DraftSlot int               `json:"draft_slot"`
	PickNo    int               `json:"pick_no"`
	IsKeeper  bool              `json:"is_keeper"`
	Metadata  map[string]string `json:"metadata"`
}

// TradedPick is a future draft pick that changed hands.
type TradedPick struct {
	Season          string `json:"season"`
	Round           int    `json:"round"`
	RosterID        int    `json:"roster_id"`
	PreviousOwnerID int    `json:"previous_owner_id"`
	OwnerID         int    `json:"owner_id"`
}

// Player is an entry in the full player directory.
type Player struct {
	PlayerID         string   `json:"player_id"`
	FirstName        string   `json:"first_name"`
	LastName         string   `json:"last_name"`
	FullName         string   `json:"full_name"`
	Position         string   `json:"position"`
	FantasyPositions []string `json:"fantasy_positions"`
	Team             string   `json:"team"`
	Number           int      `json:"number"`
	Status           string   `json:"status"`
	InjuryStatus     string   `json:"injury_status"`
	Age              int      `json:"age"`
	YearsExp         int      `json:"years_exp"`
}

// TrendingPlayer is a player id with its add or drop count over the
// requested lookback window.
type TrendingPlayer struct {
	PlayerID string `json:"player_id"`
	Count    int    `json:"count"`
}

// Matchup is one roster's side of a weekly matchup. Rosters sharing a
// MatchupID face each other.
type Matchup struct {
	RosterID       int                `json:"roster_id"`
	MatchupID      int                `json:"matchup_id"`
	Points         float64            `json:"points"`
	Players        []string           `json:"players"`
	Starters       []string           `json:"starters"`
	StartersPoints []float64          `json:"starters_points"`
	PlayersPoints  map[string]float64 `json:"players_points"`
}

// Transaction is a roster move: trade, waiver claim, or free-agent pickup.
type Transaction struct {
	TransactionID string         `json:"transaction_id"`
	Type          string         `json:"type"`
	Status        string         `json:"status"`
	Creator       string         `json:"creator"`
	Created       int64          `json:"created"`
	Week          int            `json:"leg"`
	RosterIDs     []int          `json:"roster_ids"`
	Adds          map[string]int `json:"adds"`
	Drops         map[string]int `json:"drops"`
	DraftPicks    []TradedPick   `json:"draft_picks"`
}

// SeasonState reports where the sport currently is in its calendar.
type SeasonState struct {
	Week            int    `json:"week"`
	DisplayWeek     int    `json:"display_week"`
	Leg             int    `json:"leg"`
	Season          string `json:"season"`
	SeasonType      string `json:"season_type"`
	LeagueSeason    string `json:"league_season"`
	PreviousSeason  string `json:"previous_season"`
	SeasonStartDate string `json:"season_start_date"`
}
