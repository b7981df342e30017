package models

// Request bodies. The acting player id travels in the body; authentication
// is the reverse proxy's concern.

type LoginRequest struct {
	UserID      string `json:"user_id" binding:"required"`
	DisplayName string `json:"display_name"`
	PictureURL  string `json:"picture_url"`
}

type PlayerActionRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

type PairRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	TargetID string `json:"target_id" binding:"required"`
}

type PairResponseRequest struct {
	UserID string `json:"user_id" binding:"required"`
	FromID string `json:"from_id" binding:"required"`
	Accept bool   `json:"accept"`
}

type CourtActionRequest struct {
	UserID  string `json:"user_id" binding:"required"`
	CourtID int    `json:"court_id" binding:"required"`
}

type ManualMatchRequest struct {
	UserID    string   `json:"user_id" binding:"required"`
	CourtID   int      `json:"court_id" binding:"required"`
	PlayerIDs []string `json:"player_ids" binding:"required"`
}

type SubmitResultRequest struct {
	UserID  string     `json:"user_id" binding:"required"`
	CourtID int        `json:"court_id" binding:"required"`
	Sets    []SetScore `json:"sets" binding:"required"`
}

type SessionRequest struct {
	UserID       string `json:"user_id" binding:"required"`
	Action       string `json:"action" binding:"required,oneof=start end"`
	TargetPoints int    `json:"target_points"`
	BestOf       int    `json:"best_of"`
}

type SetCourtsRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Count  int    `json:"count" binding:"required"`
}

type AutoMatchRequest struct {
	UserID  string `json:"user_id" binding:"required"`
	CourtID int    `json:"court_id" binding:"required"`
	Enabled bool   `json:"enabled"`
}

type SetRatingRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	TargetID string `json:"target_id" binding:"required"`
	Rating   int    `json:"rating"`
}

type ManageModRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	TargetID string `json:"target_id" binding:"required"`
	Action   string `json:"action" binding:"required,oneof=promote demote"`
}

// Read-model payloads.

type PlayerSummary struct {
	ID            string `json:"id"`
	Nickname      string `json:"nickname"`
	PictureURL    string `json:"picture_url"`
	Status        string `json:"status"`
	RatingDisplay string `json:"rating_display"`
	Commitment    string `json:"commitment,omitempty"`
	WaitingMin    int    `json:"waiting_min,omitempty"`
	WinRate       *int   `json:"win_rate,omitempty"`
	SetsWon       int    `json:"sets_won"`
	SetsLost      int    `json:"sets_lost"`
	PointsFor     int    `json:"points_for"`
	PointsAgainst int    `json:"points_against"`
	IsMod         bool   `json:"is_mod"`
}

type CourtView struct {
	MatchID     string   `json:"match_id"`
	State       string   `json:"state"`
	TeamA       []string `json:"team_a"`
	TeamB       []string `json:"team_b"`
	TeamANames  []string `json:"team_a_names"`
	TeamBNames  []string `json:"team_b_names"`
	StartsInSec int      `json:"starts_in_sec"`
	ElapsedSec  int      `json:"elapsed_sec"`
	AutoMatch   bool     `json:"auto_match"`
}

type Dashboard struct {
	Settings     SystemSettings             `json:"settings"`
	Courts       map[int]*CourtView         `json:"courts"`
	Queue        []PlayerSummary            `json:"queue"`
	QueueCount   int                        `json:"queue_count"`
	PlayingCount int                        `json:"playing_count"`
	AllPlayers   []PlayerSummary            `json:"all_players"`
	Leaderboards map[string][]PlayerSummary `json:"leaderboards"`
	History      []MatchRecord              `json:"history"`
	Events       []*Event                   `json:"events"`
}

type Profile struct {
	PlayerSummary
	Calibrating bool          `json:"calibrating"`
	CalGames    int           `json:"cal_games"`
	LastMatches []MatchRecord `json:"last_matches"`
}
