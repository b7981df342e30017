package models

import "time"

// PlayerStatus tracks where a player is in the session flow.
type PlayerStatus string

const (
	StatusOffline PlayerStatus = "offline"
	StatusQueued  PlayerStatus = "queued"
	StatusResting PlayerStatus = "resting"
	StatusCalled  PlayerStatus = "called" // in a match countdown
	StatusPlaying PlayerStatus = "playing"
)

// CheckedIn reports whether the player currently occupies a queue slot.
// QueueSince must be non-nil exactly when this is true.
func (s PlayerStatus) CheckedIn() bool {
	switch s {
	case StatusQueued, StatusResting, StatusCalled, StatusPlaying:
		return true
	}
	return false
}

// CalibrationGames is the number of matches a new player must complete
// before their rating is shown and stops moving at the boosted rate.
const CalibrationGames = 10

// DefaultRating is the rating assigned on first login.
const DefaultRating = 1000

type Player struct {
	ID         string       `json:"id"`
	Nickname   string       `json:"nickname"`
	PictureURL string       `json:"picture_url"`
	Rating     int          `json:"rating"`
	Status     PlayerStatus `json:"status"`

	// Calibration counters; the player is unranked while
	// CalGames < CalibrationGames.
	CalGames  int `json:"cal_games"`
	CalWins   int `json:"cal_wins"`
	CalLosses int `json:"cal_losses"`
	CalStreak int `json:"cal_streak"` // consecutive wins during calibration

	QueueSince *time.Time `json:"queue_since,omitempty"`
	RestUntil  *time.Time `json:"rest_until,omitempty"`
	AutoRest   bool       `json:"auto_rest"`

	// Pairing. Commitment is the accepted partner id; a player holds at
	// most one outgoing request and one commitment at a time.
	Commitment       string   `json:"commitment,omitempty"`
	OutgoingRequest  string   `json:"outgoing_request,omitempty"`
	IncomingRequests []string `json:"incoming_requests,omitempty"`

	// Set-based aggregates, for display only.
	SetsWon       int `json:"sets_won"`
	SetsLost      int `json:"sets_lost"`
	PointsFor     int `json:"points_for"`
	PointsAgainst int `json:"points_against"`

	// Per-session load, reset when a session starts. Used as matchmaking
	// tie-breakers after waiting time.
	SessionGames   int `json:"session_games"`
	SessionSeconds int `json:"session_seconds"`

	LastActive time.Time `json:"last_active"`
}

// NewPlayer returns a player record with constructor-enforced defaults.
func NewPlayer(id, nickname, pictureURL string, now time.Time) *Player {
	return &Player{
		ID:         id,
		Nickname:   nickname,
		PictureURL: pictureURL,
		Rating:     DefaultRating,
		Status:     StatusOffline,
		LastActive: now,
	}
}

// Calibrating reports whether the player is still in the provisional phase.
func (p *Player) Calibrating() bool {
	return p.CalGames < CalibrationGames
}

// WinRatePercent returns the set win rate, or -1 when no sets were played.
func (p *Player) WinRatePercent() int {
	total := p.SetsWon + p.SetsLost
	if total == 0 {
		return -1
	}
	return int(float64(p.SetsWon)/float64(total)*100 + 0.5)
}
