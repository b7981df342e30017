package models

import "time"

// MatchState is the live-match half of the court lifecycle. A court with no
// match is simply absent from the courts map.
type MatchState string

const (
	MatchCalled  MatchState = "called" // countdown before play starts
	MatchPlaying MatchState = "playing"
)

// RestorePoint captures the pieces of a participant's queue state that a
// cancellation must roll back.
type RestorePoint struct {
	QueueSince *time.Time `json:"queue_since,omitempty"`
	Commitment string     `json:"commitment,omitempty"`
}

// Match is the live match occupying one court.
type Match struct {
	ID      string     `json:"id"`
	CourtID int        `json:"court_id"`
	State   MatchState `json:"state"`
	Source  string     `json:"source"` // auto, manual, manual_pick

	TeamA []string `json:"team_a"` // player ids, exactly 2
	TeamB []string `json:"team_b"`

	CreatedAt      time.Time  `json:"created_at"`
	ScheduledStart time.Time  `json:"scheduled_start"`
	ActualStart    *time.Time `json:"actual_start,omitempty"`

	Restore map[string]RestorePoint `json:"restore"`
}

// Participants returns all four player ids.
func (m *Match) Participants() []string {
	out := make([]string, 0, 4)
	out = append(out, m.TeamA...)
	out = append(out, m.TeamB...)
	return out
}

// HasParticipant reports whether the player is on either team.
func (m *Match) HasParticipant(id string) bool {
	for _, pid := range m.Participants() {
		if pid == id {
			return true
		}
	}
	return false
}

// SetScore is one submitted set, team A points vs team B points.
type SetScore struct {
	A int `json:"a"`
	B int `json:"b"`
}

// MatchRecord is an entry in the settled-match history.
type MatchRecord struct {
	ID          string           `json:"id"`
	CourtID     int              `json:"court_id"`
	PlayedAt    time.Time        `json:"played_at"`
	WinnerTeam  string           `json:"winner_team"` // "A" or "B"
	Sets        []SetScore       `json:"sets"`
	SetsA       int              `json:"sets_a"`
	SetsB       int              `json:"sets_b"`
	PointsA     int              `json:"points_a"`
	PointsB     int              `json:"points_b"`
	DurationSec int              `json:"duration_sec"`
	TeamA       []string         `json:"team_a"`
	TeamB       []string         `json:"team_b"`
	Deltas      map[string]int   `json:"deltas"` // rating delta per player
}
