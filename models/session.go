package models

import "time"

// Scoring configuration limits.
const (
	ScoreCap         = 30
	DefaultTargetPts = 21
	DefaultBestOf    = 1
)

// SessionConfig is the scoring configuration of the active session.
type SessionConfig struct {
	TargetPoints int `json:"target_points"` // 11 or 21
	BestOf       int `json:"best_of"`       // 1, 2 or 3
}

// Normalize clamps unknown values back to the defaults, mirroring how a
// loaded snapshot from an older version is repaired.
func (c *SessionConfig) Normalize() {
	if c.TargetPoints != 11 && c.TargetPoints != 21 {
		c.TargetPoints = DefaultTargetPts
	}
	if c.BestOf < 1 || c.BestOf > 3 {
		c.BestOf = DefaultBestOf
	}
}

// Event is one club session, kept for billing/participation history.
type Event struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	StartedAt    time.Time `json:"started_at"`
	Status       string    `json:"status"` // active, ended
	Participants []string  `json:"participants"`
}

// SystemSettings is the admin-controlled configuration.
type SystemSettings struct {
	TotalCourts       int           `json:"total_courts"`
	SessionActive     bool          `json:"session_active"`
	CurrentEventID    string        `json:"current_event_id,omitempty"`
	Config            SessionConfig `json:"config"`
	AutoMatchCourts   map[int]bool  `json:"auto_match_courts"`
	SuggestedCooldown int           `json:"suggested_cooldown_min"`
}

// Snapshot is the whole world state, the unit of persistence. Load/save are
// all-or-nothing; the format is owned by this package and treated as opaque
// by the stores.
type Snapshot struct {
	Settings SystemSettings     `json:"settings"`
	ModIDs   []string           `json:"mod_ids"`
	Players  map[string]*Player `json:"players"`
	Events   map[string]*Event  `json:"events"`
	Courts   map[int]*Match     `json:"courts"`
	Ledger   []LedgerEntry      `json:"ledger"`
	History  []MatchRecord      `json:"history"`
}

// NewSnapshot returns an empty world with defaults applied.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Settings: SystemSettings{
			TotalCourts: 2,
			Config: SessionConfig{
				TargetPoints: DefaultTargetPts,
				BestOf:       DefaultBestOf,
			},
			AutoMatchCourts: make(map[int]bool),
		},
		Players: make(map[string]*Player),
		Events:  make(map[string]*Event),
		Courts:  make(map[int]*Match),
	}
}
