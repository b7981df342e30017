// Package club owns the whole in-memory world of a badminton session:
// roster, courts, diversity ledger and settings. Every mutation happens
// under one mutex because the invariants cut across players, matches and
// the ledger. Persistence is a write-behind snapshot through Store.
package club

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"izesquad-api/models"
)

// Store is the injected persistence boundary. Load and save are
// all-or-nothing; the club never depends on the storage format.
type Store interface {
	Load() (*models.Snapshot, error)
	Save(*models.Snapshot) error
}

type Club struct {
	mu         sync.Mutex
	store      Store
	superAdmin string
	state      *models.Snapshot
	dirty      bool
}

// New loads the last snapshot from the store and repairs defaults. A load
// error is not fatal: the club starts from an empty world and logs, so a
// corrupt snapshot cannot take the service down.
func New(store Store, superAdminID string) *Club {
	snap, err := store.Load()
	if err != nil {
		log.Printf("snapshot load failed, starting empty: %v", err)
		snap = nil
	}
	if snap == nil {
		snap = models.NewSnapshot()
	}
	c := &Club{store: store, superAdmin: superAdminID, state: snap}
	c.normalizeLocked()
	return c
}

// Flush writes the current snapshot if anything changed since the last
// flush. The copy is taken under the lock; the save happens outside it so
// request latency is never coupled to storage latency. On failure memory
// stays authoritative and the dirty flag is restored for the next attempt.
func (c *Club) Flush() error {
	c.mu.Lock()
	if !c.dirty {
		c.mu.Unlock()
		return nil
	}
	snap, err := cloneSnapshot(c.state)
	if err != nil {
		c.mu.Unlock()
		return err
	}
	c.dirty = false
	c.mu.Unlock()

	if err := c.store.Save(snap); err != nil {
		c.mu.Lock()
		c.dirty = true
		c.mu.Unlock()
		log.Printf("snapshot save failed, will retry: %v", err)
		return err
	}
	return nil
}

// Tick advances countdowns, clears expired rests, refreshes the cooldown
// suggestion and fills auto-match courts. It is idempotent and safe to call
// from both the scheduler and dashboard reads.
func (c *Club) Tick() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tickLocked(time.Now())
}

func (c *Club) markDirtyLocked() {
	c.dirty = true
}

func (c *Club) isStaffLocked(id string) bool {
	if id == c.superAdmin {
		return true
	}
	for _, m := range c.state.ModIDs {
		if m == id {
			return true
		}
	}
	return false
}

func (c *Club) playerLocked(id string) (*models.Player, error) {
	p, ok := c.state.Players[id]
	if !ok {
		return nil, ErrPlayerNotFound
	}
	return p, nil
}

func (c *Club) courtExistsLocked(courtID int) bool {
	return courtID >= 1 && courtID <= c.state.Settings.TotalCourts
}

// normalizeLocked repairs a loaded snapshot: nil maps, out-of-range config
// and court bookkeeping for the configured court count.
func (c *Club) normalizeLocked() {
	s := c.state
	if s.Players == nil {
		s.Players = make(map[string]*models.Player)
	}
	if s.Events == nil {
		s.Events = make(map[string]*models.Event)
	}
	if s.Courts == nil {
		s.Courts = make(map[int]*models.Match)
	}
	if s.Settings.AutoMatchCourts == nil {
		s.Settings.AutoMatchCourts = make(map[int]bool)
	}
	if s.Settings.TotalCourts < 1 {
		s.Settings.TotalCourts = 2
	}
	s.Settings.Config.Normalize()
	c.refreshCourtsLocked()
}

// refreshCourtsLocked drops court state beyond the configured total.
func (c *Club) refreshCourtsLocked() {
	total := c.state.Settings.TotalCourts
	for id := range c.state.Courts {
		if id > total {
			delete(c.state.Courts, id)
		}
	}
	for id := range c.state.Settings.AutoMatchCourts {
		if id > total {
			delete(c.state.Settings.AutoMatchCourts, id)
		}
	}
}

func cloneSnapshot(s *models.Snapshot) (*models.Snapshot, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	var out models.Snapshot
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
