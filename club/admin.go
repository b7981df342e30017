package club

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"izesquad-api/models"
)

const maxCourts = 12

// StartSession opens a new session with the given scoring config, creates
// its event record and clears the courts. Per-session load counters reset
// so matchmaking tie-breakers start fresh. Staff only.
func (c *Club) StartSession(actorID string, targetPoints, bestOf int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireStaffLocked(actorID); err != nil {
		return err
	}
	cfg := models.SessionConfig{TargetPoints: targetPoints, BestOf: bestOf}
	cfg.Normalize()

	now := time.Now()
	evt := &models.Event{
		ID:        uuid.NewString()[:8],
		Name:      fmt.Sprintf("Session %s", now.Format("02/01/2006 15:04")),
		StartedAt: now,
		Status:    "active",
	}
	c.state.Events[evt.ID] = evt

	c.state.Settings.SessionActive = true
	c.state.Settings.CurrentEventID = evt.ID
	c.state.Settings.Config = cfg
	for id := range c.state.Courts {
		delete(c.state.Courts, id)
	}
	for _, p := range c.state.Players {
		p.SessionGames = 0
		p.SessionSeconds = 0
	}
	c.markDirtyLocked()
	return nil
}

// EndSession closes the session: courts cleared, everyone checked out,
// pairing state dropped. Staff only.
func (c *Club) EndSession(actorID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireStaffLocked(actorID); err != nil {
		return err
	}
	if eid := c.state.Settings.CurrentEventID; eid != "" {
		if evt, ok := c.state.Events[eid]; ok {
			evt.Status = "ended"
		}
	}
	c.state.Settings.SessionActive = false
	c.state.Settings.CurrentEventID = ""
	for id := range c.state.Courts {
		delete(c.state.Courts, id)
	}
	for _, p := range c.state.Players {
		p.Status = models.StatusOffline
		p.QueueSince = nil
		p.RestUntil = nil
		p.Commitment = ""
		p.OutgoingRequest = ""
		p.IncomingRequests = nil
	}
	c.markDirtyLocked()
	return nil
}

// SetTotalCourts resizes the court pool. Matches on removed courts are
// dropped with their players returned to the queue. Staff only.
func (c *Club) SetTotalCourts(actorID string, count int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireStaffLocked(actorID); err != nil {
		return err
	}
	if count < 1 {
		count = 1
	}
	if count > maxCourts {
		count = maxCourts
	}
	for id, m := range c.state.Courts {
		if id > count {
			for _, pid := range m.Participants() {
				if p, ok := c.state.Players[pid]; ok {
					p.Status = models.StatusQueued
					p.QueueSince = m.Restore[pid].QueueSince
				}
			}
		}
	}
	c.state.Settings.TotalCourts = count
	c.refreshCourtsLocked()
	c.markDirtyLocked()
	return nil
}

// SetAutoMatch flips the auto-fill flag for one court. Staff only.
func (c *Club) SetAutoMatch(actorID string, courtID int, enabled bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireStaffLocked(actorID); err != nil {
		return err
	}
	if !c.courtExistsLocked(courtID) {
		return ErrCourtNotFound
	}
	c.state.Settings.AutoMatchCourts[courtID] = enabled
	c.markDirtyLocked()
	return nil
}

// SetRating overrides a player's stored rating. Calibration state is left
// untouched: a staff correction does not graduate a new player. Staff only.
func (c *Club) SetRating(actorID, targetID string, rating int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireStaffLocked(actorID); err != nil {
		return err
	}
	target, err := c.playerLocked(targetID)
	if err != nil {
		return err
	}
	target.Rating = rating
	c.markDirtyLocked()
	return nil
}

// ManageMod promotes or demotes a moderator. Super admin only.
func (c *Club) ManageMod(actorID, targetID string, promote bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if actorID != c.superAdmin {
		return ErrUnauthorized
	}
	if _, err := c.playerLocked(targetID); err != nil {
		return err
	}
	if promote {
		c.state.ModIDs = appendUnique(c.state.ModIDs, targetID)
	} else {
		c.state.ModIDs = remove(c.state.ModIDs, targetID)
	}
	c.markDirtyLocked()
	return nil
}

func (c *Club) requireStaffLocked(actorID string) error {
	if _, err := c.playerLocked(actorID); err != nil {
		return err
	}
	if !c.isStaffLocked(actorID) {
		return ErrUnauthorized
	}
	return nil
}
