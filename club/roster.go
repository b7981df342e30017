package club

import (
	"time"

	"izesquad-api/models"
)

// Login upserts a player record, creating it with defaults on first login.
func (c *Club) Login(id, nickname, pictureURL string) *models.Player {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	p, ok := c.state.Players[id]
	if !ok {
		p = models.NewPlayer(id, nickname, pictureURL, now)
		c.state.Players[id] = p
	} else {
		if nickname != "" {
			p.Nickname = nickname
		}
		if pictureURL != "" {
			p.PictureURL = pictureURL
		}
	}
	p.LastActive = now
	c.markDirtyLocked()
	out := *p
	return &out
}

// CheckIn places an offline player into the waiting queue and seeds the
// wait-priority timestamp.
func (c *Club) CheckIn(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.Settings.SessionActive {
		return ErrSessionInactive
	}
	p, err := c.playerLocked(id)
	if err != nil {
		return err
	}
	if p.Status.CheckedIn() {
		return nil // already in, keep the original queue position
	}
	now := time.Now()
	p.Status = models.StatusQueued
	p.QueueSince = &now
	p.RestUntil = nil
	p.LastActive = now
	c.ensureParticipantLocked(id)
	c.markDirtyLocked()
	return nil
}

// CheckOut removes a waiting or resting player from the queue. Players in a
// called or live match must have the match cancelled or settled first.
func (c *Club) CheckOut(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, err := c.playerLocked(id)
	if err != nil {
		return err
	}
	switch p.Status {
	case models.StatusOffline:
		return nil
	case models.StatusCalled, models.StatusPlaying:
		return ErrPlayerBusy
	}
	p.Status = models.StatusOffline
	p.QueueSince = nil
	p.RestUntil = nil
	c.clearPairingLocked(id)
	c.markDirtyLocked()
	return nil
}

// ToggleRest flips a queued player to resting and back. Waiting time keeps
// accruing while resting; only eligibility for matchmaking is suspended.
func (c *Club) ToggleRest(id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, err := c.playerLocked(id)
	if err != nil {
		return false, err
	}
	switch p.Status {
	case models.StatusQueued:
		p.Status = models.StatusResting
		p.RestUntil = nil
	case models.StatusResting:
		p.Status = models.StatusQueued
		p.RestUntil = nil
	default:
		return false, ErrNotCheckedIn
	}
	c.markDirtyLocked()
	return p.Status == models.StatusResting, nil
}

// ToggleAutoRest flips the opt-in for the post-match cooldown rest.
func (c *Club) ToggleAutoRest(id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, err := c.playerLocked(id)
	if err != nil {
		return false, err
	}
	p.AutoRest = !p.AutoRest
	c.markDirtyLocked()
	return p.AutoRest, nil
}

// RequestPartner sends a mutual-pair request. A player holds at most one
// outgoing request and no commitment while requesting.
func (c *Club) RequestPartner(id, targetID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.Settings.SessionActive {
		return ErrSessionInactive
	}
	if id == targetID {
		return ErrRequestNotFound
	}
	p, err := c.playerLocked(id)
	if err != nil {
		return err
	}
	target, err := c.playerLocked(targetID)
	if err != nil {
		return err
	}
	if p.Status != models.StatusQueued && p.Status != models.StatusResting {
		return ErrNotCheckedIn
	}
	if p.Commitment != "" {
		return ErrAlreadyPaired
	}
	if p.OutgoingRequest == targetID {
		return nil
	}
	if p.OutgoingRequest != "" {
		return ErrAlreadyCommitted
	}
	p.OutgoingRequest = targetID
	target.IncomingRequests = appendUnique(target.IncomingRequests, id)
	c.markDirtyLocked()
	return nil
}

// RespondPartner accepts or declines a received request. Accepting locks
// both players to the same team whenever both are matched, and clears any
// other outstanding requests either of them holds.
func (c *Club) RespondPartner(id, fromID string, accept bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, err := c.playerLocked(id)
	if err != nil {
		return err
	}
	sender, err := c.playerLocked(fromID)
	if err != nil {
		return err
	}
	if !contains(p.IncomingRequests, fromID) {
		return ErrRequestNotFound
	}
	if !accept {
		p.IncomingRequests = remove(p.IncomingRequests, fromID)
		if sender.OutgoingRequest == id {
			sender.OutgoingRequest = ""
		}
		c.markDirtyLocked()
		return nil
	}
	if p.Commitment != "" {
		return ErrAlreadyPaired
	}
	if sender.Commitment != "" {
		return ErrAlreadyPaired
	}
	c.cancelOutgoingLocked(id)
	c.cancelOutgoingLocked(fromID)
	p.IncomingRequests = remove(p.IncomingRequests, fromID)
	p.Commitment = fromID
	sender.Commitment = id
	c.markDirtyLocked()
	return nil
}

// CancelPartner breaks the caller's commitment and withdraws any
// outstanding outgoing request.
func (c *Club) CancelPartner(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.playerLocked(id); err != nil {
		return err
	}
	c.breakPairLocked(id)
	c.cancelOutgoingLocked(id)
	c.markDirtyLocked()
	return nil
}

// Inbox returns the caller's pairing state: partner, outgoing target and
// the ids that requested them.
func (c *Club) Inbox(id string) (commitment, outgoing string, incoming []string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, err := c.playerLocked(id)
	if err != nil {
		return "", "", nil, err
	}
	incoming = make([]string, len(p.IncomingRequests))
	copy(incoming, p.IncomingRequests)
	return p.Commitment, p.OutgoingRequest, incoming, nil
}

func (c *Club) cancelOutgoingLocked(id string) {
	p := c.state.Players[id]
	if p == nil || p.OutgoingRequest == "" {
		return
	}
	if target, ok := c.state.Players[p.OutgoingRequest]; ok {
		target.IncomingRequests = remove(target.IncomingRequests, id)
	}
	p.OutgoingRequest = ""
}

func (c *Club) breakPairLocked(id string) {
	p := c.state.Players[id]
	if p == nil || p.Commitment == "" {
		return
	}
	if partner, ok := c.state.Players[p.Commitment]; ok {
		partner.Commitment = ""
	}
	p.Commitment = ""
}

// clearPairingLocked removes every trace of the player from the pairing
// graph, used when they leave the session.
func (c *Club) clearPairingLocked(id string) {
	c.breakPairLocked(id)
	c.cancelOutgoingLocked(id)
	for _, other := range c.state.Players {
		other.IncomingRequests = remove(other.IncomingRequests, id)
	}
}

func (c *Club) ensureParticipantLocked(id string) {
	eid := c.state.Settings.CurrentEventID
	if eid == "" {
		return
	}
	evt, ok := c.state.Events[eid]
	if !ok {
		return
	}
	evt.Participants = appendUnique(evt.Participants, id)
}

// cleanupRestingLocked clears rests whose timer has elapsed.
func (c *Club) cleanupRestingLocked(now time.Time) {
	for _, p := range c.state.Players {
		if p.Status == models.StatusResting && p.RestUntil != nil && !now.Before(*p.RestUntil) {
			p.Status = models.StatusQueued
			p.RestUntil = nil
			c.markDirtyLocked()
		}
	}
}

func contains(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func appendUnique(list []string, v string) []string {
	if contains(list, v) {
		return list
	}
	return append(list, v)
}

func remove(list []string, v string) []string {
	out := list[:0]
	for _, x := range list {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}
