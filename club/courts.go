package club

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"izesquad-api/models"
)

// countdownGrace is how long a formed match waits before play officially
// starts, giving the called players time to walk on court.
const countdownGrace = 60 * time.Second

// historyLimit caps the retained settled-match history.
const historyLimit = 200

// FillCourt runs the matchmaker for one free court. Staff only.
func (c *Club) FillCourt(actorID string, courtID int) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.playerLocked(actorID); err != nil {
		return "", err
	}
	if !c.isStaffLocked(actorID) {
		return "", ErrUnauthorized
	}
	return c.fillCourtLocked(courtID, "manual", time.Now())
}

// FillAllEnabled runs the matchmaker over every free auto-match court in
// order. Invoking it again without a state change in between finds no
// eligible court or players and mutates nothing, so callers may re-invoke
// freely. Staff only.
func (c *Club) FillAllEnabled(actorID string) (map[int]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.playerLocked(actorID); err != nil {
		return nil, err
	}
	if !c.isStaffLocked(actorID) {
		return nil, ErrUnauthorized
	}
	return c.fillEnabledLocked(time.Now()), nil
}

func (c *Club) fillEnabledLocked(now time.Time) map[int]string {
	filled := make(map[int]string)
	for _, courtID := range c.sortedCourtIDsLocked() {
		if !c.state.Settings.AutoMatchCourts[courtID] {
			continue
		}
		if matchID, err := c.fillCourtLocked(courtID, "auto", now); err == nil {
			filled[courtID] = matchID
		}
	}
	return filled
}

func (c *Club) fillCourtLocked(courtID int, source string, now time.Time) (string, error) {
	if !c.state.Settings.SessionActive {
		return "", ErrSessionInactive
	}
	if !c.courtExistsLocked(courtID) {
		return "", ErrCourtNotFound
	}
	if c.state.Courts[courtID] != nil {
		return "", ErrCourtBusy
	}
	sel, err := c.selectMatchLocked(now)
	if err != nil {
		return "", err
	}
	m := c.openMatchLocked(courtID, sel.teamA[:], sel.teamB[:], source, now)
	return m.ID, nil
}

// ManualMatch places four explicitly chosen players on a free court, first
// two against last two. Fairness and diversity are deliberately bypassed;
// this is the staff override. Staff only.
func (c *Club) ManualMatch(actorID string, courtID int, playerIDs []string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.playerLocked(actorID); err != nil {
		return "", err
	}
	if !c.isStaffLocked(actorID) {
		return "", ErrUnauthorized
	}
	if !c.state.Settings.SessionActive {
		return "", ErrSessionInactive
	}
	if !c.courtExistsLocked(courtID) {
		return "", ErrCourtNotFound
	}
	if c.state.Courts[courtID] != nil {
		return "", ErrCourtBusy
	}
	if len(playerIDs) != 4 || len(uniqueStrings(playerIDs)) != 4 {
		return "", ErrNotEnoughPlayers
	}
	players := make([]*models.Player, 0, 4)
	for _, id := range playerIDs {
		p, err := c.playerLocked(id)
		if err != nil {
			return "", err
		}
		if p.Status == models.StatusCalled || p.Status == models.StatusPlaying {
			return "", ErrPlayerBusy
		}
		players = append(players, p)
	}
	now := time.Now()
	m := c.openMatchLocked(courtID, players[:2], players[2:], "manual_pick", now)
	return m.ID, nil
}

// openMatchLocked flips the four players to called and snapshots the state
// a cancellation must roll back. The court must already be verified empty.
func (c *Club) openMatchLocked(courtID int, teamA, teamB []*models.Player, source string, now time.Time) *models.Match {
	m := &models.Match{
		ID:             uuid.NewString()[:8],
		CourtID:        courtID,
		State:          models.MatchCalled,
		Source:         source,
		TeamA:          []string{teamA[0].ID, teamA[1].ID},
		TeamB:          []string{teamB[0].ID, teamB[1].ID},
		CreatedAt:      now,
		ScheduledStart: now.Add(countdownGrace),
		Restore:        make(map[string]models.RestorePoint),
	}
	for _, p := range append(append([]*models.Player{}, teamA...), teamB...) {
		m.Restore[p.ID] = models.RestorePoint{
			QueueSince: p.QueueSince,
			Commitment: p.Commitment,
		}
		p.Status = models.StatusCalled
		p.LastActive = now
		c.ensureParticipantLocked(p.ID)
	}
	c.state.Courts[courtID] = m
	c.markDirtyLocked()
	return m
}

// CancelMatch aborts a called or live match. Any participant or staff may
// cancel. Participants keep their pre-match queue position and commitment,
// and the grouping is written to the ledger as cancelled so the strict
// search pass cannot immediately reform it.
func (c *Club) CancelMatch(actorID string, courtID int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.playerLocked(actorID); err != nil {
		return err
	}
	if !c.courtExistsLocked(courtID) {
		return ErrCourtNotFound
	}
	m := c.state.Courts[courtID]
	if m == nil {
		return ErrNoActiveMatch
	}
	if !c.isStaffLocked(actorID) && !m.HasParticipant(actorID) {
		return ErrUnauthorized
	}

	now := time.Now()
	c.recordMatchLocked(m, models.LedgerCancelled, now)
	for _, pid := range m.Participants() {
		p, ok := c.state.Players[pid]
		if !ok {
			continue
		}
		restore := m.Restore[pid]
		p.Status = models.StatusQueued
		p.QueueSince = restore.QueueSince
		p.Commitment = restore.Commitment
		if p.QueueSince == nil {
			ts := now
			p.QueueSince = &ts
		}
	}
	delete(c.state.Courts, courtID)
	c.markDirtyLocked()
	return nil
}

// SubmitResult settles the match on a court: validates the set scores
// against the session scoring config, applies rating deltas and stats,
// records the grouping as finished and sends everyone to the back of the
// queue (or to rest, for auto-rest players while a cooldown is suggested).
// Participants or staff only. Returns the winning team, "A" or "B".
func (c *Club) SubmitResult(actorID string, courtID int, sets []models.SetScore) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.playerLocked(actorID); err != nil {
		return "", err
	}
	if !c.courtExistsLocked(courtID) {
		return "", ErrCourtNotFound
	}
	m := c.state.Courts[courtID]
	if m == nil {
		return "", ErrNoActiveMatch
	}
	if !c.isStaffLocked(actorID) && !m.HasParticipant(actorID) {
		return "", ErrUnauthorized
	}

	cfg := c.state.Settings.Config
	if len(sets) != cfg.BestOf {
		return "", ErrInvalidSetCount
	}
	for _, s := range sets {
		if err := validateSet(cfg, s.A, s.B); err != nil {
			return "", err
		}
	}
	winner, tally := winnerFromSets(cfg, sets)

	now := time.Now()
	durationSec := 0
	if m.ActualStart != nil {
		durationSec = int(now.Sub(*m.ActualStart).Seconds())
		if durationSec < 0 {
			durationSec = 0
		}
	}

	deltas, err := c.applyRatingLocked(m, cfg, winner, tally)
	if err != nil {
		return "", err
	}
	c.applyStatsLocked(m, winner, tally, durationSec, now)
	c.recordMatchLocked(m, models.LedgerFinished, now)

	c.state.History = append([]models.MatchRecord{{
		ID:          uuid.NewString()[:10],
		CourtID:     courtID,
		PlayedAt:    now,
		WinnerTeam:  winner,
		Sets:        sets,
		SetsA:       tally.setsA,
		SetsB:       tally.setsB,
		PointsA:     tally.pointsA,
		PointsB:     tally.pointsB,
		DurationSec: durationSec,
		TeamA:       m.TeamA,
		TeamB:       m.TeamB,
		Deltas:      deltas,
	}}, c.state.History...)
	if len(c.state.History) > historyLimit {
		c.state.History = c.state.History[:historyLimit]
	}

	delete(c.state.Courts, courtID)
	c.markDirtyLocked()
	return winner, nil
}

// applyStatsLocked updates per-player aggregates and returns the four
// participants to the queue, applying the opt-in cooldown rest.
func (c *Club) applyStatsLocked(m *models.Match, winner string, t setTally, durationSec int, now time.Time) {
	cooldown := time.Duration(c.state.Settings.SuggestedCooldown) * time.Minute
	for _, pid := range m.Participants() {
		p, ok := c.state.Players[pid]
		if !ok {
			continue
		}
		onA := contains(m.TeamA, pid)
		if onA {
			p.SetsWon += t.setsA
			p.SetsLost += t.setsB
			p.PointsFor += t.pointsA
			p.PointsAgainst += t.pointsB
		} else {
			p.SetsWon += t.setsB
			p.SetsLost += t.setsA
			p.PointsFor += t.pointsB
			p.PointsAgainst += t.pointsA
		}

		won := (winner == "A") == onA
		if p.Calibrating() {
			p.CalGames++
			if won {
				p.CalWins++
				p.CalStreak++
			} else {
				p.CalLosses++
				p.CalStreak = 0
			}
		}

		p.SessionGames++
		p.SessionSeconds += durationSec
		p.LastActive = now
		c.cancelOutgoingLocked(pid)

		ts := now
		p.QueueSince = &ts // rejoin at the back of the queue
		if p.AutoRest && cooldown > 0 {
			p.Status = models.StatusResting
			until := now.Add(cooldown)
			p.RestUntil = &until
		} else {
			p.Status = models.StatusQueued
			p.RestUntil = nil
		}
	}
}

// tickLocked is the passive transition driver: expired rests, countdown
// advance, cooldown refresh and auto-fill. Idempotent.
func (c *Club) tickLocked(now time.Time) {
	c.cleanupRestingLocked(now)

	for _, m := range c.state.Courts {
		if m.State == models.MatchCalled && !now.Before(m.ScheduledStart) {
			m.State = models.MatchPlaying
			start := m.ScheduledStart
			m.ActualStart = &start
			for _, pid := range m.Participants() {
				if p, ok := c.state.Players[pid]; ok {
					p.Status = models.StatusPlaying
				}
			}
			c.markDirtyLocked()
		}
	}

	c.computeCooldownLocked()

	if c.state.Settings.SessionActive {
		c.fillEnabledLocked(now)
	}
}

func (c *Club) sortedCourtIDsLocked() []int {
	ids := make([]int, 0, c.state.Settings.TotalCourts)
	for i := 1; i <= c.state.Settings.TotalCourts; i++ {
		ids = append(ids, i)
	}
	sort.Ints(ids)
	return ids
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
