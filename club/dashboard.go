package club

import (
	"fmt"
	"sort"
	"time"

	"izesquad-api/models"
)

const dashboardHistory = 30

// ratingDisplay hides the number while a player is calibrating.
func ratingDisplay(p *models.Player) string {
	if p.Calibrating() {
		return fmt.Sprintf("UNRANK (%d/%d)", p.CalGames, models.CalibrationGames)
	}
	return fmt.Sprintf("%d", p.Rating)
}

func (c *Club) summaryLocked(p *models.Player, now time.Time) models.PlayerSummary {
	s := models.PlayerSummary{
		ID:            p.ID,
		Nickname:      p.Nickname,
		PictureURL:    p.PictureURL,
		Status:        string(p.Status),
		RatingDisplay: ratingDisplay(p),
		Commitment:    p.Commitment,
		SetsWon:       p.SetsWon,
		SetsLost:      p.SetsLost,
		PointsFor:     p.PointsFor,
		PointsAgainst: p.PointsAgainst,
		IsMod:         contains(c.state.ModIDs, p.ID),
	}
	if p.QueueSince != nil {
		s.WaitingMin = int(now.Sub(*p.QueueSince).Minutes())
	}
	if wr := p.WinRatePercent(); wr >= 0 {
		s.WinRate = &wr
	}
	return s
}

// Dashboard builds the full read model. Reading it also drives the passive
// court tick, so a dashboard poll alone keeps countdowns moving.
func (c *Club) Dashboard() *models.Dashboard {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	c.tickLocked(now)

	d := &models.Dashboard{
		Settings:     c.state.Settings,
		Courts:       make(map[int]*models.CourtView),
		Leaderboards: make(map[string][]models.PlayerSummary),
	}

	for courtID := 1; courtID <= c.state.Settings.TotalCourts; courtID++ {
		m := c.state.Courts[courtID]
		if m == nil {
			d.Courts[courtID] = nil
			continue
		}
		view := &models.CourtView{
			MatchID:    m.ID,
			State:      string(m.State),
			TeamA:      m.TeamA,
			TeamB:      m.TeamB,
			TeamANames: c.nicknamesLocked(m.TeamA),
			TeamBNames: c.nicknamesLocked(m.TeamB),
			AutoMatch:  c.state.Settings.AutoMatchCourts[courtID],
		}
		if m.State == models.MatchCalled {
			if rem := int(m.ScheduledStart.Sub(now).Seconds()); rem > 0 {
				view.StartsInSec = rem
			}
		} else if m.ActualStart != nil {
			view.ElapsedSec = int(now.Sub(*m.ActualStart).Seconds())
		}
		d.Courts[courtID] = view
	}

	var queue []*models.Player
	for _, p := range c.state.Players {
		switch p.Status {
		case models.StatusQueued, models.StatusResting:
			queue = append(queue, p)
		case models.StatusCalled, models.StatusPlaying:
			d.PlayingCount++
		}
		d.AllPlayers = append(d.AllPlayers, c.summaryLocked(p, now))
	}
	sort.Slice(queue, func(i, j int) bool {
		a, b := queue[i], queue[j]
		if a.QueueSince == nil || b.QueueSince == nil {
			return b.QueueSince == nil && a.QueueSince != nil
		}
		if !a.QueueSince.Equal(*b.QueueSince) {
			return a.QueueSince.Before(*b.QueueSince)
		}
		return a.ID < b.ID
	})
	for _, p := range queue {
		d.Queue = append(d.Queue, c.summaryLocked(p, now))
	}
	d.QueueCount = len(queue)
	sort.Slice(d.AllPlayers, func(i, j int) bool { return d.AllPlayers[i].Nickname < d.AllPlayers[j].Nickname })

	d.Leaderboards["rating"] = c.leaderboardLocked(now, func(p *models.Player) int { return p.Rating })
	d.Leaderboards["points"] = c.leaderboardLocked(now, func(p *models.Player) int { return p.PointsFor })
	d.Leaderboards["winrate"] = c.leaderboardLocked(now, func(p *models.Player) int { return p.WinRatePercent() })

	if len(c.state.History) > dashboardHistory {
		d.History = append(d.History, c.state.History[:dashboardHistory]...)
	} else {
		d.History = append(d.History, c.state.History...)
	}

	for _, evt := range c.state.Events {
		d.Events = append(d.Events, evt)
	}
	sort.Slice(d.Events, func(i, j int) bool { return d.Events[i].StartedAt.After(d.Events[j].StartedAt) })

	return d
}

// leaderboardLocked sorts ranked players by the key descending, with
// calibrating players always grouped below them.
func (c *Club) leaderboardLocked(now time.Time, key func(*models.Player) int) []models.PlayerSummary {
	players := make([]*models.Player, 0, len(c.state.Players))
	for _, p := range c.state.Players {
		players = append(players, p)
	}
	sort.Slice(players, func(i, j int) bool {
		a, b := players[i], players[j]
		if a.Calibrating() != b.Calibrating() {
			return !a.Calibrating()
		}
		if key(a) != key(b) {
			return key(a) > key(b)
		}
		return a.ID < b.ID
	})
	out := make([]models.PlayerSummary, 0, len(players))
	for _, p := range players {
		out = append(out, c.summaryLocked(p, now))
	}
	return out
}

// Profile returns one player's public profile with their last matches.
func (c *Club) Profile(id string) (*models.Profile, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, err := c.playerLocked(id)
	if err != nil {
		return nil, err
	}
	prof := &models.Profile{
		PlayerSummary: c.summaryLocked(p, time.Now()),
		Calibrating:   p.Calibrating(),
		CalGames:      p.CalGames,
	}
	for _, rec := range c.state.History {
		if contains(rec.TeamA, id) || contains(rec.TeamB, id) {
			prof.LastMatches = append(prof.LastMatches, rec)
			if len(prof.LastMatches) == 10 {
				break
			}
		}
	}
	return prof, nil
}

func (c *Club) nicknamesLocked(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if p, ok := c.state.Players[id]; ok {
			out = append(out, p.Nickname)
		} else {
			out = append(out, id)
		}
	}
	return out
}
