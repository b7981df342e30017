package club

import (
	"sort"
	"time"

	"izesquad-api/models"
)

// poolWindow bounds how many units the combinatorial search may inspect,
// keeping worst-case selection latency flat regardless of queue length.
const poolWindow = 10

// unit is an atomic scheduling item: a solo player or a committed pair.
type unit struct {
	players  []*models.Player
	priority time.Time
	games    int
	seconds  int
}

func (u unit) size() int { return len(u.players) }

func (u unit) ids() []string {
	out := make([]string, 0, len(u.players))
	for _, p := range u.players {
		out = append(out, p.ID)
	}
	return out
}

// buildPoolLocked turns the waiting roster into priority-ordered units.
// A committed pair becomes one unit whose priority is the earlier of the
// two members' check-in times: a fresh partner cannot rescue priority, and
// the pair is not punished for its less patient member. A committed player
// whose partner is not currently eligible queues as a solo.
func (c *Club) buildPoolLocked(now time.Time) []unit {
	c.cleanupRestingLocked(now)

	eligible := make(map[string]*models.Player)
	for id, p := range c.state.Players {
		if p.Status != models.StatusQueued {
			continue
		}
		if p.QueueSince == nil {
			ts := now
			p.QueueSince = &ts
			c.markDirtyLocked()
		}
		eligible[id] = p
	}

	var units []unit
	seen := make(map[string]bool)
	for id, p := range eligible {
		if seen[id] {
			continue
		}
		partner := eligible[p.Commitment]
		if partner != nil && partner.Commitment == p.ID && !seen[partner.ID] {
			seen[id] = true
			seen[partner.ID] = true
			units = append(units, unit{
				players:  []*models.Player{p, partner},
				priority: minTime(*p.QueueSince, *partner.QueueSince),
				games:    min(p.SessionGames, partner.SessionGames),
				seconds:  min(p.SessionSeconds, partner.SessionSeconds),
			})
			continue
		}
		seen[id] = true
		units = append(units, unit{
			players:  []*models.Player{p},
			priority: *p.QueueSince,
			games:    p.SessionGames,
			seconds:  p.SessionSeconds,
		})
	}

	sort.Slice(units, func(i, j int) bool {
		a, b := units[i], units[j]
		if !a.priority.Equal(b.priority) {
			return a.priority.Before(b.priority)
		}
		if a.games != b.games {
			return a.games < b.games
		}
		if a.seconds != b.seconds {
			return a.seconds < b.seconds
		}
		return a.players[0].ID < b.players[0].ID
	})
	return units
}

func minTime(a, b time.Time) time.Time {
	if b.Before(a) {
		return b
	}
	return a
}

func min(a, b int) int {
	if b < a {
		return b
	}
	return a
}
