package club

import (
	"fmt"
	"math"

	"izesquad-api/models"
	"izesquad-api/utils"
)

// baseK is the K-factor for ranked players. Calibrating players use a
// larger K that shrinks as their calibration progresses.
const baseK = 25.0

func playerK(p *models.Player) float64 {
	if !p.Calibrating() {
		return baseK
	}
	return 40.0 + 4.0*float64(models.CalibrationGames-p.CalGames)
}

type setTally struct {
	setsA   int
	setsB   int
	pointsA int
	pointsB int
}

func tallySets(sets []models.SetScore) setTally {
	var t setTally
	for _, s := range sets {
		t.pointsA += s.A
		t.pointsB += s.B
		if s.A > s.B {
			t.setsA++
		} else {
			t.setsB++
		}
	}
	return t
}

// validateSet checks one set against badminton scoring: the winner reaches
// the target, leads by two past it, and a set that climbs to the cap ends
// there. Past the target a set ends the instant the lead hits two, so
// anything other than an exact two-point finish (or cap, cap-1) cannot
// have happened.
func validateSet(cfg models.SessionConfig, a, b int) error {
	if a < 0 || b < 0 {
		return fmt.Errorf("%w: negative points", ErrInvalidScore)
	}
	if a == b {
		return fmt.Errorf("%w: set cannot be drawn", ErrInvalidScore)
	}
	hi, lo := a, b
	if b > a {
		hi, lo = b, a
	}
	switch {
	case hi > models.ScoreCap:
		return fmt.Errorf("%w: points beyond the %d cap", ErrInvalidScore, models.ScoreCap)
	case hi < cfg.TargetPoints:
		return fmt.Errorf("%w: winner must reach %d", ErrInvalidScore, cfg.TargetPoints)
	case hi == models.ScoreCap:
		if lo != models.ScoreCap-1 && hi-lo != 2 {
			return fmt.Errorf("%w: a set ends before %d-%d", ErrInvalidScore, hi, lo)
		}
	case hi > cfg.TargetPoints:
		if hi-lo != 2 {
			return fmt.Errorf("%w: past %d the set ends on a two-point lead", ErrInvalidScore, cfg.TargetPoints)
		}
	default: // hi == target
		if hi-lo < 2 {
			return fmt.Errorf("%w: must win by two (or reach %d)", ErrInvalidScore, models.ScoreCap)
		}
	}
	return nil
}

// winnerFromSets resolves the match winner. Best-of-2 always plays both
// sets; a 1-1 split falls to total points, and an exact point tie to the
// final set's winner.
func winnerFromSets(cfg models.SessionConfig, sets []models.SetScore) (string, setTally) {
	t := tallySets(sets)
	switch cfg.BestOf {
	case 2:
		if t.setsA != t.setsB {
			break
		}
		if t.pointsA != t.pointsB {
			if t.pointsA > t.pointsB {
				return "A", t
			}
			return "B", t
		}
		last := sets[len(sets)-1]
		if last.A > last.B {
			return "A", t
		}
		return "B", t
	}
	if t.setsA > t.setsB {
		return "A", t
	}
	return "B", t
}

// applyRatingLocked moves the four participants' ratings. Teams play as
// their average stored rating; per-player deltas scale by the individual
// K (larger during calibration) times the shared margin and tier factors,
// so they are zero-sum within a team relative to the team delta but not
// across all four players. Deltas always move at least one point toward
// the outcome.
func (c *Club) applyRatingLocked(m *models.Match, cfg models.SessionConfig, winner string, t setTally) (map[string]int, error) {
	teamA := make([]*models.Player, 0, 2)
	teamB := make([]*models.Player, 0, 2)
	for _, pid := range m.TeamA {
		if p, ok := c.state.Players[pid]; ok {
			teamA = append(teamA, p)
		}
	}
	for _, pid := range m.TeamB {
		if p, ok := c.state.Players[pid]; ok {
			teamB = append(teamB, p)
		}
	}
	if len(teamA) != 2 || len(teamB) != 2 {
		return nil, ErrPlayerNotFound
	}

	rA := utils.TeamAverage(teamA[0].Rating, teamA[1].Rating)
	rB := utils.TeamAverage(teamB[0].Rating, teamB[1].Rating)
	expA := utils.ExpectedScore(rA, rB)
	expB := 1.0 - expA

	g := utils.MarginFactor(abs(t.setsA-t.setsB), abs(t.pointsA-t.pointsB), cfg.TargetPoints)
	tier := utils.TierMultiplier((rA + rB) / 2.0)

	actA, actB := 0.0, 1.0
	if winner == "A" {
		actA, actB = 1.0, 0.0
	}

	deltas := make(map[string]int, 4)
	apply := func(team []*models.Player, act, exp float64, won bool) {
		for _, p := range team {
			delta := int(math.Round(playerK(p) * g * tier * (act - exp)))
			if delta == 0 {
				if won {
					delta = 1
				} else {
					delta = -1
				}
			}
			p.Rating += delta
			deltas[p.ID] = delta
		}
	}
	apply(teamA, actA, expA, winner == "A")
	apply(teamB, actB, expB, winner == "B")
	return deltas, nil
}

// Cooldown bounds: floor and empty-history default for the rolling average
// match length, and the hard cap on the suggestion.
const (
	cooldownMinAvg     = 5
	cooldownDefaultAvg = 12
	cooldownCapMin     = 25
	cooldownSampleSize = 10
)

// computeCooldownLocked refreshes the advisory rest suggestion from the
// rolling average duration of recent matches and how oversubscribed the
// courts are. Fewer waiting players per court slot means quicker repeats,
// so the suggestion grows as the queue thins.
func (c *Club) computeCooldownLocked() {
	avgMin := cooldownDefaultAvg
	total, n := 0, 0
	for _, rec := range c.state.History {
		if n == cooldownSampleSize {
			break
		}
		total += rec.DurationSec
		n++
	}
	if n > 0 {
		avgMin = int(math.Round(float64(total) / float64(n) / 60.0))
		if avgMin < cooldownMinAvg {
			avgMin = cooldownMinAvg
		}
	}

	waiting := 0
	for _, p := range c.state.Players {
		if p.Status == models.StatusQueued || p.Status == models.StatusResting {
			waiting++
		}
	}
	capacity := c.state.Settings.TotalCourts * 4
	if capacity < 1 {
		capacity = 1
	}
	ratio := float64(waiting) / float64(capacity)

	cooldown := int(math.Round(float64(avgMin) * math.Max(0, 1.2-ratio)))
	if limit := min(avgMin, cooldownCapMin); cooldown > limit {
		cooldown = limit
	}
	if cooldown < 0 {
		cooldown = 0
	}
	if cooldown != c.state.Settings.SuggestedCooldown {
		c.state.Settings.SuggestedCooldown = cooldown
		c.markDirtyLocked()
	}
}
