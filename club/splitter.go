package club

import (
	"sort"

	"izesquad-api/models"
)

// Diversity penalties. Cancelled repeats are hard-rejected on the strict
// pass; on the relaxed pass they become this penalty instead. Finished
// repeats are always soft.
const (
	penaltyCancelledRepeat  = 5000
	penaltyFinishedTeammate = 200
	penaltyFinishedGroup    = 400
	penaltyFinishedOpponent = 50
)

// Calibration bumps for the matchmaking-only effective rating: a hot new
// player is pushed toward tougher opponents before their stored rating
// catches up.
const (
	calNetWinBump = 80
	calStreakBump = 40
)

func effectiveRating(p *models.Player) int {
	if !p.Calibrating() {
		return p.Rating
	}
	bump := (p.CalWins - p.CalLosses) * calNetWinBump
	if p.CalStreak > 1 {
		bump += (p.CalStreak - 1) * calStreakBump
	}
	return p.Rating + bump
}

// splitScore orders candidate splits lexicographically: diversity first,
// then the anti-carry gap, then raw team balance. Partner balance matters
// more to perceived fairness than equal team sums, so the intra-team gap
// dominates the sum difference.
type splitScore struct {
	diversity int
	maxGap    int
	teamDiff  int
	gapSum    int
}

func (s splitScore) less(o splitScore) bool {
	if s.diversity != o.diversity {
		return s.diversity < o.diversity
	}
	if s.maxGap != o.maxGap {
		return s.maxGap < o.maxGap
	}
	if s.teamDiff != o.teamDiff {
		return s.teamDiff < o.teamDiff
	}
	return s.gapSum < o.gapSum
}

type teamSplit struct {
	teamA [2]*models.Player
	teamB [2]*models.Player
	score splitScore
}

// committed reports whether a and b are a mutual locked pair.
func committed(a, b *models.Player) bool {
	return a.Commitment == b.ID && b.Commitment == a.ID
}

// separatesCommitment reports whether any mutual pair inside the 4-group is
// split across the two teams.
func separatesCommitment(teamA, teamB [2]*models.Player) bool {
	for _, p := range teamA {
		for _, q := range teamB {
			if committed(p, q) {
				return true
			}
		}
	}
	return false
}

// bestSplit evaluates the three 2v2 partitions of exactly four players and
// returns the lowest-scoring legal one. strict hard-rejects partitions that
// repeat a cancelled grouping; the relaxed pass only penalizes them.
// Commitments are respected on both passes. The group is sorted by id first
// so equal scores resolve deterministically.
func bestSplit(group []*models.Player, ix *ledgerIndex, strict bool) (teamSplit, bool) {
	g := make([]*models.Player, len(group))
	copy(g, group)
	sort.Slice(g, func(i, j int) bool { return g[i].ID < g[j].ID })

	partitions := [3][2][2]int{
		{{0, 1}, {2, 3}},
		{{0, 2}, {1, 3}},
		{{0, 3}, {1, 2}},
	}

	ids := []string{g[0].ID, g[1].ID, g[2].ID, g[3].ID}
	groupKind, groupSeen := ix.groups[models.GroupKey(ids)]

	var best teamSplit
	found := false
	for _, part := range partitions {
		teamA := [2]*models.Player{g[part[0][0]], g[part[0][1]]}
		teamB := [2]*models.Player{g[part[1][0]], g[part[1][1]]}
		if separatesCommitment(teamA, teamB) {
			continue
		}

		diversity, blocked := diversityPenalty(teamA, teamB, groupSeen, groupKind, ix, strict)
		if blocked {
			continue
		}

		effA0, effA1 := effectiveRating(teamA[0]), effectiveRating(teamA[1])
		effB0, effB1 := effectiveRating(teamB[0]), effectiveRating(teamB[1])
		gapA := abs(effA0 - effA1)
		gapB := abs(effB0 - effB1)

		score := splitScore{
			diversity: diversity,
			maxGap:    maxInt(gapA, gapB),
			teamDiff:  abs((effA0 + effA1) - (effB0 + effB1)),
			gapSum:    gapA + gapB,
		}
		if !found || score.less(best.score) {
			best = teamSplit{teamA: teamA, teamB: teamB, score: score}
			found = true
		}
	}
	return best, found
}

// diversityPenalty sums ledger penalties for the split. Repeats caused by
// an explicit commitment are exempt: players who asked to stick together
// are allowed to.
func diversityPenalty(teamA, teamB [2]*models.Player, groupSeen bool, groupKind models.LedgerKind, ix *ledgerIndex, strict bool) (int, bool) {
	penalty := 0

	if groupSeen {
		if groupKind == models.LedgerCancelled {
			if strict {
				return 0, true
			}
			penalty += penaltyCancelledRepeat
		} else {
			penalty += penaltyFinishedGroup
		}
	}

	for _, team := range [][2]*models.Player{teamA, teamB} {
		if committed(team[0], team[1]) {
			continue
		}
		kind, seen := ix.teammates[models.PairKey(team[0].ID, team[1].ID)]
		if !seen {
			continue
		}
		if kind == models.LedgerCancelled {
			if strict {
				return 0, true
			}
			penalty += penaltyCancelledRepeat
		} else {
			penalty += penaltyFinishedTeammate
		}
	}

	for _, a := range teamA {
		for _, b := range teamB {
			if kind, seen := ix.opponents[models.PairKey(a.ID, b.ID)]; seen && kind == models.LedgerFinished {
				penalty += penaltyFinishedOpponent
			}
		}
	}
	return penalty, false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt(a, b int) int {
	if b > a {
		return b
	}
	return a
}
