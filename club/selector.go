package club

import (
	"time"

	"izesquad-api/models"
)

// selection is the outcome of one matchmaking search.
type selection struct {
	teamA [2]*models.Player
	teamB [2]*models.Player
	depth int // highest unit index used; lower means less queue-skipping
	score splitScore
}

// selectMatchLocked searches the bounded window of the candidate pool for
// the best 4-player combination that contains the oldest-waiting unit, so
// the head of the queue can never be skipped. Combinations are ranked by
// how deep into the queue they reach first and split fairness second. When
// the strict pass finds nothing (every option repeats a cancelled
// grouping), a relaxed pass turns those hard blocks into penalties.
func (c *Club) selectMatchLocked(now time.Time) (*selection, error) {
	pool := c.buildPoolLocked(now)
	slots := 0
	for _, u := range pool {
		slots += u.size()
	}
	if slots < 4 {
		return nil, ErrNotEnoughPlayers
	}
	window := pool
	if len(window) > poolWindow {
		window = window[:poolWindow]
	}

	ix := c.ledgerIndexLocked(now)
	if sel := searchWindow(window, ix, true); sel != nil {
		return sel, nil
	}
	if sel := searchWindow(window, ix, false); sel != nil {
		return sel, nil
	}
	return nil, ErrNotEnoughPlayers
}

func searchWindow(window []unit, ix *ledgerIndex, strict bool) *selection {
	var best *selection

	consider := func(indices []int) {
		var group []*models.Player
		depth := 0
		for _, i := range indices {
			group = append(group, window[i].players...)
			if i > depth {
				depth = i
			}
		}
		split, ok := bestSplit(group, ix, strict)
		if !ok {
			return
		}
		cand := &selection{teamA: split.teamA, teamB: split.teamB, depth: depth, score: split.score}
		if best == nil || cand.better(best) {
			best = cand
		}
	}

	// Depth-first over unit subsets whose member count is exactly 4,
	// always anchored on unit 0.
	var walk func(next, size int, chosen []int)
	walk = func(next, size int, chosen []int) {
		if size == 4 {
			consider(chosen)
			return
		}
		for i := next; i < len(window); i++ {
			if size+window[i].size() > 4 {
				continue
			}
			walk(i+1, size+window[i].size(), append(chosen, i))
		}
	}
	walk(1, window[0].size(), []int{0})

	return best
}

// better orders selections: shallower queue reach wins, then the split
// score, then the canonical group key for a deterministic final tie-break.
func (s *selection) better(o *selection) bool {
	if s.depth != o.depth {
		return s.depth < o.depth
	}
	if s.score != o.score {
		return s.score.less(o.score)
	}
	return models.GroupKey(s.ids()) < models.GroupKey(o.ids())
}

func (s *selection) ids() []string {
	return []string{s.teamA[0].ID, s.teamA[1].ID, s.teamB[0].ID, s.teamB[1].ID}
}
