package club

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"izesquad-api/models"
)

func rankedPlayer(id string, rating int) *models.Player {
	return &models.Player{ID: id, Rating: rating, CalGames: models.CalibrationGames}
}

func emptyIndex() *ledgerIndex {
	return &ledgerIndex{
		teammates: make(map[string]models.LedgerKind),
		opponents: make(map[string]models.LedgerKind),
		groups:    make(map[string]models.LedgerKind),
	}
}

func teamIDs(team [2]*models.Player) []string {
	return []string{team[0].ID, team[1].ID}
}

func TestEffectiveRatingCalibrationBump(t *testing.T) {
	ranked := rankedPlayer("a", 1200)
	assert.Equal(t, 1200, effectiveRating(ranked))

	hot := &models.Player{ID: "b", Rating: 1000, CalGames: 3, CalWins: 3, CalLosses: 0, CalStreak: 3}
	// 3 net wins at 80 plus 2 extra streak wins at 40.
	assert.Equal(t, 1000+3*80+2*40, effectiveRating(hot))

	cold := &models.Player{ID: "c", Rating: 1000, CalGames: 2, CalWins: 0, CalLosses: 2}
	assert.Equal(t, 1000-2*80, effectiveRating(cold))
}

func TestBestSplitMinimizesIntraTeamGap(t *testing.T) {
	group := []*models.Player{
		rankedPlayer("a", 1000),
		rankedPlayer("b", 1200),
		rankedPlayer("c", 1400),
		rankedPlayer("d", 1600),
	}
	split, ok := bestSplit(group, emptyIndex(), true)
	require.True(t, ok)

	// Pairing neighbors keeps the weakest partner gap even though the
	// resulting team sums are the least balanced option.
	assert.ElementsMatch(t, []string{"a", "b"}, teamIDs(split.teamA))
	assert.ElementsMatch(t, []string{"c", "d"}, teamIDs(split.teamB))
	assert.Equal(t, 200, split.score.maxGap)
}

func TestBestSplitKeepsCommittedPairTogether(t *testing.T) {
	a := rankedPlayer("a", 1000)
	d := rankedPlayer("d", 1600)
	a.Commitment, d.Commitment = "d", "a"
	group := []*models.Player{a, rankedPlayer("b", 1200), rankedPlayer("c", 1400), d}

	split, ok := bestSplit(group, emptyIndex(), true)
	require.True(t, ok)
	var together [2]*models.Player
	if split.teamA[0].ID == "a" || split.teamA[1].ID == "a" {
		together = split.teamA
	} else {
		together = split.teamB
	}
	assert.ElementsMatch(t, []string{"a", "d"}, teamIDs(together))
}

func TestBestSplitStrictBlocksCancelledGroup(t *testing.T) {
	group := []*models.Player{
		rankedPlayer("a", 1000),
		rankedPlayer("b", 1000),
		rankedPlayer("c", 1000),
		rankedPlayer("d", 1000),
	}
	ix := emptyIndex()
	ix.groups[models.GroupKey([]string{"a", "b", "c", "d"})] = models.LedgerCancelled

	_, ok := bestSplit(group, ix, true)
	assert.False(t, ok, "strict pass must refuse a cancelled grouping")

	split, ok := bestSplit(group, ix, false)
	require.True(t, ok, "relaxed pass keeps the grouping available")
	assert.GreaterOrEqual(t, split.score.diversity, penaltyCancelledRepeat)
}

func TestBestSplitAvoidsRecentTeammates(t *testing.T) {
	group := []*models.Player{
		rankedPlayer("a", 1000),
		rankedPlayer("b", 1200),
		rankedPlayer("c", 1400),
		rankedPlayer("d", 1600),
	}
	ix := emptyIndex()
	ix.teammates[models.PairKey("a", "b")] = models.LedgerFinished

	split, ok := bestSplit(group, ix, true)
	require.True(t, ok)
	// The tightest split repeats a recent partnership, so the next one wins.
	assert.ElementsMatch(t, []string{"a", "c"}, teamIDs(split.teamA))
	assert.ElementsMatch(t, []string{"b", "d"}, teamIDs(split.teamB))
	assert.Zero(t, split.score.diversity)
}

func TestBestSplitCommitmentExemptFromTeammatePenalty(t *testing.T) {
	a := rankedPlayer("a", 1000)
	b := rankedPlayer("b", 1200)
	a.Commitment, b.Commitment = "b", "a"
	group := []*models.Player{a, b, rankedPlayer("c", 1400), rankedPlayer("d", 1600)}

	ix := emptyIndex()
	ix.teammates[models.PairKey("a", "b")] = models.LedgerFinished

	split, ok := bestSplit(group, ix, true)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"a", "b"}, teamIDs(split.teamA))
	assert.Zero(t, split.score.diversity, "players who asked to repeat are not penalized for it")
}

func TestBestSplitOpponentPenaltyBreaksTies(t *testing.T) {
	group := []*models.Player{
		rankedPlayer("a", 1000),
		rankedPlayer("b", 1000),
		rankedPlayer("c", 1000),
		rankedPlayer("d", 1000),
	}
	ix := emptyIndex()
	// a faced b across the net recently; the split that repeats that
	// matchup carries the opponent penalty.
	ix.opponents[models.PairKey("a", "b")] = models.LedgerFinished

	split, ok := bestSplit(group, ix, true)
	require.True(t, ok)
	same := teamIDs(split.teamA)
	if split.teamB[0].ID == "a" || split.teamB[1].ID == "a" {
		same = teamIDs(split.teamB)
	}
	assert.Contains(t, same, "a")
	assert.Contains(t, same, "b")
	assert.Zero(t, split.score.diversity)
}
