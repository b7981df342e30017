package club

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"izesquad-api/models"
)

func TestValidateSet(t *testing.T) {
	cfg := models.SessionConfig{TargetPoints: 21, BestOf: 1}
	cases := []struct {
		name  string
		a, b  int
		valid bool
	}{
		{"clean win at target", 21, 19, true},
		{"deuce resolved by two", 22, 20, true},
		{"one-point finish at target", 21, 20, false},
		{"sudden death at cap", 30, 29, true},
		{"two-point finish at cap", 30, 28, true},
		{"impossible cap margin", 30, 27, false},
		{"deuce finish deep in overtime", 25, 23, true},
		{"overtime without two-point lead", 25, 20, false},
		{"points beyond cap", 31, 29, false},
		{"winner short of target", 19, 17, false},
		{"drawn set", 21, 21, false},
		{"negative points", -1, 3, false},
		{"loser side given first", 19, 21, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateSet(cfg, tc.a, tc.b)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidScore)
			}
		})
	}
}

func TestValidateSetShortTarget(t *testing.T) {
	cfg := models.SessionConfig{TargetPoints: 11, BestOf: 1}
	assert.NoError(t, validateSet(cfg, 11, 9))
	assert.NoError(t, validateSet(cfg, 13, 11))
	assert.ErrorIs(t, validateSet(cfg, 11, 10), ErrInvalidScore)
	assert.ErrorIs(t, validateSet(cfg, 14, 11), ErrInvalidScore)
}

func TestWinnerFromSets(t *testing.T) {
	bo1 := models.SessionConfig{TargetPoints: 21, BestOf: 1}
	winner, _ := winnerFromSets(bo1, []models.SetScore{{A: 21, B: 15}})
	assert.Equal(t, "A", winner)

	bo3 := models.SessionConfig{TargetPoints: 21, BestOf: 3}
	winner, tally := winnerFromSets(bo3, []models.SetScore{
		{A: 21, B: 15}, {A: 18, B: 21}, {A: 21, B: 19},
	})
	assert.Equal(t, "A", winner)
	assert.Equal(t, 2, tally.setsA)
	assert.Equal(t, 1, tally.setsB)

	// A split best-of-2 falls to total points.
	bo2 := models.SessionConfig{TargetPoints: 21, BestOf: 2}
	winner, _ = winnerFromSets(bo2, []models.SetScore{{A: 21, B: 10}, {A: 19, B: 21}})
	assert.Equal(t, "A", winner)

	// Equal points as well: the final set decides.
	winner, _ = winnerFromSets(bo2, []models.SetScore{{A: 21, B: 18}, {A: 18, B: 21}})
	assert.Equal(t, "B", winner)
}

func ratingTestMatch() *models.Match {
	return &models.Match{
		ID:    "m1",
		TeamA: []string{"a1", "a2"},
		TeamB: []string{"b1", "b2"},
	}
}

func TestApplyRatingZeroSumForRankedPlayers(t *testing.T) {
	c := newTestClub(t)
	since := time.Now()
	for _, id := range []string{"a1", "a2", "b1", "b2"} {
		seedQueued(t, c, id, 1000, since)
	}

	tally := setTally{setsA: 1, pointsA: 21, pointsB: 15}
	deltas, err := c.applyRatingLocked(ratingTestMatch(), c.state.Settings.Config, "A", tally)
	require.NoError(t, err)

	// 21-15 at equal ratings: K 25, margin 1 + 0.12 + 0.08*6/21, half a win.
	assert.Equal(t, 14, deltas["a1"])
	assert.Equal(t, 14, deltas["a2"])
	assert.Equal(t, -14, deltas["b1"])
	assert.Equal(t, -14, deltas["b2"])

	sum := 0
	for _, d := range deltas {
		sum += d
	}
	assert.Zero(t, sum)
	assert.Equal(t, 1014, c.state.Players["a1"].Rating)
	assert.Equal(t, 986, c.state.Players["b1"].Rating)
}

func TestApplyRatingMovesAtLeastOnePoint(t *testing.T) {
	c := newTestClub(t)
	since := time.Now()
	seedQueued(t, c, "a1", 2400, since)
	seedQueued(t, c, "a2", 2400, since)
	seedQueued(t, c, "b1", 1000, since)
	seedQueued(t, c, "b2", 1000, since)

	// Overwhelming favorites win: the raw delta rounds to zero.
	tally := setTally{setsA: 1, pointsA: 21, pointsB: 15}
	deltas, err := c.applyRatingLocked(ratingTestMatch(), c.state.Settings.Config, "A", tally)
	require.NoError(t, err)
	assert.Equal(t, 1, deltas["a1"])
	assert.Equal(t, 1, deltas["a2"])
	assert.Equal(t, -1, deltas["b1"])
	assert.Equal(t, -1, deltas["b2"])
}

func TestApplyRatingCalibrationUsesLargerK(t *testing.T) {
	c := newTestClub(t)
	since := time.Now()
	for _, id := range []string{"a1", "a2", "b1", "b2"} {
		seedQueued(t, c, id, 1000, since)
	}
	fresh := c.state.Players["a1"]
	fresh.CalGames = 0 // first calibration game, K = 40 + 4*10

	tally := setTally{setsA: 1, pointsA: 21, pointsB: 15}
	deltas, err := c.applyRatingLocked(ratingTestMatch(), c.state.Settings.Config, "A", tally)
	require.NoError(t, err)
	assert.Greater(t, deltas["a1"], deltas["a2"], "calibrating player must move faster")
	assert.Equal(t, 46, deltas["a1"])
	assert.Equal(t, 14, deltas["a2"])
}

func TestPlayerKShrinksOverCalibration(t *testing.T) {
	p := &models.Player{CalGames: 0}
	assert.InDelta(t, 80.0, playerK(p), 1e-9)
	p.CalGames = 9
	assert.InDelta(t, 44.0, playerK(p), 1e-9)
	p.CalGames = models.CalibrationGames
	assert.InDelta(t, baseK, playerK(p), 1e-9)
}

func TestComputeCooldown(t *testing.T) {
	c := newTestClub(t)

	// No history, nobody waiting: the default average clamps the suggestion.
	c.computeCooldownLocked()
	assert.Equal(t, 12, c.state.Settings.SuggestedCooldown)

	// A full queue against two courts shrinks the suggestion sharply.
	since := time.Now()
	for _, id := range []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7", "p8"} {
		seedQueued(t, c, id, 1000, since)
	}
	c.computeCooldownLocked()
	assert.Equal(t, 2, c.state.Settings.SuggestedCooldown)
}
