package club

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"izesquad-api/models"
)

func TestBuildPoolOrdersByWaitingTime(t *testing.T) {
	c := newTestClub(t)
	base := time.Now().Add(-time.Hour)
	seedQueued(t, c, "late", 1000, base.Add(20*time.Minute))
	seedQueued(t, c, "early", 1000, base)
	seedQueued(t, c, "mid", 1000, base.Add(10*time.Minute))

	pool := c.buildPoolLocked(time.Now())
	require.Len(t, pool, 3)
	assert.Equal(t, []string{"early"}, pool[0].ids())
	assert.Equal(t, []string{"mid"}, pool[1].ids())
	assert.Equal(t, []string{"late"}, pool[2].ids())
}

func TestBuildPoolTieBreaksOnSessionLoad(t *testing.T) {
	c := newTestClub(t)
	since := time.Now().Add(-time.Hour)
	seedQueued(t, c, "busy", 1000, since)
	seedQueued(t, c, "fresh", 1000, since)
	c.state.Players["busy"].SessionGames = 3

	pool := c.buildPoolLocked(time.Now())
	require.Len(t, pool, 2)
	assert.Equal(t, []string{"fresh"}, pool[0].ids())
}

func TestBuildPoolMergesCommittedPair(t *testing.T) {
	c := newTestClub(t)
	base := time.Now().Add(-time.Hour)
	seedQueued(t, c, "patient", 1000, base)
	seedQueued(t, c, "partner", 1000, base.Add(30*time.Minute))
	seedQueued(t, c, "solo", 1000, base.Add(10*time.Minute))
	commitPair(t, c, "patient", "partner")
	c.state.Players["patient"].SessionGames = 2
	c.state.Players["partner"].SessionGames = 0

	pool := c.buildPoolLocked(time.Now())
	require.Len(t, pool, 2)

	// The pair inherits its more patient member's priority and lighter load,
	// so it outranks the solo who checked in between them.
	pair := pool[0]
	require.Equal(t, 2, pair.size())
	assert.ElementsMatch(t, []string{"patient", "partner"}, pair.ids())
	assert.True(t, pair.priority.Equal(base))
	assert.Equal(t, 0, pair.games)
	assert.Equal(t, []string{"solo"}, pool[1].ids())
}

func TestBuildPoolCommittedWithIneligiblePartnerQueuesSolo(t *testing.T) {
	c := newTestClub(t)
	base := time.Now().Add(-time.Hour)
	seedQueued(t, c, "a", 1000, base)
	seedQueued(t, c, "b", 1000, base.Add(time.Minute))
	commitPair(t, c, "a", "b")
	_, err := c.ToggleRest("b")
	require.NoError(t, err)

	pool := c.buildPoolLocked(time.Now())
	require.Len(t, pool, 1)
	assert.Equal(t, []string{"a"}, pool[0].ids())
	assert.Equal(t, "b", c.state.Players["a"].Commitment, "the link itself survives the rest")
}

func TestBuildPoolSkipsRestingAndCalledPlayers(t *testing.T) {
	c := newTestClub(t)
	since := time.Now().Add(-time.Hour)
	seedQueued(t, c, "in", 1000, since)
	seedQueued(t, c, "resting", 1000, since)
	seedQueued(t, c, "called", 1000, since)
	_, err := c.ToggleRest("resting")
	require.NoError(t, err)
	c.state.Players["called"].Status = models.StatusCalled

	pool := c.buildPoolLocked(time.Now())
	require.Len(t, pool, 1)
	assert.Equal(t, []string{"in"}, pool[0].ids())
}

func TestBuildPoolClearsExpiredRests(t *testing.T) {
	c := newTestClub(t)
	since := time.Now().Add(-time.Hour)
	p := seedQueued(t, c, "napper", 1000, since)
	p.Status = models.StatusResting
	until := time.Now().Add(-time.Second)
	p.RestUntil = &until

	pool := c.buildPoolLocked(time.Now())
	require.Len(t, pool, 1)
	assert.Equal(t, models.StatusQueued, p.Status)
	assert.Nil(t, p.RestUntil)
}
