package club

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"izesquad-api/models"
)

func TestLoginCreatesAndUpdates(t *testing.T) {
	c := newTestClub(t)

	p := c.Login("u1", "Ada", "http://pic/1")
	assert.Equal(t, models.DefaultRating, p.Rating)
	assert.Equal(t, models.StatusOffline, p.Status)
	assert.True(t, p.Calibrating())

	p = c.Login("u1", "Ada L.", "")
	assert.Equal(t, "Ada L.", p.Nickname)
	assert.Equal(t, "http://pic/1", p.PictureURL, "empty fields never erase stored ones")
}

func TestCheckInIsIdempotent(t *testing.T) {
	c := newTestClub(t)
	c.Login("u1", "Ada", "")
	require.NoError(t, c.CheckIn("u1"))
	first := *c.state.Players["u1"].QueueSince

	time.Sleep(2 * time.Millisecond)
	require.NoError(t, c.CheckIn("u1"))
	assert.True(t, c.state.Players["u1"].QueueSince.Equal(first), "re-checking in keeps the queue position")
}

func TestCheckInRequiresActiveSession(t *testing.T) {
	c := newTestClub(t)
	c.Login("u1", "Ada", "")
	require.NoError(t, c.EndSession("admin"))
	assert.ErrorIs(t, c.CheckIn("u1"), ErrSessionInactive)
	assert.ErrorIs(t, c.CheckIn("ghost"), ErrSessionInactive)
}

func TestCheckOut(t *testing.T) {
	c := newTestClub(t)
	seedQueued(t, c, "u1", 1000, time.Now())

	require.NoError(t, c.CheckOut("u1"))
	p := c.state.Players["u1"]
	assert.Equal(t, models.StatusOffline, p.Status)
	assert.Nil(t, p.QueueSince)

	require.NoError(t, c.CheckOut("u1"), "checking out twice is a no-op")

	p.Status = models.StatusPlaying
	assert.ErrorIs(t, c.CheckOut("u1"), ErrPlayerBusy)
}

func TestCheckOutBreaksPairing(t *testing.T) {
	c := newTestClub(t)
	since := time.Now()
	seedQueued(t, c, "u1", 1000, since)
	seedQueued(t, c, "u2", 1000, since)
	commitPair(t, c, "u1", "u2")

	require.NoError(t, c.CheckOut("u1"))
	assert.Empty(t, c.state.Players["u1"].Commitment)
	assert.Empty(t, c.state.Players["u2"].Commitment)
}

func TestToggleRest(t *testing.T) {
	c := newTestClub(t)
	seedQueued(t, c, "u1", 1000, time.Now())

	resting, err := c.ToggleRest("u1")
	require.NoError(t, err)
	assert.True(t, resting)

	resting, err = c.ToggleRest("u1")
	require.NoError(t, err)
	assert.False(t, resting)

	require.NoError(t, c.CheckOut("u1"))
	_, err = c.ToggleRest("u1")
	assert.ErrorIs(t, err, ErrNotCheckedIn)
}

func TestPartnerRequestLifecycle(t *testing.T) {
	c := newTestClub(t)
	since := time.Now()
	seedQueued(t, c, "u1", 1000, since)
	seedQueued(t, c, "u2", 1000, since)
	seedQueued(t, c, "u3", 1000, since)

	require.NoError(t, c.RequestPartner("u1", "u2"))
	require.NoError(t, c.RequestPartner("u1", "u2"), "repeating the same request is a no-op")
	assert.ErrorIs(t, c.RequestPartner("u1", "u3"), ErrAlreadyCommitted)

	_, outgoing, _, err := c.Inbox("u1")
	require.NoError(t, err)
	assert.Equal(t, "u2", outgoing)
	_, _, incoming, err := c.Inbox("u2")
	require.NoError(t, err)
	assert.Equal(t, []string{"u1"}, incoming)

	require.NoError(t, c.RespondPartner("u2", "u1", true))
	assert.Equal(t, "u2", c.state.Players["u1"].Commitment)
	assert.Equal(t, "u1", c.state.Players["u2"].Commitment)
	assert.Empty(t, c.state.Players["u1"].OutgoingRequest)

	assert.ErrorIs(t, c.RequestPartner("u1", "u3"), ErrAlreadyPaired)

	require.NoError(t, c.CancelPartner("u1"))
	assert.Empty(t, c.state.Players["u1"].Commitment)
	assert.Empty(t, c.state.Players["u2"].Commitment)
}

func TestPartnerRequestDecline(t *testing.T) {
	c := newTestClub(t)
	since := time.Now()
	seedQueued(t, c, "u1", 1000, since)
	seedQueued(t, c, "u2", 1000, since)

	require.NoError(t, c.RequestPartner("u1", "u2"))
	require.NoError(t, c.RespondPartner("u2", "u1", false))
	assert.Empty(t, c.state.Players["u1"].OutgoingRequest)
	assert.Empty(t, c.state.Players["u2"].IncomingRequests)

	assert.ErrorIs(t, c.RespondPartner("u2", "u1", true), ErrRequestNotFound)
}

func TestAcceptClearsCompetingRequests(t *testing.T) {
	c := newTestClub(t)
	since := time.Now()
	for _, id := range []string{"u1", "u2", "u3"} {
		seedQueued(t, c, id, 1000, since)
	}
	require.NoError(t, c.RequestPartner("u1", "u2"))
	require.NoError(t, c.RequestPartner("u3", "u2"))

	require.NoError(t, c.RespondPartner("u2", "u1", true))
	// u3's dangling request toward the now-committed u2 must not linger as
	// an acceptable offer.
	assert.ErrorIs(t, c.RespondPartner("u2", "u3", true), ErrAlreadyPaired)
}

func TestRequestPartnerGuards(t *testing.T) {
	c := newTestClub(t)
	seedQueued(t, c, "u1", 1000, time.Now())
	c.Login("offline", "Off", "")

	assert.ErrorIs(t, c.RequestPartner("u1", "u1"), ErrRequestNotFound)
	assert.ErrorIs(t, c.RequestPartner("u1", "ghost"), ErrPlayerNotFound)
	assert.ErrorIs(t, c.RequestPartner("offline", "u1"), ErrNotCheckedIn)
}
