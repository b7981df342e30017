package club

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"izesquad-api/models"
)

func TestPruneLedgerDropsExpiredEntries(t *testing.T) {
	c := newTestClub(t)
	now := time.Now()
	c.state.Ledger = []models.LedgerEntry{
		{Kind: models.LedgerCancelled, CreatedAt: now.Add(-11 * time.Minute), TTLSeconds: cancelledTTLSeconds, GroupKey: "a|b|c|d"},
		{Kind: models.LedgerFinished, CreatedAt: now.Add(-2 * time.Minute), TTLSeconds: finishedTTLSeconds, GroupKey: "e|f|g|h"},
	}

	c.pruneLedgerLocked(now)
	require.Len(t, c.state.Ledger, 1)
	assert.Equal(t, "e|f|g|h", c.state.Ledger[0].GroupKey)
}

func TestLedgerIndexCancelledWins(t *testing.T) {
	c := newTestClub(t)
	now := time.Now()
	pair := models.PairKey("a", "b")
	c.state.Ledger = []models.LedgerEntry{
		{Kind: models.LedgerFinished, CreatedAt: now, TTLSeconds: finishedTTLSeconds, GroupKey: "g1", Teammates: []string{pair}},
		{Kind: models.LedgerCancelled, CreatedAt: now, TTLSeconds: cancelledTTLSeconds, GroupKey: "g1", Teammates: []string{pair}},
	}
	ix := c.ledgerIndexLocked(now)
	assert.Equal(t, models.LedgerCancelled, ix.teammates[pair])
	assert.Equal(t, models.LedgerCancelled, ix.groups["g1"])

	// Same outcome with the entries in the opposite order.
	c.state.Ledger[0], c.state.Ledger[1] = c.state.Ledger[1], c.state.Ledger[0]
	ix = c.ledgerIndexLocked(now)
	assert.Equal(t, models.LedgerCancelled, ix.teammates[pair])
}

func TestRecordMatchLedgerShape(t *testing.T) {
	c := newTestClub(t)
	m := &models.Match{
		TeamA: []string{"b", "a"},
		TeamB: []string{"d", "c"},
	}
	now := time.Now()

	c.recordMatchLocked(m, models.LedgerFinished, now)
	require.Len(t, c.state.Ledger, 1)
	fin := c.state.Ledger[0]
	assert.Equal(t, finishedTTLSeconds, fin.TTLSeconds)
	assert.Equal(t, models.GroupKey([]string{"a", "b", "c", "d"}), fin.GroupKey)
	assert.ElementsMatch(t, []string{"a|b", "c|d"}, fin.Teammates)
	assert.ElementsMatch(t, []string{"b|d", "b|c", "a|d", "a|c"}, fin.Opponents)

	c.recordMatchLocked(m, models.LedgerCancelled, now)
	can := c.state.Ledger[1]
	assert.Equal(t, cancelledTTLSeconds, can.TTLSeconds)
	assert.Empty(t, can.Opponents)
}

func TestPairAndGroupKeysAreCanonical(t *testing.T) {
	assert.Equal(t, models.PairKey("a", "b"), models.PairKey("b", "a"))
	assert.Equal(t,
		models.GroupKey([]string{"d", "b", "a", "c"}),
		models.GroupKey([]string{"a", "b", "c", "d"}))
}
