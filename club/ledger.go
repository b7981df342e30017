package club

import (
	"time"

	"izesquad-api/models"
)

// Ledger TTLs. Cancelled groupings are blocked for longer than finished
// ones so a cancelled match cannot immediately reform.
const (
	cancelledTTLSeconds = 600
	finishedTTLSeconds  = 300
)

// ledgerIndex is the pruned, keyed view of the ledger a single matchmaking
// pass works against. When a pair or group appears with both kinds, the
// cancelled kind wins.
type ledgerIndex struct {
	teammates map[string]models.LedgerKind
	opponents map[string]models.LedgerKind
	groups    map[string]models.LedgerKind
}

func (ix *ledgerIndex) put(m map[string]models.LedgerKind, key string, kind models.LedgerKind) {
	if prev, ok := m[key]; ok && prev == models.LedgerCancelled {
		return
	}
	m[key] = kind
}

// pruneLedgerLocked drops expired entries in place.
func (c *Club) pruneLedgerLocked(now time.Time) {
	kept := c.state.Ledger[:0]
	for _, e := range c.state.Ledger {
		if !e.Expired(now) {
			kept = append(kept, e)
		}
	}
	if len(kept) != len(c.state.Ledger) {
		c.markDirtyLocked()
	}
	c.state.Ledger = kept
}

func (c *Club) ledgerIndexLocked(now time.Time) *ledgerIndex {
	c.pruneLedgerLocked(now)
	ix := &ledgerIndex{
		teammates: make(map[string]models.LedgerKind),
		opponents: make(map[string]models.LedgerKind),
		groups:    make(map[string]models.LedgerKind),
	}
	for _, e := range c.state.Ledger {
		for _, k := range e.Teammates {
			ix.put(ix.teammates, k, e.Kind)
		}
		for _, k := range e.Opponents {
			ix.put(ix.opponents, k, e.Kind)
		}
		ix.put(ix.groups, e.GroupKey, e.Kind)
	}
	return ix
}

// recordMatchLocked appends a ledger entry for a formed match's grouping.
// Finished entries remember opponents as well so the scorer can vary who
// plays against whom, not just who partners whom.
func (c *Club) recordMatchLocked(m *models.Match, kind models.LedgerKind, now time.Time) {
	entry := models.LedgerEntry{
		Kind:      kind,
		CreatedAt: now,
		GroupKey:  models.GroupKey(m.Participants()),
		Teammates: []string{
			models.PairKey(m.TeamA[0], m.TeamA[1]),
			models.PairKey(m.TeamB[0], m.TeamB[1]),
		},
	}
	switch kind {
	case models.LedgerCancelled:
		entry.TTLSeconds = cancelledTTLSeconds
	default:
		entry.TTLSeconds = finishedTTLSeconds
		for _, a := range m.TeamA {
			for _, b := range m.TeamB {
				entry.Opponents = append(entry.Opponents, models.PairKey(a, b))
			}
		}
	}
	c.state.Ledger = append(c.state.Ledger, entry)
	c.markDirtyLocked()
}
