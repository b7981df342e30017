package models

import (
	"sort"
	"strings"
	"time"
)

// LedgerKind distinguishes why a grouping was recorded. Cancelled entries
// carry a longer TTL and are treated more strictly by the matchmaker.
type LedgerKind string

const (
	LedgerFinished  LedgerKind = "finished"
	LedgerCancelled LedgerKind = "cancelled"
)

// LedgerEntry is one time-bounded memory of a recent match grouping.
type LedgerEntry struct {
	Kind       LedgerKind `json:"kind"`
	CreatedAt  time.Time  `json:"created_at"`
	TTLSeconds int        `json:"ttl_seconds"`
	GroupKey   string     `json:"group_key"`  // canonical key of all 4 ids
	Teammates  []string   `json:"teammates"`  // canonical pair keys
	Opponents  []string   `json:"opponents,omitempty"`
}

// Expired reports whether the entry is past its TTL.
func (e *LedgerEntry) Expired(now time.Time) bool {
	return now.After(e.CreatedAt.Add(time.Duration(e.TTLSeconds) * time.Second))
}

// PairKey returns the canonical key for an unordered pair of player ids.
func PairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "|" + b
}

// GroupKey returns the canonical key for an unordered set of player ids.
func GroupKey(ids []string) string {
	sorted := make([]string, len(ids))
	copy(sorted, ids)
	sort.Strings(sorted)
	return strings.Join(sorted, "|")
}
