package club

import "errors"

// Validation failures are returned synchronously with no partial mutation.
var (
	ErrPlayerNotFound   = errors.New("player not found")
	ErrCourtNotFound    = errors.New("court not found")
	ErrCourtBusy        = errors.New("court already has a match")
	ErrNoActiveMatch    = errors.New("no match on this court")
	ErrNotEnoughPlayers = errors.New("not enough eligible players")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrSessionInactive  = errors.New("session not active")
	ErrInvalidScore     = errors.New("invalid set score")
	ErrInvalidSetCount  = errors.New("set count does not match best-of")
	ErrAlreadyCommitted = errors.New("player already has a pending request")
	ErrAlreadyPaired    = errors.New("player already has a partner")
	ErrRequestNotFound  = errors.New("pairing request not found")
	ErrNotCheckedIn     = errors.New("player is not checked in")
	ErrPlayerBusy       = errors.New("player is in a match")
)
