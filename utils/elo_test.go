package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpectedScore(t *testing.T) {
	assert.InDelta(t, 0.5, ExpectedScore(1000, 1000), 1e-9)
	assert.InDelta(t, 1.0, ExpectedScore(1000, 1400)+ExpectedScore(1400, 1000), 1e-9)
	assert.Greater(t, ExpectedScore(1400, 1000), 0.5)
	// A 400-point edge is the canonical 10:1 expectation.
	assert.InDelta(t, 10.0/11.0, ExpectedScore(1400, 1000), 1e-9)
}

func TestMarginFactor(t *testing.T) {
	assert.InDelta(t, 1.0, MarginFactor(0, 0, 21), 1e-9)
	assert.InDelta(t, 1.0+0.12+0.08*6.0/21.0, MarginFactor(1, 6, 21), 1e-9)
	assert.InDelta(t, 1.60, MarginFactor(3, 60, 21), 1e-9, "clamped high")
	assert.InDelta(t, 1.0, MarginFactor(0, 0, 0), 1e-9, "degenerate target guarded")
}

func TestTierMultiplier(t *testing.T) {
	assert.InDelta(t, 1.0, TierMultiplier(1399.9), 1e-9)
	assert.InDelta(t, 0.9, TierMultiplier(1400), 1e-9)
	assert.InDelta(t, 0.9, TierMultiplier(1799.9), 1e-9)
	assert.InDelta(t, 0.8, TierMultiplier(1800), 1e-9)
}
