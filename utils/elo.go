package utils

import "math"

// ExpectedScore is the standard logistic Elo expectation for rSelf
// against rOpp.
func ExpectedScore(rSelf, rOpp float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, (rOpp-rSelf)/400.0))
}

// TeamAverage treats a doubles team as one rating.
func TeamAverage(a, b int) float64 {
	return float64(a+b) / 2.0
}

// MarginFactor scales a rating delta by how decisive the result was. The
// clamp keeps blowouts from dominating the outcome term.
func MarginFactor(setDiff, pointDiff, target int) float64 {
	if target < 1 {
		target = 1
	}
	g := 1.0 + 0.12*float64(setDiff) + 0.08*(float64(pointDiff)/float64(target))
	return math.Max(0.80, math.Min(1.60, g))
}

// TierMultiplier slows rating movement in higher-rated matches.
func TierMultiplier(combinedAverage float64) float64 {
	switch {
	case combinedAverage >= 1800:
		return 0.8
	case combinedAverage >= 1400:
		return 0.9
	default:
		return 1.0
	}
}
