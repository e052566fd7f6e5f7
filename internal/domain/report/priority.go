package report

import (
	"math"
	"time"
)

const (
	// minAgeHours keeps brand-new reports from producing an unbounded score.
	minAgeHours = 0.5

	highScoreThreshold   = 20.0
	mediumScoreThreshold = 5.0
)

// ComputePriorityScore returns upvotes*10 divided by the report age in hours,
// rounded to two decimals. A zero createdAt is treated as now.
func ComputePriorityScore(upvotes int, createdAt, now time.Time) float64 {
	now = now.UTC()
	if createdAt.IsZero() {
		createdAt = now
	}
	createdAt = createdAt.UTC()

	ageHours := math.Max(now.Sub(createdAt).Hours(), minAgeHours)
	return round2(float64(upvotes*10) / ageHours)
}

// ScoreToLabel maps a priority score onto its label.
func ScoreToLabel(score float64) Priority {
	switch {
	case score >= highScoreThreshold:
		return PriorityHigh
	case score >= mediumScoreThreshold:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
