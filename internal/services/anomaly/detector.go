// Package anomaly flags amounts that deviate statistically from a user's
// spending history.
package anomaly

import (
	"fmt"
	"math"

	"fraudguard/internal/models"
)

const (
	// zScoreThreshold is how many standard deviations from the mean an
	// amount may sit before it is flagged.
	zScoreThreshold = 2.5

	// scoreDivisor normalizes |z| into the [0,1] anomaly score.
	scoreDivisor = 3.0

	// noHistoryScore is the fixed low-confidence score reported when no
	// baseline exists to compare against.
	noHistoryScore = 0.8
)

// Detect measures current against the population statistics of history.
//
// Two degenerate cases resolve to explicit fallbacks rather than errors: an
// empty history is itself an anomaly (score fixed at 0.8), and a
// zero-variance history yields z=0 with no anomaly, since there is no spread
// to exceed.
func Detect(current float64, history []float64) models.AnomalyVerdict {
	if len(history) == 0 {
		return models.AnomalyVerdict{
			IsAnomaly:     true,
			AnomalyScore:  noHistoryScore,
			CurrentAmount: current,
			Analysis:      "No historical data available",
		}
	}

	mean := 0.0
	for _, v := range history {
		mean += v
	}
	mean /= float64(len(history))

	variance := 0.0
	for _, v := range history {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(history))
	stdDev := math.Sqrt(variance)

	zScore := 0.0
	if stdDev > 0 {
		zScore = (current - mean) / stdDev
	}

	return models.AnomalyVerdict{
		IsAnomaly:      math.Abs(zScore) > zScoreThreshold,
		ZScore:         round2(zScore),
		AnomalyScore:   round2(math.Min(math.Abs(zScore)/scoreDivisor, 1.0)),
		MeanHistorical: round2(mean),
		StdDeviation:   round2(stdDev),
		CurrentAmount:  current,
		Analysis:       fmt.Sprintf("Current amount is %.1f standard deviations from mean", math.Abs(zScore)),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
