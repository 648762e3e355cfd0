// Package geo detects transaction sequences whose locations could not
// feasibly be reached in the elapsed time.
package geo

import (
	"math"
	"sort"
	"time"

	"fraudguard/internal/models"
)

// Checker walks an ordered transaction sequence and flags infeasible travel.
type Checker struct {
	estimator TravelEstimator
}

// NewChecker builds a checker around the given estimator.
func NewChecker(estimator TravelEstimator) *Checker {
	return &Checker{estimator: estimator}
}

// Check returns a finding for every consecutive pair of transactions whose
// location change was not physically reachable in the elapsed time. Input is
// sorted by timestamp defensively; fewer than two transactions yield an empty
// result.
func (c *Checker) Check(txs []models.Transaction) []models.GeographicFinding {
	if len(txs) < 2 {
		return nil
	}

	ordered := make([]txInstant, 0, len(txs))
	for _, tx := range txs {
		ts, err := tx.Time()
		if err != nil {
			continue
		}
		ordered = append(ordered, txInstant{tx: tx, at: ts})
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].at.Before(ordered[j].at)
	})

	var findings []models.GeographicFinding
	for i := 1; i < len(ordered); i++ {
		prev, curr := ordered[i-1], ordered[i]
		if prev.tx.Location == curr.tx.Location {
			continue
		}

		minimum, ok := c.estimator.MinimumTravelMinutes(prev.tx.Location, curr.tx.Location)
		if !ok {
			continue
		}

		elapsed := curr.at.Sub(prev.at).Minutes()
		if elapsed >= minimum {
			continue
		}

		findings = append(findings, models.GeographicFinding{
			FromTransactionID: prev.tx.TransactionID,
			ToTransactionID:   curr.tx.TransactionID,
			FromLocation:      prev.tx.Location,
			ToLocation:        curr.tx.Location,
			ElapsedMinutes:    round2(elapsed),
			MinimumMinutes:    round2(minimum),
			Feasible:          false,
		})
	}
	return findings
}

type txInstant struct {
	tx models.Transaction
	at time.Time
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
