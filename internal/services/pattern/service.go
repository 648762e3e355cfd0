// Package pattern runs the batch specialists (anomaly detection and
// geographic feasibility) over a transaction history.
package pattern

import (
	"fmt"
	"sort"
	"time"

	"fraudguard/internal/models"
	"fraudguard/internal/services/anomaly"
	"fraudguard/internal/services/geo"
	"fraudguard/internal/validation"
)

// DefaultAnalysisType is used when the caller does not name one.
const DefaultAnalysisType = "fraud_patterns"

// Service analyzes transaction batches.
type Service struct {
	checker *geo.Checker
}

// NewService builds the batch analyzer around a geographic checker.
func NewService(checker *geo.Checker) *Service {
	return &Service{checker: checker}
}

// Analyze validates each transaction individually, runs the geographic
// checker over the valid ones, and measures the newest valid amount against
// the earlier ones. A malformed entry rejects only itself: the remainder is
// still analyzed and the rejection is surfaced in the report.
func (s *Service) Analyze(txs []models.Transaction, analysisType string) models.PatternReport {
	if analysisType == "" {
		analysisType = DefaultAnalysisType
	}

	var (
		valid    []models.Transaction
		rejected []models.RejectedTransaction
	)
	for _, tx := range txs {
		if err := validation.ValidateTransaction(tx); err != nil {
			rejected = append(rejected, models.RejectedTransaction{
				TransactionID: tx.TransactionID,
				Reason:        err.Error(),
			})
			continue
		}
		valid = append(valid, tx)
	}

	report := models.PatternReport{
		Findings:         s.checker.Check(valid),
		Rejected:         rejected,
		TransactionCount: len(valid),
		AnalysisType:     analysisType,
	}

	if len(valid) > 0 {
		current, history := splitNewest(valid)
		verdict := anomaly.Detect(current.Amount, history)
		report.Anomaly = &verdict
	}

	report.Summary = fmt.Sprintf("Found %d geographic impossibilities across %d transactions",
		len(report.Findings), len(valid))
	return report
}

// splitNewest returns the chronologically newest transaction and the amounts
// of all earlier ones.
func splitNewest(txs []models.Transaction) (models.Transaction, []float64) {
	type instant struct {
		tx models.Transaction
		at time.Time
	}
	ordered := make([]instant, 0, len(txs))
	for _, tx := range txs {
		at, _ := tx.Time() // already validated
		ordered = append(ordered, instant{tx: tx, at: at})
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].at.Before(ordered[j].at)
	})

	newest := ordered[len(ordered)-1].tx
	history := make([]float64, 0, len(ordered)-1)
	for _, entry := range ordered[:len(ordered)-1] {
		history = append(history, entry.tx.Amount)
	}
	return newest, history
}
