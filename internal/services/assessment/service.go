// Package assessment wraps the risk factor model and the merchant reputation
// checker into the single-transaction assessment boundary.
package assessment

import (
	"fraudguard/internal/models"
	"fraudguard/internal/services/merchant"
	"fraudguard/internal/services/risk"
	"fraudguard/internal/validation"
)

// defaultAverageSpending stands in when the caller supplies no baseline.
const defaultAverageSpending = 500.0

// Service assesses individual transactions.
type Service struct {
	scorer    *risk.Service
	merchants *merchant.Service
}

// NewService wires the assessment boundary.
func NewService(scorer *risk.Service, merchants *merchant.Service) *Service {
	return &Service{scorer: scorer, merchants: merchants}
}

// Assess validates the transaction, scores it against the baseline (or the
// default profile when none is supplied), and resolves the merchant's
// reputation. Validation failures are returned to the caller, never scored.
func (s *Service) Assess(tx models.Transaction, profile *models.UserBaseline) (models.RiskReport, error) {
	if err := validation.ValidateTransaction(tx); err != nil {
		return models.RiskReport{}, err
	}

	baseline := models.UserBaseline{AverageSpending: defaultAverageSpending}
	if profile != nil {
		baseline = *profile
	}

	score := s.scorer.Score(tx, baseline)
	status := s.merchants.Check(tx.Merchant, tx.MerchantCategory)

	return models.RiskReport{
		RiskScore: score.Score,
		RiskLevel: score.Level,
		Factors:   score.Factors,
		Merchant:  status,
	}, nil
}
