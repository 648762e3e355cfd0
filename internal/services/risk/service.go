// Package risk implements the weighted risk factor model for a single
// transaction. Scoring is pure and deterministic: the same transaction and
// baseline always produce the same breakdown.
package risk

import (
	"math"

	"fraudguard/internal/config"
	"fraudguard/internal/models"
)

// Term caps. Each factor is bounded to its own sub-range; the clipped sum
// never exceeds maxTotalScore.
const (
	maxAmountRisk        = 30.0
	maxMerchantRisk      = 25.0
	maxLocationRisk      = 20.0
	maxTimeRisk          = 15.0
	maxInternationalRisk = 10.0
	maxTotalScore        = 100.0

	defaultCategoryRisk = 0.5

	highThreshold   = 70.0
	mediumThreshold = 40.0
)

// Service scores transactions against immutable reference tables.
type Service struct {
	categoryRisk      map[string]float64
	highRiskLocations map[string]struct{}
}

// NewService builds a scorer over the given reference data.
func NewService(ref *config.ReferenceData) *Service {
	return &Service{
		categoryRisk:      ref.CategoryRiskScores,
		highRiskLocations: ref.HighRiskLocationSet(),
	}
}

// Score computes the weighted risk breakdown for tx against the user's
// baseline. The transaction is assumed validated; an unparseable timestamp
// falls back to a neutral mid-day hour.
func (s *Service) Score(tx models.Transaction, baseline models.UserBaseline) models.RiskScore {
	factors := models.RiskFactorBreakdown{
		AmountRisk:        s.amountRisk(tx.Amount, baseline.AverageSpending),
		MerchantRisk:      s.merchantRisk(tx.MerchantCategory),
		LocationRisk:      s.locationRisk(tx.Location, tx.IsInternational),
		TimeRisk:          s.timeRisk(tx),
		InternationalRisk: s.internationalRisk(tx.IsInternational),
	}

	total := factors.AmountRisk + factors.MerchantRisk + factors.LocationRisk +
		factors.TimeRisk + factors.InternationalRisk
	total = math.Min(total, maxTotalScore)

	return models.RiskScore{
		Score:   round2(total),
		Level:   Level(total),
		Factors: factors,
	}
}

// Level classifies a total score.
func Level(total float64) string {
	switch {
	case total >= highThreshold:
		return models.RiskLevelHigh
	case total >= mediumThreshold:
		return models.RiskLevelMedium
	default:
		return models.RiskLevelLow
	}
}

// amountRisk scores the amount relative to the user's average spending.
// Boundaries are strict: a ratio of exactly 10 scores 20, not 30. A baseline
// of zero or less means no spending history; the raw amount then stands in
// for the ratio, so large unbaselined amounts score the maximum.
func (s *Service) amountRisk(amount, averageSpending float64) float64 {
	ratio := amount
	if averageSpending > 0 {
		ratio = amount / averageSpending
	}
	switch {
	case ratio > 10:
		return maxAmountRisk
	case ratio > 5:
		return 20
	case ratio > 2:
		return 10
	default:
		return 0
	}
}

func (s *Service) merchantRisk(category string) float64 {
	base, ok := s.categoryRisk[category]
	if !ok {
		base = defaultCategoryRisk
	}
	return base * maxMerchantRisk
}

func (s *Service) locationRisk(location string, international bool) float64 {
	risk := 0.0
	if _, ok := s.highRiskLocations[location]; ok {
		risk = maxLocationRisk
	}
	if international {
		risk += 10
	}
	return math.Min(risk, maxLocationRisk)
}

// timeRisk scores the transaction hour (UTC). Late night carries the maximum;
// early morning and late evening a reduced weight. Hour 23 falls in the
// reduced tier (23 > 22), not the maximum one.
func (s *Service) timeRisk(tx models.Transaction) float64 {
	hour := 12
	if ts, err := tx.Time(); err == nil {
		hour = ts.UTC().Hour()
	}
	switch {
	case hour < 6 || hour > 23:
		return maxTimeRisk
	case hour < 8 || hour > 22:
		return 8
	default:
		return 0
	}
}

func (s *Service) internationalRisk(international bool) float64 {
	if international {
		return maxInternationalRisk
	}
	return 0
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
