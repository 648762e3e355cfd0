// Package merchant checks merchant identities against the configured
// blacklist and category risk tables.
package merchant

import (
	"fraudguard/internal/config"
	"fraudguard/internal/models"
)

const (
	defaultCategoryRisk = 0.5

	// verificationRiskCeiling is the category risk at or above which a
	// merchant cannot be considered verified.
	verificationRiskCeiling = 0.7
)

// Service answers reputation lookups over immutable reference tables.
type Service struct {
	blacklist    map[string]struct{}
	categoryRisk map[string]float64
}

// NewService builds a checker over the given reference data.
func NewService(ref *config.ReferenceData) *Service {
	return &Service{
		blacklist:    ref.BlacklistSet(),
		categoryRisk: ref.CategoryRiskScores,
	}
}

// Check resolves the reputation of a merchant. Blacklist membership is an
// exact name match; unknown categories carry the default base risk.
func (s *Service) Check(name, category string) models.MerchantStatus {
	_, blacklisted := s.blacklist[name]

	risk, ok := s.categoryRisk[category]
	if !ok {
		risk = defaultCategoryRisk
	}

	verification := "unverified"
	if !blacklisted && risk < verificationRiskCeiling {
		verification = "verified"
	}

	level := models.RiskLevelLow
	if blacklisted || risk > verificationRiskCeiling {
		level = models.RiskLevelHigh
	}

	return models.MerchantStatus{
		MerchantName:       name,
		IsBlacklisted:      blacklisted,
		CategoryRiskScore:  risk,
		VerificationStatus: verification,
		RiskLevel:          level,
	}
}
