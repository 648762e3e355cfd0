package models

import "time"

// Risk levels
const (
	RiskLevelLow    = "LOW"
	RiskLevelMedium = "MEDIUM"
	RiskLevelHigh   = "HIGH"
)

// Final decisions
const (
	DecisionApproved = "APPROVED"
	DecisionReview   = "REVIEW"
	DecisionDeclined = "DECLINED"
)

// Transaction is a single card transaction under analysis. It is a
// request-scoped value: built at request entry, never mutated, discarded at
// response.
type Transaction struct {
	TransactionID    string  `json:"transaction_id"`
	UserID           string  `json:"user_id"`
	Amount           float64 `json:"amount"`
	Currency         string  `json:"currency"`
	Merchant         string  `json:"merchant"`
	MerchantCategory string  `json:"merchant_category"`
	Location         string  `json:"location"`
	Timestamp        string  `json:"timestamp"`
	PaymentMethod    string  `json:"payment_method"`
	CardLastFour     string  `json:"card_last_four"`
	IsInternational  bool    `json:"is_international,omitempty"`
	Description      string  `json:"description,omitempty"`
}

// Time parses the transaction timestamp as an RFC 3339 UTC instant.
func (t Transaction) Time() (time.Time, error) {
	return time.Parse(time.RFC3339, t.Timestamp)
}

// UserBaseline is the caller-supplied spending profile used to contextualize
// a transaction. The core never persists it.
type UserBaseline struct {
	AverageSpending  float64  `json:"average_monthly_spending"`
	TypicalLocations []string `json:"typical_locations,omitempty"`
	AccountAgeMonths int      `json:"account_age_months,omitempty"`
	FraudReports     int      `json:"previous_fraud_reports,omitempty"`
}

// UserContext carries the optional per-user context for a coordination
// request: the spending baseline and the recent transaction history pattern
// analysis runs over.
type UserContext struct {
	Profile            *UserBaseline `json:"profile,omitempty"`
	RecentTransactions []Transaction `json:"recent_transactions,omitempty"`
}
