package models

// RiskFactorBreakdown holds the individual weighted contributions of the risk
// factor model. Each term is capped to its own sub-range before summing.
type RiskFactorBreakdown struct {
	AmountRisk        float64 `json:"amount_risk"`
	MerchantRisk      float64 `json:"merchant_risk"`
	LocationRisk      float64 `json:"location_risk"`
	TimeRisk          float64 `json:"time_risk"`
	InternationalRisk float64 `json:"international_risk"`
}

// RiskScore is the outcome of the risk factor model: the clipped total, its
// level classification, and the per-factor breakdown that produced it.
type RiskScore struct {
	Score   float64             `json:"risk_score"`
	Level   string              `json:"risk_level"`
	Factors RiskFactorBreakdown `json:"risk_factors"`
}

// AnomalyVerdict is the statistical verdict on a single amount measured
// against a spending history. It has no identity beyond the request that
// produced it.
type AnomalyVerdict struct {
	IsAnomaly      bool    `json:"is_anomaly"`
	ZScore         float64 `json:"z_score"`
	AnomalyScore   float64 `json:"anomaly_score"`
	MeanHistorical float64 `json:"mean_historical"`
	StdDeviation   float64 `json:"std_deviation"`
	CurrentAmount  float64 `json:"current_amount"`
	Analysis       string  `json:"analysis"`
}

// GeographicFinding flags a pair of consecutive transactions whose locations
// could not feasibly be reached in the elapsed time.
type GeographicFinding struct {
	FromTransactionID string  `json:"from_transaction_id"`
	ToTransactionID   string  `json:"to_transaction_id"`
	FromLocation      string  `json:"from_location"`
	ToLocation        string  `json:"to_location"`
	ElapsedMinutes    float64 `json:"elapsed_minutes"`
	MinimumMinutes    float64 `json:"minimum_travel_time_minutes"`
	Feasible          bool    `json:"feasible"`
}

// MerchantStatus is the reputation verdict for a merchant identity.
type MerchantStatus struct {
	MerchantName       string  `json:"merchant_name"`
	IsBlacklisted      bool    `json:"is_blacklisted"`
	CategoryRiskScore  float64 `json:"category_risk_score"`
	VerificationStatus string  `json:"verification_status"`
	RiskLevel          string  `json:"risk_level"`
}

// Coordination outcome statuses.
const (
	StatusDecided  = "DECIDED"
	StatusDegraded = "DEGRADED"
	StatusFailed   = "FAILED"
)

// AnalysisResult is the coordinator's final answer for one transaction.
// AgentsConsulted lists the specialists that actually contributed, for audit.
type AnalysisResult struct {
	RequestID       string              `json:"request_id"`
	TransactionID   string              `json:"transaction_id"`
	Status          string              `json:"status"`
	Decision        string              `json:"decision,omitempty"`
	Confidence      float64             `json:"confidence_score"`
	Risk            *RiskScore          `json:"risk_assessment,omitempty"`
	Merchant        *MerchantStatus     `json:"merchant_status,omitempty"`
	Anomaly         *AnomalyVerdict     `json:"anomaly,omitempty"`
	Findings        []GeographicFinding `json:"geographic_findings,omitempty"`
	AgentsConsulted []string            `json:"agents_consulted"`
	Timestamp       string              `json:"timestamp"`
}
