package models

// Wire payloads for the agent HTTP boundaries.

// PatternAnalysisRequest is the body of POST /analyze_patterns.
type PatternAnalysisRequest struct {
	Transactions []Transaction `json:"transactions"`
	AnalysisType string        `json:"analysis_type"`
}

// RiskAssessmentRequest is the body of POST /assess_risk.
type RiskAssessmentRequest struct {
	Transaction     Transaction    `json:"transaction"`
	PatternAnalysis *PatternReport `json:"pattern_analysis,omitempty"`
	UserProfile     *UserBaseline  `json:"user_profile,omitempty"`
}

// TransactionAnalysisRequest is the body of the coordinator's
// POST /analyze_transaction.
type TransactionAnalysisRequest struct {
	Transaction Transaction  `json:"transaction"`
	UserContext *UserContext `json:"user_context,omitempty"`
}

// RejectedTransaction records a batch entry that failed validation. The rest
// of the batch is still analyzed; rejections are surfaced, never dropped.
type RejectedTransaction struct {
	TransactionID string `json:"transaction_id"`
	Reason        string `json:"reason"`
}

// PatternReport is the pattern analysis service's structured result.
type PatternReport struct {
	Findings         []GeographicFinding   `json:"findings"`
	Anomaly          *AnomalyVerdict       `json:"anomaly,omitempty"`
	Rejected         []RejectedTransaction `json:"rejected,omitempty"`
	TransactionCount int                   `json:"transaction_count"`
	AnalysisType     string                `json:"analysis_type"`
	Summary          string                `json:"analysis_summary"`
}

// RiskReport is the risk assessment service's structured result.
type RiskReport struct {
	RiskScore float64             `json:"risk_score"`
	RiskLevel string              `json:"risk_level"`
	Factors   RiskFactorBreakdown `json:"factor_breakdown"`
	Merchant  MerchantStatus      `json:"merchant_status"`
}

// PatternAgentResponse is the pattern agent's response envelope.
type PatternAgentResponse struct {
	AgentID         string        `json:"agent_id"`
	AnalysisResult  PatternReport `json:"analysis_result"`
	ConfidenceScore float64       `json:"confidence_score"`
	Timestamp       string        `json:"timestamp"`
}

// RiskAgentResponse is the risk agent's response envelope.
type RiskAgentResponse struct {
	AgentID         string     `json:"agent_id"`
	AnalysisResult  RiskReport `json:"analysis_result"`
	ConfidenceScore float64    `json:"confidence_score"`
	Timestamp       string     `json:"timestamp"`
}
