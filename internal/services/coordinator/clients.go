package coordinator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"fraudguard/internal/apperrors"
	"fraudguard/internal/models"
)

// SpecialistRequest is everything a specialist call might need. Each client
// reads only the fields its agent understands.
type SpecialistRequest struct {
	Transaction  models.Transaction
	Profile      *models.UserBaseline
	Batch        []models.Transaction
	AnalysisType string
}

// SpecialistResult is a single specialist's contribution to the merge.
// Exactly one of Risk and Pattern is set.
type SpecialistResult struct {
	Agent      string
	Risk       *models.RiskReport
	Pattern    *models.PatternReport
	Confidence float64
}

// SpecialistClient is the coordinator's only view of a specialist service:
// one cancellable, deadline-bounded call. Implementations are swappable, so
// tests substitute in-process fakes.
type SpecialistClient interface {
	Name() string
	Call(ctx context.Context, req SpecialistRequest) (*SpecialistResult, error)
}

// Agent names as reported in the audit trail.
const (
	AgentRiskAssessment  = "risk_assessment"
	AgentPatternAnalysis = "pattern_analysis"
)

// RiskClient calls the risk assessment agent over HTTP.
type RiskClient struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
}

// NewRiskClient builds a client for the risk agent at baseURL.
func NewRiskClient(baseURL string, timeout time.Duration) *RiskClient {
	return &RiskClient{
		baseURL: baseURL,
		client:  &http.Client{},
		timeout: timeout,
	}
}

func (c *RiskClient) Name() string { return AgentRiskAssessment }

// Call implements SpecialistClient.
func (c *RiskClient) Call(ctx context.Context, req SpecialistRequest) (*SpecialistResult, error) {
	body := models.RiskAssessmentRequest{
		Transaction: req.Transaction,
		UserProfile: req.Profile,
	}

	var envelope models.RiskAgentResponse
	if err := postJSON(ctx, c.client, c.baseURL+"/assess_risk", c.timeout, body, &envelope); err != nil {
		return nil, apperrors.Unavailable(c.Name(), err)
	}

	return &SpecialistResult{
		Agent:      c.Name(),
		Risk:       &envelope.AnalysisResult,
		Confidence: envelope.ConfidenceScore,
	}, nil
}

// PatternClient calls the pattern analysis agent over HTTP.
type PatternClient struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
}

// NewPatternClient builds a client for the pattern agent at baseURL.
func NewPatternClient(baseURL string, timeout time.Duration) *PatternClient {
	return &PatternClient{
		baseURL: baseURL,
		client:  &http.Client{},
		timeout: timeout,
	}
}

func (c *PatternClient) Name() string { return AgentPatternAnalysis }

// Call implements SpecialistClient.
func (c *PatternClient) Call(ctx context.Context, req SpecialistRequest) (*SpecialistResult, error) {
	body := models.PatternAnalysisRequest{
		Transactions: req.Batch,
		AnalysisType: req.AnalysisType,
	}

	var envelope models.PatternAgentResponse
	if err := postJSON(ctx, c.client, c.baseURL+"/analyze_patterns", c.timeout, body, &envelope); err != nil {
		return nil, apperrors.Unavailable(c.Name(), err)
	}

	return &SpecialistResult{
		Agent:      c.Name(),
		Pattern:    &envelope.AnalysisResult,
		Confidence: envelope.ConfidenceScore,
	}, nil
}

func postJSON(ctx context.Context, client *http.Client, url string, timeout time.Duration, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
