package coordinator

import (
	"context"
	"errors"
	"testing"
	"time"

	"fraudguard/internal/apperrors"
	"fraudguard/internal/models"
	"fraudguard/internal/repositories/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSpecialist is an in-process SpecialistClient.
type fakeSpecialist struct {
	name   string
	result *SpecialistResult
	err    error
	delay  time.Duration
	calls  int
}

func (f *fakeSpecialist) Name() string { return f.name }

func (f *fakeSpecialist) Call(ctx context.Context, _ SpecialistRequest) (*SpecialistResult, error) {
	f.calls++
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, apperrors.Unavailable(f.name, ctx.Err())
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func riskResult(level string, blacklisted bool) *SpecialistResult {
	return &SpecialistResult{
		Agent: AgentRiskAssessment,
		Risk: &models.RiskReport{
			RiskScore: 72.5,
			RiskLevel: level,
			Merchant:  models.MerchantStatus{IsBlacklisted: blacklisted},
		},
		Confidence: 0.9,
	}
}

func patternResult(anomaly, infeasible bool) *SpecialistResult {
	report := &models.PatternReport{TransactionCount: 3}
	if anomaly {
		report.Anomaly = &models.AnomalyVerdict{IsAnomaly: true, ZScore: 4.2}
	}
	if infeasible {
		report.Findings = []models.GeographicFinding{{
			FromTransactionID: "TXN_A",
			ToTransactionID:   "TXN_B",
			Feasible:          false,
		}}
	}
	return &SpecialistResult{
		Agent:      AgentPatternAnalysis,
		Pattern:    report,
		Confidence: 0.85,
	}
}

func analysisRequest(withBatch bool) models.TransactionAnalysisRequest {
	req := models.TransactionAnalysisRequest{
		Transaction: models.Transaction{
			TransactionID:    "TXN_1",
			UserID:           "USER_1",
			Amount:           5000,
			Merchant:         "Luxury Goods International",
			MerchantCategory: "luxury_goods",
			Location:         "London, UK",
			Timestamp:        "2024-01-17T04:00:00Z",
		},
	}
	if withBatch {
		req.UserContext = &models.UserContext{
			Profile: &models.UserBaseline{AverageSpending: 500},
			RecentTransactions: []models.Transaction{{
				TransactionID: "TXN_0",
				UserID:        "USER_1",
				Amount:        50,
				Timestamp:     "2024-01-15T10:00:00Z",
			}},
		}
	}
	return req
}

func TestAnalyze_DeclinesOnHighRiskWithCorroboration(t *testing.T) {
	risk := &fakeSpecialist{name: AgentRiskAssessment, result: riskResult(models.RiskLevelHigh, false)}
	pattern := &fakeSpecialist{name: AgentPatternAnalysis, result: patternResult(true, false)}
	svc := NewService(risk, pattern, nil, 0, nil)

	got, err := svc.Analyze(context.Background(), analysisRequest(true))
	require.NoError(t, err)

	assert.Equal(t, models.StatusDecided, got.Status)
	assert.Equal(t, models.DecisionDeclined, got.Decision)
	assert.Equal(t, 0.95, got.Confidence)
	assert.Equal(t, []string{AgentPatternAnalysis, AgentRiskAssessment}, got.AgentsConsulted)
	require.NotNil(t, got.Anomaly)
	assert.True(t, got.Anomaly.IsAnomaly)
}

func TestAnalyze_HighRiskWithoutCorroborationIsReview(t *testing.T) {
	risk := &fakeSpecialist{name: AgentRiskAssessment, result: riskResult(models.RiskLevelHigh, false)}
	pattern := &fakeSpecialist{name: AgentPatternAnalysis, result: patternResult(false, false)}
	svc := NewService(risk, pattern, nil, 0, nil)

	got, err := svc.Analyze(context.Background(), analysisRequest(true))
	require.NoError(t, err)
	assert.Equal(t, models.DecisionReview, got.Decision)
}

func TestAnalyze_LowRiskApproved(t *testing.T) {
	risk := &fakeSpecialist{name: AgentRiskAssessment, result: riskResult(models.RiskLevelLow, false)}
	pattern := &fakeSpecialist{name: AgentPatternAnalysis, result: patternResult(false, false)}
	svc := NewService(risk, pattern, nil, 0, nil)

	got, err := svc.Analyze(context.Background(), analysisRequest(true))
	require.NoError(t, err)
	assert.Equal(t, models.DecisionApproved, got.Decision)
}

func TestAnalyze_RiskTimeoutFallsBackToReview(t *testing.T) {
	// The risk branch never answers inside its deadline; pattern succeeds.
	risk := &fakeSpecialist{name: AgentRiskAssessment, err: apperrors.Unavailable(AgentRiskAssessment, errors.New("deadline exceeded"))}
	pattern := &fakeSpecialist{name: AgentPatternAnalysis, result: patternResult(true, true)}
	metrics := NewCounterMetrics()
	svc := NewService(risk, pattern, nil, 0, metrics)

	got, err := svc.Analyze(context.Background(), analysisRequest(true))
	require.NoError(t, err)

	assert.Equal(t, models.StatusDecided, got.Status)
	assert.Equal(t, models.DecisionReview, got.Decision, "pattern alone is insufficient basis for approve/decline")
	assert.Equal(t, []string{AgentPatternAnalysis}, got.AgentsConsulted)
	assert.Equal(t, 0.7, got.Confidence)
	assert.Nil(t, got.Risk)

	_, failures, _, _ := metrics.Snapshot()
	assert.Equal(t, 1, failures[AgentRiskAssessment])
}

func TestAnalyze_BothAbsentIsDegraded(t *testing.T) {
	risk := &fakeSpecialist{name: AgentRiskAssessment, err: errors.New("connection refused")}
	pattern := &fakeSpecialist{name: AgentPatternAnalysis, err: errors.New("connection refused")}
	metrics := NewCounterMetrics()
	svc := NewService(risk, pattern, nil, 0, metrics)

	got, err := svc.Analyze(context.Background(), analysisRequest(true))
	require.NoError(t, err)

	assert.Equal(t, models.StatusDegraded, got.Status)
	assert.Empty(t, got.Decision)
	assert.Empty(t, got.AgentsConsulted)
	assert.Zero(t, got.Confidence)

	_, _, degraded, _ := metrics.Snapshot()
	assert.Equal(t, 1, degraded)
}

func TestAnalyze_NoBatchSkipsPatternDispatch(t *testing.T) {
	risk := &fakeSpecialist{name: AgentRiskAssessment, result: riskResult(models.RiskLevelLow, false)}
	pattern := &fakeSpecialist{name: AgentPatternAnalysis, result: patternResult(false, false)}
	svc := NewService(risk, pattern, nil, 0, nil)

	got, err := svc.Analyze(context.Background(), analysisRequest(false))
	require.NoError(t, err)

	assert.Zero(t, pattern.calls, "pattern agent is consulted only when history is available")
	assert.Equal(t, []string{AgentRiskAssessment}, got.AgentsConsulted)
	assert.Equal(t, 0.75, got.Confidence)
	assert.Equal(t, models.DecisionApproved, got.Decision)
}

func TestAnalyze_ValidationErrorNamedField(t *testing.T) {
	svc := NewService(&fakeSpecialist{name: AgentRiskAssessment}, &fakeSpecialist{name: AgentPatternAnalysis}, nil, 0, nil)

	req := analysisRequest(false)
	req.Transaction.Amount = -1

	_, err := svc.Analyze(context.Background(), req)
	require.Error(t, err)
	var de *apperrors.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "amount", de.Field)
}

func TestAnalyze_CancelledRequestIsFailed(t *testing.T) {
	risk := &fakeSpecialist{name: AgentRiskAssessment, delay: time.Second}
	pattern := &fakeSpecialist{name: AgentPatternAnalysis, delay: time.Second}
	svc := NewService(risk, pattern, nil, 0, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := svc.Analyze(ctx, analysisRequest(true))
	require.NoError(t, err)
	assert.Equal(t, models.StatusFailed, got.Status)
	assert.Empty(t, got.Decision)
}

func TestAnalyze_ReplaysCachedResult(t *testing.T) {
	risk := &fakeSpecialist{name: AgentRiskAssessment, result: riskResult(models.RiskLevelLow, false)}
	pattern := &fakeSpecialist{name: AgentPatternAnalysis, result: patternResult(false, false)}
	metrics := NewCounterMetrics()
	svc := NewService(risk, pattern, cache.NewMemoryCache(), time.Minute, metrics)

	first, err := svc.Analyze(context.Background(), analysisRequest(false))
	require.NoError(t, err)
	require.Equal(t, 1, risk.calls)

	second, err := svc.Analyze(context.Background(), analysisRequest(false))
	require.NoError(t, err)

	assert.Equal(t, 1, risk.calls, "replayed decision must not re-dispatch")
	assert.Equal(t, first, second)

	_, _, _, cacheHits := metrics.Snapshot()
	assert.Equal(t, 1, cacheHits)
}

func TestMerge_Commutative(t *testing.T) {
	svc := NewService(&fakeSpecialist{}, &fakeSpecialist{}, nil, 0, nil)
	svc.now = func() time.Time { return time.Date(2024, 1, 17, 12, 0, 0, 0, time.UTC) }

	r := riskResult(models.RiskLevelHigh, true)
	p := patternResult(true, true)

	ab := svc.merge("req-1", "TXN_1", []*SpecialistResult{r, p})
	ba := svc.merge("req-1", "TXN_1", []*SpecialistResult{p, r})

	assert.Equal(t, ab, ba)
	assert.Equal(t, models.DecisionDeclined, ab.Decision)
}

func TestDecide_Table(t *testing.T) {
	tests := []struct {
		name    string
		risk    *models.RiskReport
		pattern *models.PatternReport
		want    string
	}{
		{
			name: "high risk with blacklist declines",
			risk: &models.RiskReport{RiskLevel: models.RiskLevelHigh, Merchant: models.MerchantStatus{IsBlacklisted: true}},
			want: models.DecisionDeclined,
		},
		{
			name:    "high risk with infeasible travel declines",
			risk:    &models.RiskReport{RiskLevel: models.RiskLevelHigh},
			pattern: &models.PatternReport{Findings: []models.GeographicFinding{{Feasible: false}}},
			want:    models.DecisionDeclined,
		},
		{
			name: "high risk alone reviews",
			risk: &models.RiskReport{RiskLevel: models.RiskLevelHigh},
			want: models.DecisionReview,
		},
		{
			name: "medium risk reviews even with signals",
			risk: &models.RiskReport{RiskLevel: models.RiskLevelMedium, Merchant: models.MerchantStatus{IsBlacklisted: true}},
			want: models.DecisionReview,
		},
		{
			name:    "low risk approves despite anomaly",
			risk:    &models.RiskReport{RiskLevel: models.RiskLevelLow},
			pattern: &models.PatternReport{Anomaly: &models.AnomalyVerdict{IsAnomaly: true}},
			want:    models.DecisionApproved,
		},
		{
			name:    "pattern only reviews",
			pattern: &models.PatternReport{},
			want:    models.DecisionReview,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decide(tt.risk, tt.pattern))
		})
	}
}
