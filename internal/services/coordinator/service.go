// Package coordinator fans an analysis request out to the specialist
// services, merges whatever came back in time, and renders the final
// decision.
package coordinator

import (
	"context"
	"log"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"fraudguard/internal/models"
	"fraudguard/internal/repositories/cache"
	"fraudguard/internal/validation"
)

// Request lifecycle states. A request moves strictly forward; the terminal
// status lands on the AnalysisResult.
const (
	stateReceived    = "RECEIVED"
	stateDispatching = "DISPATCHING"
	stateMerging     = "MERGING"
)

// Confidence contributions per specialist branch.
const (
	confidenceBase    = 0.50
	confidenceRisk    = 0.25
	confidencePattern = 0.20
)

// Service coordinates a single analysis request end to end.
type Service struct {
	risk    SpecialistClient
	pattern SpecialistClient
	results cache.ResultCache
	ttl     time.Duration
	metrics MetricsCollector
	now     func() time.Time
}

// NewService wires a coordinator. results may be nil to disable replay;
// metrics may be nil for no-op collection.
func NewService(risk, pattern SpecialistClient, results cache.ResultCache, ttl time.Duration, metrics MetricsCollector) *Service {
	if metrics == nil {
		metrics = NoopMetricsCollector{}
	}
	return &Service{
		risk:    risk,
		pattern: pattern,
		results: results,
		ttl:     ttl,
		metrics: metrics,
		now:     time.Now,
	}
}

// Analyze runs the coordination state machine for one transaction. The
// returned error is non-nil only for validation failures; degraded and failed
// outcomes are reported on the result itself, with the audit list of agents
// that actually contributed.
func (s *Service) Analyze(ctx context.Context, req models.TransactionAnalysisRequest) (*models.AnalysisResult, error) {
	if err := validation.ValidateTransaction(req.Transaction); err != nil {
		return nil, err
	}

	if cached := s.replay(ctx, req.Transaction.TransactionID); cached != nil {
		return cached, nil
	}

	requestID := uuid.NewString()
	log.Printf("[%s] %s txn=%s", requestID, stateReceived, req.Transaction.TransactionID)

	sreq := SpecialistRequest{
		Transaction:  req.Transaction,
		AnalysisType: "fraud_patterns",
	}
	var batch []models.Transaction
	if req.UserContext != nil {
		sreq.Profile = req.UserContext.Profile
		if len(req.UserContext.RecentTransactions) > 0 {
			batch = append(batch, req.UserContext.RecentTransactions...)
			batch = append(batch, req.Transaction)
			sreq.Batch = batch
		}
	}

	log.Printf("[%s] %s", requestID, stateDispatching)

	riskCh := make(chan branchResult, 1)
	go func() {
		res, err := s.risk.Call(ctx, sreq)
		riskCh <- branchResult{res: res, err: err}
	}()

	var patternCh chan branchResult
	if len(batch) > 0 {
		patternCh = make(chan branchResult, 1)
		go func() {
			res, err := s.pattern.Call(ctx, sreq)
			patternCh <- branchResult{res: res, err: err}
		}()
	}

	// Join point: each branch is individually deadline-bounded, so both
	// receives terminate. A failed or timed-out branch contributes nothing.
	contributions := make([]*SpecialistResult, 0, 2)
	if branch := <-riskCh; branch.accept(s, requestID, AgentRiskAssessment) {
		contributions = append(contributions, branch.res)
	}
	if patternCh != nil {
		if branch := <-patternCh; branch.accept(s, requestID, AgentPatternAnalysis) {
			contributions = append(contributions, branch.res)
		}
	}

	log.Printf("[%s] %s contributions=%d", requestID, stateMerging, len(contributions))

	result := s.merge(requestID, req.Transaction.TransactionID, contributions)
	if ctx.Err() != nil {
		// Caller cancelled the whole request; nothing we report is
		// deliverable, mark the run failed.
		result.Status = models.StatusFailed
		result.Decision = ""
	}

	switch result.Status {
	case models.StatusDecided:
		s.metrics.RecordDecision(result.Decision)
		s.store(ctx, result)
	case models.StatusDegraded:
		s.metrics.RecordDegraded()
	}

	log.Printf("[%s] %s decision=%s agents=%v", requestID, result.Status, result.Decision, result.AgentsConsulted)
	return result, nil
}

type branchResult struct {
	res *SpecialistResult
	err error
}

// accept reports whether the branch produced a usable contribution,
// recording the failure otherwise.
func (b branchResult) accept(s *Service, requestID, agent string) bool {
	if b.err != nil || b.res == nil {
		s.metrics.RecordSpecialistFailure(agent)
		log.Printf("[%s] specialist %s absent: %v", requestID, agent, b.err)
		return false
	}
	return true
}

// merge renders the final result from whichever specialists contributed. It
// is commutative: contribution order never changes the outcome.
func (s *Service) merge(requestID, transactionID string, contributions []*SpecialistResult) *models.AnalysisResult {
	var (
		riskReport    *models.RiskReport
		patternReport *models.PatternReport
		agents        []string
	)
	for _, c := range contributions {
		agents = append(agents, c.Agent)
		if c.Risk != nil {
			riskReport = c.Risk
		}
		if c.Pattern != nil {
			patternReport = c.Pattern
		}
	}
	sort.Strings(agents)
	if agents == nil {
		agents = []string{}
	}

	result := &models.AnalysisResult{
		RequestID:       requestID,
		TransactionID:   transactionID,
		AgentsConsulted: agents,
		Timestamp:       s.now().UTC().Format(time.RFC3339),
	}

	if riskReport == nil && patternReport == nil {
		result.Status = models.StatusDegraded
		return result
	}

	result.Status = models.StatusDecided
	result.Decision = decide(riskReport, patternReport)
	result.Confidence = confidence(riskReport != nil, patternReport != nil)

	if riskReport != nil {
		result.Risk = &models.RiskScore{
			Score:   riskReport.RiskScore,
			Level:   riskReport.RiskLevel,
			Factors: riskReport.Factors,
		}
		merchant := riskReport.Merchant
		result.Merchant = &merchant
	}
	if patternReport != nil {
		result.Anomaly = patternReport.Anomaly
		result.Findings = patternReport.Findings
	}
	return result
}

// decide applies the decision rule. Declining requires both a HIGH risk level
// and a corroborating secondary signal; a lone HIGH, or any MEDIUM, goes to
// review. Without the risk branch there is no basis for approving or
// declining, so the fallback is review.
func decide(riskReport *models.RiskReport, patternReport *models.PatternReport) string {
	if riskReport == nil {
		return models.DecisionReview
	}

	secondary := riskReport.Merchant.IsBlacklisted
	if patternReport != nil {
		if patternReport.Anomaly != nil && patternReport.Anomaly.IsAnomaly {
			secondary = true
		}
		for _, f := range patternReport.Findings {
			if !f.Feasible {
				secondary = true
			}
		}
	}

	switch riskReport.RiskLevel {
	case models.RiskLevelHigh:
		if secondary {
			return models.DecisionDeclined
		}
		return models.DecisionReview
	case models.RiskLevelMedium:
		return models.DecisionReview
	default:
		return models.DecisionApproved
	}
}

func confidence(riskPresent, patternPresent bool) float64 {
	c := confidenceBase
	if riskPresent {
		c += confidenceRisk
	}
	if patternPresent {
		c += confidencePattern
	}
	return math.Round(c*100) / 100
}

func (s *Service) replay(ctx context.Context, transactionID string) *models.AnalysisResult {
	if s.results == nil {
		return nil
	}
	cached, err := s.results.GetResult(ctx, transactionID)
	if err != nil || cached == nil {
		return nil
	}
	s.metrics.RecordCacheHit()
	return cached
}

func (s *Service) store(ctx context.Context, result *models.AnalysisResult) {
	if s.results == nil {
		return
	}
	if err := s.results.SetResult(ctx, result.TransactionID, result, s.ttl); err != nil {
		log.Printf("[%s] caching result failed: %v", result.RequestID, err)
	}
}
