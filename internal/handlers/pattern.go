package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"fraudguard/internal/models"
	"fraudguard/internal/services/pattern"
	"fraudguard/internal/utils/response"
)

// Agent identifiers reported in response envelopes.
const (
	PatternAgentID     = "pattern_analysis_agent"
	RiskAgentID        = "risk_assessment_agent"
	CoordinatorAgentID = "fraud_coordinator_agent"
)

// patternConfidence is the pattern agent's reported confidence in its own
// analysis.
const patternConfidence = 0.85

// PatternHandler serves the pattern analysis agent's endpoints.
type PatternHandler struct {
	service *pattern.Service
}

// NewPatternHandler builds the handler.
func NewPatternHandler(service *pattern.Service) *PatternHandler {
	return &PatternHandler{service: service}
}

// AnalyzePatterns handles POST /analyze_patterns.
func (h *PatternHandler) AnalyzePatterns(c *fiber.Ctx) error {
	var req models.PatternAnalysisRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	report := h.service.Analyze(req.Transactions, req.AnalysisType)

	return c.JSON(models.PatternAgentResponse{
		AgentID:         PatternAgentID,
		AnalysisResult:  report,
		ConfidenceScore: patternConfidence,
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
	})
}
