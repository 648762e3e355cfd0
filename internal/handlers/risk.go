package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"fraudguard/internal/apperrors"
	"fraudguard/internal/models"
	"fraudguard/internal/services/assessment"
	"fraudguard/internal/utils/response"
)

// riskConfidence is the risk agent's reported confidence in its own
// assessment.
const riskConfidence = 0.90

// RiskHandler serves the risk assessment agent's endpoints.
type RiskHandler struct {
	service *assessment.Service
}

// NewRiskHandler builds the handler.
func NewRiskHandler(service *assessment.Service) *RiskHandler {
	return &RiskHandler{service: service}
}

// AssessRisk handles POST /assess_risk.
func (h *RiskHandler) AssessRisk(c *fiber.Ctx) error {
	var req models.RiskAssessmentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	report, err := h.service.Assess(req.Transaction, req.UserProfile)
	if err != nil {
		var de *apperrors.DomainError
		if errors.As(err, &de) && de.Code == apperrors.CodeValidation {
			return response.ValidationError(c, de)
		}
		return response.ServerError(c, err.Error())
	}

	return c.JSON(models.RiskAgentResponse{
		AgentID:         RiskAgentID,
		AnalysisResult:  report,
		ConfidenceScore: riskConfidence,
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
	})
}
