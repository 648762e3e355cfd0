package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"fraudguard/internal/apperrors"
	"fraudguard/internal/models"
	"fraudguard/internal/services/coordinator"
	"fraudguard/internal/utils/response"
)

// CoordinatorHandler serves the coordinator's endpoints.
type CoordinatorHandler struct {
	service *coordinator.Service
}

// NewCoordinatorHandler builds the handler.
func NewCoordinatorHandler(service *coordinator.Service) *CoordinatorHandler {
	return &CoordinatorHandler{service: service}
}

// AnalyzeTransaction handles POST /analyze_transaction. A degraded result
// (neither specialist responded) is the one case surfaced as 503; partial
// information always comes back as 200.
func (h *CoordinatorHandler) AnalyzeTransaction(c *fiber.Ctx) error {
	var req models.TransactionAnalysisRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	result, err := h.service.Analyze(c.UserContext(), req)
	if err != nil {
		var de *apperrors.DomainError
		if errors.As(err, &de) && de.Code == apperrors.CodeValidation {
			return response.ValidationError(c, de)
		}
		return response.ServerError(c, err.Error())
	}

	switch result.Status {
	case models.StatusDegraded:
		return c.Status(fiber.StatusServiceUnavailable).JSON(result)
	case models.StatusFailed:
		return c.Status(fiber.StatusInternalServerError).JSON(result)
	default:
		return c.JSON(result)
	}
}
