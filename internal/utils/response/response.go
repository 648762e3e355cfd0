package response

import (
	"github.com/gofiber/fiber/v2"

	"fraudguard/internal/apperrors"
)

func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

func ServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}

// ValidationError renders a validation failure with the offending field named.
func ValidationError(c *fiber.Ctx, err *apperrors.DomainError) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": err.Message,
		"code":  err.Code,
		"field": err.Field,
	})
}
