package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/bidyut10/corporate-ai/internal/services"
)

// respondError maps service errors onto HTTP responses. Only the four
// outer error kinds are visible here; analysis failures never reach a
// handler.
func respondError(c *fiber.Ctx, err error) error {
	var validationErr *services.ValidationError

	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": validationErr.Error(),
			"field": validationErr.Field,
		})
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, services.ErrJobClosed):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "This job is not accepting applications",
		})
	case errors.Is(err, services.ErrDuplicateApplication):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "You have already applied for this job",
		})
	default:
		log.Printf("❌ Unexpected error handling %s %s: %v\n", c.Method(), c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
}
