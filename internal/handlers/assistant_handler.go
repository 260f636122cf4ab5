package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bidyut10/corporate-ai/internal/models"
	"github.com/bidyut10/corporate-ai/internal/services"
)

type AssistantHandler struct {
	assistant services.AssistantService
}

func NewAssistantHandler(assistant services.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistant: assistant}
}

// HandleGenerateDescription handles POST /assistant/job-description.
func (h *AssistantHandler) HandleGenerateDescription(c *fiber.Ctx) error {
	var req models.GenerateDescriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	description, err := h.assistant.GenerateJobDescription(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{"description": description},
	})
}
