package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/talentdesk/recruitment-service/internal/api/dto"
	"github.com/talentdesk/recruitment-service/internal/service"
)

// AIHandler exposes the email drafting endpoint.
type AIHandler struct {
	completions *service.CompletionService
}

// NewAIHandler constructs handler.
func NewAIHandler(completions *service.CompletionService) *AIHandler {
	return &AIHandler{completions: completions}
}

// GenerateEmail handles POST /ai/generate-email.
func (h *AIHandler) GenerateEmail(c *fiber.Ctx) error {
	var req dto.GenerateEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Prompt == "" {
		return fiber.NewError(http.StatusBadRequest, "prompt required")
	}

	draft, err := h.completions.GenerateEmail(c.Context(), req.RecipientName, req.Prompt)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": draft})
}
