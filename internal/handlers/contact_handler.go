package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/planhub/backend/internal/dto"
	"github.com/planhub/backend/internal/metrics"
	"github.com/planhub/backend/internal/services"
)

type ContactHandler struct {
	messageService *services.MessageService
	metrics        *metrics.GatewayMetrics
}

func NewContactHandler(messageService *services.MessageService, m *metrics.GatewayMetrics) *ContactHandler {
	return &ContactHandler{messageService: messageService, metrics: m}
}

func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: "Invalid request body",
		})
	}

	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: validationMessage(err),
		})
	}

	if err := h.messageService.SubmitContact(&req); err != nil {
		slog.Error("contact submission failed", "action", "contact", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: "Failed to submit message",
		})
	}

	h.metrics.IncContactMessage()
	return c.JSON(dto.SuccessResponse{Success: true})
}
