package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/planhub/backend/internal/dto"
	"github.com/planhub/backend/internal/services"
)

// MessageHandler serves the admin message log.
type MessageHandler struct {
	messageService *services.MessageService
}

func NewMessageHandler(messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

func (h *MessageHandler) List(c *fiber.Ctx) error {
	messages, err := h.messageService.ListMessages()
	if err != nil {
		slog.Error("message listing failed", "action", "list_messages", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: "Failed to fetch messages",
		})
	}

	return c.JSON(dto.MessagesResponse{Success: true, Messages: messages})
}
