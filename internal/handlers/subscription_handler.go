package handlers

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/planhub/backend/internal/dto"
	"github.com/planhub/backend/internal/metrics"
	"github.com/planhub/backend/internal/services"
)

type SubscriptionHandler struct {
	subscriptionService *services.SubscriptionService
	metrics             *metrics.GatewayMetrics
}

func NewSubscriptionHandler(subscriptionService *services.SubscriptionService, m *metrics.GatewayMetrics) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService, metrics: m}
}

func (h *SubscriptionHandler) Subscribe(c *fiber.Ctx) error {
	var req dto.SubscribeRequest
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

	sub, err := h.subscriptionService.Subscribe(&req)
	if err != nil {
		if errors.Is(err, services.ErrUnknownPlan) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Success: false, Message: err.Error(),
			})
		}
		slog.Error("subscription creation failed", "action", "subscribe", "plan_id", req.PlanID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: "Failed to create subscription",
		})
	}

	h.metrics.IncSubscriptionCreated(sub.PlanID)
	slog.Info("subscription created", "plan_id", sub.PlanID, "user_id", sub.UserID)

	return c.Status(fiber.StatusCreated).JSON(dto.SubscribeResponse{
		Success: true,
		Subscription: dto.SubscriptionDetails{
			Plan:      sub.PlanID,
			StartDate: sub.StartDate.Format(time.DateOnly),
			EndDate:   sub.EndDate.Format(time.DateOnly),
		},
	})
}
