package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/planhub/backend/internal/dto"
	"github.com/planhub/backend/internal/services"
)

type PlanHandler struct {
	planService *services.PlanService
}

func NewPlanHandler(planService *services.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

func (h *PlanHandler) List(c *fiber.Ctx) error {
	plans, err := h.planService.ListPlans()
	if err != nil {
		slog.Error("plan listing failed", "action", "list_plans", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: "Failed to fetch plans",
		})
	}

	return c.JSON(dto.PlansResponse{Success: true, Plans: plans})
}
