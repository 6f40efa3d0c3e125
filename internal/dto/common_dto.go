package dto

import "github.com/planhub/backend/internal/models"

type SuccessResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status     string `json:"status"`
	ServerTime string `json:"server_time"`
	DB         string `json:"db"`
}

type PlansResponse struct {
	Success bool          `json:"success"`
	Plans   []models.Plan `json:"plans"`
}
