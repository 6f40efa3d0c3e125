package dto

import "github.com/planhub/backend/internal/models"

type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

type MessagesResponse struct {
	Success  bool             `json:"success"`
	Messages []models.Message `json:"messages"`
}
