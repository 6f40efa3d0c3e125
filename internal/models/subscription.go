package models

import (
	"time"

	"github.com/google/uuid"
)

// Subscription is a customer's enrollment in a plan for a bounded date
// range. Created once per subscribe call, never updated or deleted.
type Subscription struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	PlanID       string    `gorm:"size:50;not null;index" json:"plan_id"`
	CustomerName string    `gorm:"size:255;not null" json:"customer_name"`
	Email        string    `gorm:"size:255;not null" json:"email"`
	Phone        string    `gorm:"size:50" json:"phone"`
	StartDate    time.Time `gorm:"not null" json:"start_date"`
	EndDate      time.Time `gorm:"not null" json:"end_date"`
	Status       string    `gorm:"not null;default:'active';size:50" json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Plan         Plan      `gorm:"foreignKey:PlanID" json:"-"`
}
