package models

import (
	"time"

	"gorm.io/datatypes"
)

// Plan is a purchasable subscription tier. Rows are seeded at startup and
// read-only afterwards.
type Plan struct {
	ID        string         `gorm:"size:50;primaryKey" json:"id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Price     float64        `gorm:"not null" json:"price"`
	Features  datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"features"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
