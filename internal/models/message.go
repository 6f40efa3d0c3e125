package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	MessageTypeSubscription = "subscription"
	MessageTypeContact      = "contact"
)

// Message is an append-only notification record. Subscription alerts carry a
// user_id; contact submissions carry the sender's name and email instead.
type Message struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Name      string    `gorm:"size:255" json:"name,omitempty"`
	Email     string    `gorm:"size:255" json:"email,omitempty"`
	Subject   string    `gorm:"size:500;not null" json:"subject"`
	Body      string    `gorm:"type:text;not null" json:"message"`
	Type      string    `gorm:"size:50;not null;index" json:"type"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
