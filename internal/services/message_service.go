package services

import (
	"github.com/google/uuid"
	"github.com/planhub/backend/internal/dto"
	"github.com/planhub/backend/internal/models"
	"gorm.io/gorm"
)

type MessageService struct {
	db    *gorm.DB
	newID func() uuid.UUID
}

func NewMessageService(db *gorm.DB) *MessageService {
	return &MessageService{db: db, newID: uuid.New}
}

// SubmitContact stores a contact-form submission as an append-only message.
func (s *MessageService) SubmitContact(req *dto.ContactRequest) error {
	msg := models.Message{
		ID:      s.newID(),
		Name:    req.Name,
		Email:   req.Email,
		Subject: "Contact form submission",
		Body:    req.Message,
		Type:    models.MessageTypeContact,
	}
	return s.db.Create(&msg).Error
}

// ListMessages returns all messages, newest first.
func (s *MessageService) ListMessages() ([]models.Message, error) {
	var messages []models.Message
	if err := s.db.Order("created_at desc").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}
