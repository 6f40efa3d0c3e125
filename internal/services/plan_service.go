package services

import (
	"github.com/planhub/backend/internal/models"
	"gorm.io/gorm"
)

type PlanService struct {
	db *gorm.DB
}

func NewPlanService(db *gorm.DB) *PlanService {
	return &PlanService{db: db}
}

// ListPlans returns the plan catalog cheapest first. Ordering happens in the
// query so callers see a stable order regardless of insertion order.
func (s *PlanService) ListPlans() ([]models.Plan, error) {
	var plans []models.Plan
	if err := s.db.Order("price asc").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}
