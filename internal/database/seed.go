package database

import (
	"encoding/json"
	"log/slog"

	"github.com/planhub/backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type planSeed struct {
	ID       string
	Name     string
	Price    float64
	Features []string
}

var defaultPlans = []planSeed{
	{
		ID:       "monthly",
		Name:     "Monthly",
		Price:    9.99,
		Features: []string{"Full catalog access", "Cancel anytime", "Email support"},
	},
	{
		ID:       "2months",
		Name:     "Two Months",
		Price:    17.99,
		Features: []string{"Full catalog access", "Cancel anytime", "Email support", "10% saving over monthly"},
	},
	{
		ID:       "annual",
		Name:     "Annual",
		Price:    99.99,
		Features: []string{"Full catalog access", "Priority support", "Two months free"},
	},
}

// SeedPlans inserts the default plan catalog when the table is empty. It
// never overwrites existing rows, so price changes done in the database
// survive restarts.
func SeedPlans(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Plan{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	plans := make([]models.Plan, 0, len(defaultPlans))
	for _, seed := range defaultPlans {
		features, err := json.Marshal(seed.Features)
		if err != nil {
			return err
		}
		plans = append(plans, models.Plan{
			ID:       seed.ID,
			Name:     seed.Name,
			Price:    seed.Price,
			Features: datatypes.JSON(features),
		})
	}

	if err := db.Create(&plans).Error; err != nil {
		return err
	}
	slog.Info("plan catalog seeded", "plans", len(plans))
	return nil
}
