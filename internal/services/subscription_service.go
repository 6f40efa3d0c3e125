package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/planhub/backend/internal/config"
	"github.com/planhub/backend/internal/dto"
	"github.com/planhub/backend/internal/models"
	"gorm.io/gorm"
)

var ErrUnknownPlan = errors.New("unrecognized plan")

// PhoneNotProvided is stored when the customer omits a phone number.
const PhoneNotProvided = "not provided"

// TermForPlan computes the subscription window for a plan starting at from.
// Calendar arithmetic follows time.AddDate normalization: Jan 31 plus one
// month rolls past the end of February into early March.
func TermForPlan(planID string, from time.Time) (start, end time.Time, err error) {
	start = from.UTC()
	switch planID {
	case "monthly":
		return start, start.AddDate(0, 1, 0), nil
	case "2months":
		return start, start.AddDate(0, 2, 0), nil
	case "annual":
		return start, start.AddDate(1, 0, 0), nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %s", ErrUnknownPlan, planID)
	}
}

type SubscriptionService struct {
	db                *gorm.DB
	unknownPlanPolicy string
	newID             func() uuid.UUID
	now               func() time.Time
}

func NewSubscriptionService(db *gorm.DB, unknownPlanPolicy string) *SubscriptionService {
	return &SubscriptionService{
		db:                db,
		unknownPlanPolicy: unknownPlanPolicy,
		newID:             uuid.New,
		now:               time.Now,
	}
}

// Subscribe creates an active subscription and its notification message in
// one transaction. An unrecognized plan either fails with ErrUnknownPlan or
// is re-homed onto the monthly plan, depending on the configured policy.
func (s *SubscriptionService) Subscribe(req *dto.SubscribeRequest) (*models.Subscription, error) {
	planID := req.PlanID
	start, end, err := TermForPlan(planID, s.now())
	if err != nil {
		if s.unknownPlanPolicy != config.UnknownPlanMonthly {
			return nil, err
		}
		planID = "monthly"
		start, end, err = TermForPlan(planID, s.now())
		if err != nil {
			return nil, err
		}
	}

	phone := req.CustomerInfo.Phone
	if phone == "" {
		phone = PhoneNotProvided
	}

	sub := &models.Subscription{
		ID:           s.newID(),
		UserID:       s.newID(),
		PlanID:       planID,
		CustomerName: req.CustomerInfo.FullName,
		Email:        req.CustomerInfo.Email,
		Phone:        phone,
		StartDate:    start,
		EndDate:      end,
		Status:       "active",
	}

	notification := &models.Message{
		ID:      s.newID(),
		UserID:  sub.UserID,
		Subject: "New subscription",
		Body: fmt.Sprintf("%s (%s) subscribed to the %s plan until %s",
			sub.CustomerName, sub.Email, planID, end.Format(time.DateOnly)),
		Type: models.MessageTypeSubscription,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sub).Error; err != nil {
			return err
		}
		return tx.Create(notification).Error
	})
	if err != nil {
		return nil, err
	}
	return sub, nil
}
