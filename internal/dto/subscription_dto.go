package dto

type CustomerInfo struct {
	FullName string `json:"fullname" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Phone    string `json:"phone"`
}

type SubscribeRequest struct {
	PlanID       string       `json:"plan_id" validate:"required"`
	CustomerInfo CustomerInfo `json:"customer_info" validate:"required"`
}

// SubscriptionDetails is the caller-facing view of a created subscription.
// Dates are calendar dates, not timestamps.
type SubscriptionDetails struct {
	Plan      string `json:"plan"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type SubscribeResponse struct {
	Success      bool                `json:"success"`
	Subscription SubscriptionDetails `json:"subscription"`
}
