package users

import (
	"time"

	"coaching-app/internal/domain/access"
	"coaching-app/internal/domain/billing"
	stripeinfra "coaching-app/internal/infra/stripe"
)

type MeResponse struct {
	User    UserDTO     `json:"user"`
	Billing *BillingDTO `json:"billing,omitempty"`
	Access  *AccessDTO  `json:"access,omitempty"`
}

type UserDTO struct {
	ID         uint   `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Lastname   string `json:"lastname"`
	Role       string `json:"role"`
	IsVerified bool   `json:"is_verified"`
	CoachID    *uint  `json:"coach_id,omitempty"`
}

type BillingDTO struct {
	Connected    bool             `json:"connected"`
	Subscription *SubscriptionDTO `json:"subscription"`
}

type SubscriptionDTO struct {
	Status             string     `json:"status"`
	CurrentPeriodStart *time.Time `json:"current_period_start"`
	CurrentPeriodEnd   *time.Time `json:"current_period_end"`
	CancelAtPeriodEnd  bool       `json:"cancel_at_period_end"`
}

type AccessDTO struct {
	Allowed      bool       `json:"allowed"`
	Reason       string     `json:"reason,omitempty"`
	Message      string     `json:"message,omitempty"`
	RelevantDate *time.Time `json:"relevant_date,omitempty"`
}

func BuildBillingDTO(acct *billing.StripeAccount) *BillingDTO {
	dto := &BillingDTO{Connected: acct.HasSubscription()}
	if acct.HasSubscription() {
		dto.Subscription = &SubscriptionDTO{
			Status:             string(stripeinfra.ParseSubscriptionStatus(acct.SubscriptionStatus)),
			CurrentPeriodStart: acct.CurrentPeriodStart,
			CurrentPeriodEnd:   acct.CurrentPeriodEnd,
			CancelAtPeriodEnd:  acct.CancelAtPeriodEnd,
		}
	}
	return dto
}

func BuildAccessDTO(d access.Decision) *AccessDTO {
	return &AccessDTO{
		Allowed:      d.Allowed,
		Reason:       string(d.Reason),
		Message:      d.Message,
		RelevantDate: d.RelevantDate,
	}
}
