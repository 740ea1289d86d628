package billing

import (
	"coaching-app/internal/domain/users"
	"time"
)

const (
	ProductTypeGroup   = "group"
	ProductTypeProgram = "program"
)

func IsValidProductType(t string) bool {
	return t == ProductTypeGroup || t == ProductTypeProgram
}

// ClientSubscription is a client's recurring purchase of a coach product
// (group coaching or a program). Distinct from the coach's platform
// subscription on StripeAccount.
type ClientSubscription struct {
	ID       uint       `gorm:"primaryKey"`
	ClientID uint       `gorm:"not null;index"`
	Client   users.User `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
	CoachID  uint       `gorm:"not null;index"`

	StripeSubscriptionID string `gorm:"column:stripe_subscription_id;uniqueIndex:idx_client_subscriptions_stripe_id"`
	ProductType          string `gorm:"type:varchar(20);not null;index"`

	Status             string `gorm:"not null"`
	CurrentPeriodStart *time.Time
	CurrentPeriodEnd   *time.Time
	CancelAtPeriodEnd  bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
