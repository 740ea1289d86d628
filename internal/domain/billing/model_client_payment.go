package billing

import (
	"coaching-app/internal/domain/users"
	"time"
)

// ClientPayment records a one-off client payment (payment_intent.succeeded).
type ClientPayment struct {
	ID       uint       `gorm:"primaryKey"`
	ClientID uint       `gorm:"not null;index"`
	Client   users.User `gorm:"foreignKey:ClientID"`
	CoachID  uint       `gorm:"not null;index"`

	StripePaymentIntentID string `gorm:"uniqueIndex"`
	Amount                float64
	Currency              string `gorm:"type:varchar(10)"`
	Status                string
	Description           *string

	CreatedAt time.Time
}
