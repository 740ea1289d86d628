package billing

import (
	"coaching-app/internal/domain/users"
	"time"
)

// StripeAccount is the per-coach billing record: the Connect account used to
// receive client payments plus the snapshot of the coach's own platform
// subscription. The snapshot fields are written only by the Stripe webhook
// and the subscription status refresh; the access engine reads them.
type StripeAccount struct {
	ID     uint       `gorm:"primaryKey"`
	UserID uint       `gorm:"not null;uniqueIndex:idx_stripe_accounts_user_id"`
	User   users.User `gorm:"constraint:OnDelete:CASCADE"`

	StripeCustomerID *string `gorm:"column:stripe_customer_id;uniqueIndex:idx_stripe_accounts_customer_id"`

	// Connect onboarding state (account.updated webhook)
	StripeAccountID  *string `gorm:"column:stripe_account_id;uniqueIndex:idx_stripe_accounts_account_id"`
	ChargesEnabled   bool
	PayoutsEnabled   bool
	DetailsSubmitted bool

	// Platform subscription snapshot. A nil subscription id means the coach
	// never connected billing.
	StripeSubscriptionID *string    `gorm:"column:stripe_subscription_id;uniqueIndex:idx_stripe_accounts_subscription_id"`
	SubscriptionStatus   *string    `gorm:"column:subscription_status"`
	CurrentPeriodStart   *time.Time `gorm:"column:current_period_start"`
	CurrentPeriodEnd     *time.Time `gorm:"column:current_period_end"`
	CancelAtPeriodEnd    bool       `gorm:"column:cancel_at_period_end"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (a *StripeAccount) HasSubscription() bool {
	return a != nil && a.StripeSubscriptionID != nil && *a.StripeSubscriptionID != ""
}
