package stripewebhooks

import (
	"time"

	"coaching-app/database"
	"coaching-app/internal/domain/billing"

	"github.com/stripe/stripe-go/v75"
	"go.uber.org/zap"
)

// handleSubscriptionUpdated refreshes whichever record the subscription
// belongs to: the coach platform snapshot or a client product subscription.
func handleSubscriptionUpdated(sub *stripe.Subscription) error {
	if sub.ID == "" {
		return nil
	}

	periodStart := time.Unix(sub.CurrentPeriodStart, 0)
	periodEnd := time.Unix(sub.CurrentPeriodEnd, 0)
	status := string(sub.Status)

	if acct := findPlatformAccount(sub); acct != nil {
		return database.DB.Model(&billing.StripeAccount{}).
			Where("id = ?", acct.ID).
			Updates(map[string]interface{}{
				"stripe_subscription_id": sub.ID,
				"subscription_status":    status,
				"current_period_start":   periodStart,
				"current_period_end":     periodEnd,
				"cancel_at_period_end":   sub.CancelAtPeriodEnd,
			}).Error
	}

	var cs billing.ClientSubscription
	if err := database.DB.Where("stripe_subscription_id = ?", sub.ID).First(&cs).Error; err != nil {
		// Unknown subscription; acknowledge to avoid Stripe retries.
		zap.L().Debug("subscription update for unknown record ignored",
			zap.String("subscription_id", sub.ID))
		return nil
	}
	return database.DB.Model(&cs).Updates(map[string]interface{}{
		"status":               status,
		"current_period_start": periodStart,
		"current_period_end":   periodEnd,
		"cancel_at_period_end": sub.CancelAtPeriodEnd,
	}).Error
}

func handleSubscriptionDeleted(sub *stripe.Subscription) error {
	if sub.ID == "" {
		return nil
	}

	status := string(sub.Status)
	periodEnd := time.Unix(sub.CurrentPeriodEnd, 0)

	if acct := findPlatformAccount(sub); acct != nil {
		zap.L().Info("platform subscription canceled",
			zap.Uint("user_id", acct.UserID),
			zap.String("subscription_id", sub.ID))
		return database.DB.Model(&billing.StripeAccount{}).
			Where("id = ?", acct.ID).
			Updates(map[string]interface{}{
				"subscription_status": status,
				"current_period_end":  periodEnd,
			}).Error
	}

	var cs billing.ClientSubscription
	if err := database.DB.Where("stripe_subscription_id = ?", sub.ID).First(&cs).Error; err != nil {
		return nil
	}
	return database.DB.Model(&cs).Updates(map[string]interface{}{
		"status":             status,
		"current_period_end": periodEnd,
	}).Error
}

// findPlatformAccount locates the coach billing record for a subscription,
// by metadata user_id first, then by the stored subscription id. Returns nil
// for subscriptions that are not platform subscriptions.
func findPlatformAccount(sub *stripe.Subscription) *billing.StripeAccount {
	var acct billing.StripeAccount

	if userID := parseUserID(sub.Metadata["user_id"]); userID != 0 && sub.Metadata["type"] == "platform" {
		if err := database.DB.Where("user_id = ?", userID).First(&acct).Error; err == nil {
			return &acct
		}
	}

	if err := database.DB.Where("stripe_subscription_id = ?", sub.ID).First(&acct).Error; err == nil {
		return &acct
	}
	return nil
}
