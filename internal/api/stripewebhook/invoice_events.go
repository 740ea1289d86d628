package stripewebhooks

import (
	"time"

	"coaching-app/database"
	"coaching-app/internal/domain/billing"

	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/subscription"
	"go.uber.org/zap"
)

// handleInvoicePaymentSucceeded re-reads the subscription after a renewal
// charge so the stored snapshot picks up the new period and a recovery from
// past_due back to active.
func handleInvoicePaymentSucceeded(inv *stripe.Invoice) error {
	if inv.Subscription == nil || inv.Subscription.ID == "" {
		return nil
	}

	sub, err := subscription.Get(inv.Subscription.ID, nil)
	if err != nil {
		zap.L().Warn("failed to fetch subscription after invoice payment",
			zap.String("subscription_id", inv.Subscription.ID),
			zap.Error(err))
		return nil
	}
	return handleSubscriptionUpdated(sub)
}

// handleInvoicePaymentFailed marks the subscription past_due immediately
// rather than waiting for the subsequent subscription.updated event.
func handleInvoicePaymentFailed(inv *stripe.Invoice) error {
	if inv.Subscription == nil || inv.Subscription.ID == "" {
		return nil
	}
	subID := inv.Subscription.ID

	res := database.DB.Model(&billing.StripeAccount{}).
		Where("stripe_subscription_id = ?", subID).
		Update("subscription_status", "past_due")
	if res.Error == nil && res.RowsAffected > 0 {
		zap.L().Warn("platform subscription payment failed",
			zap.String("subscription_id", subID))
		return nil
	}

	return database.DB.Model(&billing.ClientSubscription{}).
		Where("stripe_subscription_id = ?", subID).
		Updates(map[string]interface{}{
			"status":     "past_due",
			"updated_at": time.Now(),
		}).Error
}
