package subscription

import (
	"net/http"
	"time"

	"coaching-app/config"
	"coaching-app/database"
	"coaching-app/internal/domain/billing"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	stripesub "github.com/stripe/stripe-go/v75/subscription"
	"go.uber.org/zap"
)

// GetStatus refreshes the coach's subscription snapshot from Stripe and
// returns it. When Stripe is unreachable the stored snapshot is returned
// instead. Display only; access decisions always go through the engine.
func GetStatus(c *gin.Context) {
	stripe.Key = config.STRIPE_SECRET_KEY

	coachID := c.GetUint("user_id")
	if coachID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	var acct billing.StripeAccount
	if err := database.DB.Where("user_id = ?", coachID).First(&acct).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{
			"connected":    false,
			"subscription": nil,
		})
		return
	}

	if !acct.HasSubscription() {
		c.JSON(http.StatusOK, gin.H{
			"connected":    false,
			"subscription": nil,
			"account":      gin.H{"customer_id": acct.StripeCustomerID},
		})
		return
	}

	sub, err := stripesub.Get(*acct.StripeSubscriptionID, nil)
	if err != nil {
		zap.L().Warn("stripe subscription fetch failed, serving stored snapshot",
			zap.Uint("coach_id", coachID),
			zap.Error(err))
		c.JSON(http.StatusOK, gin.H{
			"connected": true,
			"subscription": gin.H{
				"id":                   *acct.StripeSubscriptionID,
				"status":               acct.SubscriptionStatus,
				"current_period_start": acct.CurrentPeriodStart,
				"current_period_end":   acct.CurrentPeriodEnd,
				"cancel_at_period_end": acct.CancelAtPeriodEnd,
			},
		})
		return
	}

	periodStart := time.Unix(sub.CurrentPeriodStart, 0)
	periodEnd := time.Unix(sub.CurrentPeriodEnd, 0)
	status := string(sub.Status)

	if err := database.DB.Model(&billing.StripeAccount{}).
		Where("user_id = ?", coachID).
		Updates(map[string]interface{}{
			"subscription_status":  status,
			"current_period_start": periodStart,
			"current_period_end":   periodEnd,
			"cancel_at_period_end": sub.CancelAtPeriodEnd,
		}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store subscription status"})
		return
	}

	resp := gin.H{
		"id":                   sub.ID,
		"status":               status,
		"current_period_start": periodStart,
		"current_period_end":   periodEnd,
		"cancel_at_period_end": sub.CancelAtPeriodEnd,
	}
	if sub.Items != nil && len(sub.Items.Data) > 0 && sub.Items.Data[0].Price != nil {
		price := sub.Items.Data[0].Price
		resp["amount"] = float64(price.UnitAmount) / 100.0
		resp["currency"] = string(price.Currency)
		if price.Recurring != nil {
			resp["interval"] = string(price.Recurring.Interval)
		}
	}

	c.JSON(http.StatusOK, gin.H{"connected": true, "subscription": resp})
}

// Cancel schedules the coach's subscription for cancellation at period
// end. Access continues until the webhook reports the period is over.
func Cancel(c *gin.Context) {
	stripe.Key = config.STRIPE_SECRET_KEY

	coachID := c.GetUint("user_id")
	if coachID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	var acct billing.StripeAccount
	if err := database.DB.Where("user_id = ?", coachID).First(&acct).Error; err != nil || !acct.HasSubscription() {
		c.JSON(http.StatusNotFound, gin.H{"error": "No active subscription found"})
		return
	}

	currentStatus := ""
	if acct.SubscriptionStatus != nil {
		currentStatus = *acct.SubscriptionStatus
	}
	if currentStatus == "canceled" || acct.CancelAtPeriodEnd {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Subscription is already canceled or scheduled for cancellation"})
		return
	}

	updated, err := stripesub.Update(*acct.StripeSubscriptionID, &stripe.SubscriptionParams{
		CancelAtPeriodEnd: stripe.Bool(true),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel subscription"})
		return
	}

	periodEnd := time.Unix(updated.CurrentPeriodEnd, 0)
	if err := database.DB.Model(&billing.StripeAccount{}).
		Where("user_id = ?", coachID).
		Updates(map[string]interface{}{
			"cancel_at_period_end": true,
			"subscription_status":  string(updated.Status),
			"current_period_end":   periodEnd,
		}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store cancellation"})
		return
	}

	zap.L().Info("coach subscription scheduled for cancellation",
		zap.Uint("coach_id", coachID),
		zap.String("subscription_id", updated.ID))

	c.JSON(http.StatusOK, gin.H{
		"message": "Subscription will be canceled at the end of the billing period",
		"subscription": gin.H{
			"id":                   updated.ID,
			"status":               string(updated.Status),
			"cancel_at_period_end": updated.CancelAtPeriodEnd,
			"current_period_end":   periodEnd,
		},
	})
}
