package stripewebhooks

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"coaching-app/database"
	"coaching-app/internal/domain/billing"

	"github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
	"github.com/stripe/stripe-go/v75/subscription"
	"go.uber.org/zap"
)

// handleCheckoutSessionCompleted routes a completed checkout either to the
// coach's platform subscription snapshot (metadata type=platform) or to a
// client product subscription (metadata product_type=group|program).
func handleCheckoutSessionCompleted(session *stripe.CheckoutSession) error {
	// Fetch full session with expansions
	fullSession, err := checkoutsession.Get(session.ID, &stripe.CheckoutSessionParams{
		Params: stripe.Params{
			Expand: []*string{
				stripe.String("subscription"),
				stripe.String("customer"),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to fetch expanded checkout session: %w", err)
	}

	if fullSession.Subscription == nil || fullSession.Subscription.ID == "" {
		// One-off payment checkout; payment_intent.succeeded covers it.
		return nil
	}

	subData, err := subscription.Get(fullSession.Subscription.ID, nil)
	if err != nil {
		return fmt.Errorf("failed to fetch subscription: %w", err)
	}
	if subData == nil {
		return errors.New("subscription fetch returned no data")
	}

	if subData.Metadata["type"] == "platform" {
		return applyPlatformCheckout(fullSession, subData)
	}
	return applyClientProductCheckout(fullSession, subData)
}

func applyPlatformCheckout(session *stripe.CheckoutSession, sub *stripe.Subscription) error {
	userID, err := userIDFromSubscriptionOrRef(sub, session.ClientReferenceID)
	if err != nil {
		return err
	}

	periodStart := time.Unix(sub.CurrentPeriodStart, 0)
	periodEnd := time.Unix(sub.CurrentPeriodEnd, 0)

	updates := map[string]interface{}{
		"stripe_subscription_id": sub.ID,
		"subscription_status":    string(sub.Status),
		"current_period_start":   periodStart,
		"current_period_end":     periodEnd,
		"cancel_at_period_end":   sub.CancelAtPeriodEnd,
	}
	if session.Customer != nil && session.Customer.ID != "" {
		updates["stripe_customer_id"] = session.Customer.ID
	}

	var acct billing.StripeAccount
	err = database.DB.Where("user_id = ?", userID).First(&acct).Error
	if err != nil {
		acct = billing.StripeAccount{UserID: userID}
		if session.Customer != nil && session.Customer.ID != "" {
			acct.StripeCustomerID = stripe.String(session.Customer.ID)
		}
		if err := database.DB.Create(&acct).Error; err != nil {
			return fmt.Errorf("failed to create billing account: %w", err)
		}
	}

	if err := database.DB.Model(&billing.StripeAccount{}).
		Where("user_id = ?", userID).
		Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update billing account after checkout: %w", err)
	}

	zap.L().Info("platform subscription activated",
		zap.Uint("user_id", userID),
		zap.String("subscription_id", sub.ID),
		zap.String("status", string(sub.Status)))
	return nil
}

func applyClientProductCheckout(session *stripe.CheckoutSession, sub *stripe.Subscription) error {
	productType := sub.Metadata["product_type"]
	if !billing.IsValidProductType(productType) {
		// Not one of ours; acknowledge so Stripe stops retrying.
		zap.L().Warn("checkout with unknown product_type ignored",
			zap.String("subscription_id", sub.ID),
			zap.String("product_type", productType))
		return nil
	}

	clientID := parseUserID(sub.Metadata["client_id"])
	coachID := parseUserID(sub.Metadata["coach_id"])
	if clientID == 0 || coachID == 0 {
		return errors.New("client product checkout missing client_id/coach_id metadata")
	}

	periodStart := time.Unix(sub.CurrentPeriodStart, 0)
	periodEnd := time.Unix(sub.CurrentPeriodEnd, 0)

	var existing billing.ClientSubscription
	err := database.DB.Where("stripe_subscription_id = ?", sub.ID).First(&existing).Error
	if err == nil {
		return database.DB.Model(&existing).Updates(map[string]interface{}{
			"status":               string(sub.Status),
			"current_period_start": periodStart,
			"current_period_end":   periodEnd,
			"cancel_at_period_end": sub.CancelAtPeriodEnd,
		}).Error
	}

	cs := billing.ClientSubscription{
		ClientID:             clientID,
		CoachID:              coachID,
		StripeSubscriptionID: sub.ID,
		ProductType:          productType,
		Status:               string(sub.Status),
		CurrentPeriodStart:   &periodStart,
		CurrentPeriodEnd:     &periodEnd,
		CancelAtPeriodEnd:    sub.CancelAtPeriodEnd,
	}
	if err := database.DB.Create(&cs).Error; err != nil {
		return fmt.Errorf("failed to create client subscription: %w", err)
	}
	return nil
}

// userIDFromSubscriptionOrRef prefers metadata.user_id, falling back to the
// checkout session's client_reference_id.
func userIDFromSubscriptionOrRef(sub *stripe.Subscription, clientRef string) (uint, error) {
	userIDStr := ""
	if sub.Metadata != nil {
		userIDStr = sub.Metadata["user_id"]
	}
	if userIDStr == "" {
		userIDStr = clientRef
	}
	if userIDStr == "" {
		return 0, errors.New("missing user_id (metadata.user_id or client_reference_id)")
	}

	uid64, err := strconv.ParseUint(userIDStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user_id %q: %w", userIDStr, err)
	}
	return uint(uid64), nil
}

func parseUserID(s string) uint {
	if s == "" {
		return 0
	}
	uid, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return uint(uid)
}
