package stripewebhooks

import (
	"coaching-app/database"
	"coaching-app/internal/domain/billing"

	"github.com/stripe/stripe-go/v75"
	"go.uber.org/zap"
)

// handlePaymentIntentSucceeded records a one-off client payment. Renewal
// charges carry no client_id metadata and are skipped (invoice events own
// those).
func handlePaymentIntentSucceeded(pi *stripe.PaymentIntent) error {
	clientID := parseUserID(pi.Metadata["client_id"])
	coachID := parseUserID(pi.Metadata["coach_id"])
	if clientID == 0 || coachID == 0 {
		return nil
	}

	var existing billing.ClientPayment
	if err := database.DB.Where("stripe_payment_intent_id = ?", pi.ID).First(&existing).Error; err == nil {
		// Already recorded; webhooks can deliver more than once.
		return nil
	}

	payment := billing.ClientPayment{
		ClientID:              clientID,
		CoachID:               coachID,
		StripePaymentIntentID: pi.ID,
		Amount:                float64(pi.Amount) / 100.0,
		Currency:              string(pi.Currency),
		Status:                "succeeded",
	}
	if desc := pi.Metadata["description"]; desc != "" {
		payment.Description = &desc
	}
	return database.DB.Create(&payment).Error
}

func handlePaymentIntentFailed(pi *stripe.PaymentIntent) {
	failure := ""
	if pi.LastPaymentError != nil {
		failure = pi.LastPaymentError.Msg
	}
	zap.L().Warn("client payment failed",
		zap.String("payment_intent_id", pi.ID),
		zap.String("client_id", pi.Metadata["client_id"]),
		zap.String("failure", failure))
}
