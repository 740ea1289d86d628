package stripewebhooks

import (
	"coaching-app/database"
	"coaching-app/internal/domain/billing"

	"github.com/stripe/stripe-go/v75"
	"go.uber.org/zap"
)

// handleAccountUpdated tracks Connect onboarding progress for the coach's
// payout account.
func handleAccountUpdated(acct *stripe.Account) error {
	if acct.ID == "" {
		return nil
	}

	res := database.DB.Model(&billing.StripeAccount{}).
		Where("stripe_account_id = ?", acct.ID).
		Updates(map[string]interface{}{
			"charges_enabled":   acct.ChargesEnabled,
			"payouts_enabled":   acct.PayoutsEnabled,
			"details_submitted": acct.DetailsSubmitted,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		zap.L().Debug("account.updated for unknown connect account ignored",
			zap.String("stripe_account_id", acct.ID))
	}
	return nil
}
