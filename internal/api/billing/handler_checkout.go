package billing

import (
	"fmt"
	"net/http"
	"os"

	"coaching-app/config"
	"coaching-app/database"
	"coaching-app/internal/domain/billing"
	"coaching-app/internal/domain/plans"
	"coaching-app/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	portalSession "github.com/stripe/stripe-go/v75/billingportal/session"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
	customer "github.com/stripe/stripe-go/v75/customer"
)

// CreateCheckoutSession starts a platform-subscription checkout for a
// coach. Price ids are allow-listed against the synced plans table.
func CreateCheckoutSession(c *gin.Context) {
	var body struct {
		PriceID string `json:"price_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.PriceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid price_id"})
		return
	}

	stripe.Key = config.STRIPE_SECRET_KEY

	coachID := c.GetUint("user_id")
	if coachID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	var plan plans.Plan
	if err := database.DB.Where("stripe_price_id = ?", body.PriceID).First(&plan).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown plan/price_id"})
		return
	}

	var user users.User
	if err := database.DB.Where("id = ?", coachID).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	if !user.IsVerified {
		c.JSON(http.StatusForbidden, gin.H{"error": "Please verify your email first"})
		return
	}

	acct, err := ensureStripeCustomer(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Stripe customer"})
		return
	}

	params := &stripe.CheckoutSessionParams{
		SuccessURL: stripe.String(config.APP_URL + "/coach/billing"),
		CancelURL:  stripe.String(config.APP_URL + "/coach/billing?canceled=1"),
		Mode:       stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		Customer:   acct.StripeCustomerID,

		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(plan.StripePriceID), Quantity: stripe.Int64(1)},
		},

		ClientReferenceID: stripe.String(fmt.Sprint(user.ID)),

		SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{
			Metadata: map[string]string{
				"user_id": fmt.Sprint(user.ID),
				"type":    "platform",
				"app_env": os.Getenv("APP_ENV"),
			},
		},
	}

	s, err := checkoutsession.New(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checkout session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": s.URL})
}

func CreateBillingPortal(c *gin.Context) {
	stripe.Key = config.STRIPE_SECRET_KEY

	coachID := c.GetUint("user_id")
	if coachID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	var acct billing.StripeAccount
	if err := database.DB.Where("user_id = ?", coachID).First(&acct).Error; err != nil ||
		acct.StripeCustomerID == nil || *acct.StripeCustomerID == "" {
		c.JSON(http.StatusConflict, gin.H{"error": "No Stripe customer yet (subscribe first)"})
		return
	}

	portal, err := portalSession.New(&stripe.BillingPortalSessionParams{
		Customer:  acct.StripeCustomerID,
		ReturnURL: stripe.String(config.APP_URL + "/coach/billing"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create billing portal session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": portal.URL})
}

// ensureStripeCustomer returns the coach's StripeAccount, creating the
// row and the Stripe customer on first use.
func ensureStripeCustomer(user *users.User) (*billing.StripeAccount, error) {
	var acct billing.StripeAccount
	err := database.DB.Where("user_id = ?", user.ID).First(&acct).Error
	if err == nil && acct.StripeCustomerID != nil && *acct.StripeCustomerID != "" {
		return &acct, nil
	}

	cus, cusErr := customer.New(&stripe.CustomerParams{
		Email: stripe.String(user.Email),
		Metadata: map[string]string{
			"user_id": fmt.Sprint(user.ID),
			"app_env": os.Getenv("APP_ENV"),
		},
	})
	if cusErr != nil {
		return nil, cusErr
	}

	if err != nil {
		// No row yet.
		acct = billing.StripeAccount{
			UserID:           user.ID,
			StripeCustomerID: stripe.String(cus.ID),
		}
		if err := database.DB.Create(&acct).Error; err != nil {
			return nil, err
		}
		return &acct, nil
	}

	if err := database.DB.Model(&billing.StripeAccount{}).
		Where("user_id = ?", user.ID).
		Update("stripe_customer_id", cus.ID).Error; err != nil {
		return nil, err
	}
	acct.StripeCustomerID = stripe.String(cus.ID)
	return &acct, nil
}
