package plans

import (
	"net/http"

	"coaching-app/config"
	"coaching-app/database"
	"coaching-app/internal/domain/plans"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/price"
)

func ListPlans(c *gin.Context) {
	var plansList []plans.Plan
	if err := database.DB.Order("price_usd ASC").Find(&plansList).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load plans"})
		return
	}
	c.JSON(http.StatusOK, plansList)
}

// SyncPlansFromStripe pulls active recurring prices from Stripe into the
// plans table. Admin-only; checkout allow-lists against this table.
func SyncPlansFromStripe(c *gin.Context) {
	stripe.Key = config.STRIPE_SECRET_KEY

	params := &stripe.PriceListParams{}
	params.Active = stripe.Bool(true)
	params.Type = stripe.String("recurring")
	params.AddExpand("data.product")

	it := price.List(params)

	synced := 0
	created := 0
	updated := 0
	skipped := 0

	for it.Next() {
		p := it.Price()

		if !p.Active || p.Recurring == nil || p.Product == nil || !p.Product.Active {
			skipped++
			continue
		}

		if p.Metadata != nil && p.Metadata["visible"] == "false" {
			skipped++
			continue
		}

		amount := float64(p.UnitAmount) / 100.0

		displayName := p.Product.Name
		if p.Metadata != nil {
			if v := p.Metadata["plan"]; v != "" {
				displayName = v
			}
		}

		var existing plans.Plan
		err := database.DB.Where("stripe_price_id = ?", p.ID).First(&existing).Error

		if err != nil {
			plan := plans.Plan{
				Name:          displayName,
				PriceUSD:      amount,
				StripePriceID: p.ID,
				Interval:      string(p.Recurring.Interval),
			}
			if err := database.DB.Create(&plan).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create plan"})
				return
			}
			created++
		} else {
			existing.Name = displayName
			existing.PriceUSD = amount
			existing.Interval = string(p.Recurring.Interval)

			if err := database.DB.Save(&existing).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update plan"})
				return
			}
			updated++
		}

		synced++
	}

	if err := it.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch Stripe prices"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"synced":  synced,
		"created": created,
		"updated": updated,
		"skipped": skipped,
	})
}
