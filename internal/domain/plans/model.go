package plans

// Plan is a platform subscription price a coach can subscribe to.
// Synced from Stripe prices by the admin sync endpoint; checkout only
// accepts price ids present here (allow-list).
type Plan struct {
	ID            uint `gorm:"primaryKey"`
	Name          string
	PriceUSD      float64
	StripePriceID string `gorm:"column:stripe_price_id;not null;uniqueIndex:idx_plans_stripe_price_id"`
	Interval      string
}
