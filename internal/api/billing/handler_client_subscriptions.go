package billing

import (
	"net/http"
	"time"

	"coaching-app/database"
	"coaching-app/internal/domain/billing"

	"github.com/gin-gonic/gin"
)

type ClientSubscriptionDTO struct {
	ID                 uint       `json:"id"`
	ProductType        string     `json:"product_type"`
	Status             string     `json:"status"`
	CurrentPeriodStart *time.Time `json:"current_period_start"`
	CurrentPeriodEnd   *time.Time `json:"current_period_end"`
	CancelAtPeriodEnd  bool       `json:"cancel_at_period_end"`
}

func buildClientSubscriptionDTO(s billing.ClientSubscription) ClientSubscriptionDTO {
	return ClientSubscriptionDTO{
		ID:                 s.ID,
		ProductType:        s.ProductType,
		Status:             s.Status,
		CurrentPeriodStart: s.CurrentPeriodStart,
		CurrentPeriodEnd:   s.CurrentPeriodEnd,
		CancelAtPeriodEnd:  s.CancelAtPeriodEnd,
	}
}

// ListClientSubscriptions returns the client's own product subscriptions.
func ListClientSubscriptions(c *gin.Context) {
	clientID := c.GetUint("user_id")
	if clientID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	var subs []billing.ClientSubscription
	if err := database.DB.
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&subs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load subscriptions"})
		return
	}

	result := make([]ClientSubscriptionDTO, 0, len(subs))
	for _, s := range subs {
		result = append(result, buildClientSubscriptionDTO(s))
	}
	c.JSON(http.StatusOK, gin.H{"subscriptions": result})
}

// CheckClientProductSubscription answers whether the client holds an
// active subscription for a product type (group or program). Expired
// periods count as inactive except past_due, which may still be inside
// its grace window.
func CheckClientProductSubscription(c *gin.Context) {
	clientID := c.GetUint("user_id")
	if clientID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	productType := c.Query("product_type")
	if !billing.IsValidProductType(productType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product type. Must be \"group\" or \"program\""})
		return
	}

	var sub billing.ClientSubscription
	err := database.DB.
		Where("client_id = ? AND product_type = ? AND status IN ?",
			clientID, productType, []string{"active", "trialing", "past_due"}).
		Order("created_at DESC").
		First(&sub).Error
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"has_active_subscription": false,
			"message":                 "No active " + productType + " subscription found",
		})
		return
	}

	now := time.Now()
	if sub.CurrentPeriodEnd != nil && sub.CurrentPeriodEnd.Before(now) && sub.Status != "past_due" {
		c.JSON(http.StatusOK, gin.H{
			"has_active_subscription": false,
			"message":                 "Your " + productType + " subscription has expired",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"has_active_subscription": true,
		"subscription":            buildClientSubscriptionDTO(sub),
	})
}

// ListCoachClientSubscriptions gives a coach the product subscriptions of
// their own clients.
func ListCoachClientSubscriptions(c *gin.Context) {
	coachID := c.GetUint("user_id")
	if coachID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	var subs []billing.ClientSubscription
	if err := database.DB.
		Preload("Client").
		Where("coach_id = ?", coachID).
		Order("created_at DESC").
		Find(&subs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load client subscriptions"})
		return
	}

	type row struct {
		ClientSubscriptionDTO
		ClientID    uint   `json:"client_id"`
		ClientName  string `json:"client_name"`
		ClientEmail string `json:"client_email"`
	}
	result := make([]row, 0, len(subs))
	for _, s := range subs {
		result = append(result, row{
			ClientSubscriptionDTO: buildClientSubscriptionDTO(s),
			ClientID:              s.ClientID,
			ClientName:            s.Client.Name,
			ClientEmail:           s.Client.Email,
		})
	}
	c.JSON(http.StatusOK, gin.H{"subscriptions": result})
}

// GetPaymentHistory lists payments received from the coach's clients.
func GetPaymentHistory(c *gin.Context) {
	coachID := c.GetUint("user_id")
	if coachID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	var payments []billing.ClientPayment
	if err := database.DB.
		Preload("Client").
		Where("coach_id = ?", coachID).
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}

	type paymentRow struct {
		ID          uint    `json:"id"`
		ClientName  string  `json:"client_name"`
		ClientEmail string  `json:"client_email"`
		Amount      float64 `json:"amount"`
		Currency    string  `json:"currency"`
		Status      string  `json:"status"`
		Description *string `json:"description,omitempty"`
		CreatedAt   string  `json:"created_at"`
	}
	result := make([]paymentRow, 0, len(payments))
	for _, p := range payments {
		result = append(result, paymentRow{
			ID:          p.ID,
			ClientName:  p.Client.Name,
			ClientEmail: p.Client.Email,
			Amount:      p.Amount,
			Currency:    p.Currency,
			Status:      p.Status,
			Description: p.Description,
			CreatedAt:   p.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	c.JSON(http.StatusOK, gin.H{"payments": result})
}
