package admin

import (
	"net/http"
	"time"

	"coaching-app/database"
	"coaching-app/internal/domain/billing"
	"coaching-app/internal/domain/users"
	stripeinfra "coaching-app/internal/infra/stripe"

	"github.com/gin-gonic/gin"
)

type CoachSubscriptionRow struct {
	CoachID            uint       `json:"coach_id"`
	CoachName          string     `json:"coach_name"`
	CoachEmail         string     `json:"coach_email"`
	Status             *string    `json:"status"`
	CurrentPeriodStart *time.Time `json:"current_period_start"`
	CurrentPeriodEnd   *time.Time `json:"current_period_end"`
	CancelAtPeriodEnd  bool       `json:"cancel_at_period_end"`
	CreatedAt          *time.Time `json:"created_at"`
}

// AdminUser is the admin-facing user payload. Raw user models never go
// over the wire; credentials and auth identifiers stay out of responses.
type AdminUser struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	Lastname   string    `json:"lastname"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	IsVerified bool      `json:"is_verified"`
	CoachID    *uint     `json:"coach_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func newAdminUser(u users.User) AdminUser {
	return AdminUser{
		ID:         u.ID,
		Name:       u.Name,
		Lastname:   u.Lastname,
		Email:      u.Email,
		Role:       u.Role,
		IsVerified: u.IsVerified,
		CoachID:    u.CoachID,
		CreatedAt:  u.CreatedAt,
	}
}

type AdminBillingAccount struct {
	StripeCustomerID   *string    `json:"stripe_customer_id,omitempty"`
	StripeAccountID    *string    `json:"stripe_account_id,omitempty"`
	ChargesEnabled     bool       `json:"charges_enabled"`
	PayoutsEnabled     bool       `json:"payouts_enabled"`
	DetailsSubmitted   bool       `json:"details_submitted"`
	SubscriptionID     *string    `json:"stripe_subscription_id,omitempty"`
	SubscriptionStatus *string    `json:"subscription_status"`
	CurrentPeriodStart *time.Time `json:"current_period_start"`
	CurrentPeriodEnd   *time.Time `json:"current_period_end"`
	CancelAtPeriodEnd  bool       `json:"cancel_at_period_end"`
}

func newAdminBillingAccount(a billing.StripeAccount) AdminBillingAccount {
	return AdminBillingAccount{
		StripeCustomerID:   a.StripeCustomerID,
		StripeAccountID:    a.StripeAccountID,
		ChargesEnabled:     a.ChargesEnabled,
		PayoutsEnabled:     a.PayoutsEnabled,
		DetailsSubmitted:   a.DetailsSubmitted,
		SubscriptionID:     a.StripeSubscriptionID,
		SubscriptionStatus: a.SubscriptionStatus,
		CurrentPeriodStart: a.CurrentPeriodStart,
		CurrentPeriodEnd:   a.CurrentPeriodEnd,
		CancelAtPeriodEnd:  a.CancelAtPeriodEnd,
	}
}

type AdminClientSubscription struct {
	ID                 uint       `json:"id"`
	CoachID            uint       `json:"coach_id"`
	ProductType        string     `json:"product_type"`
	Status             string     `json:"status"`
	CurrentPeriodStart *time.Time `json:"current_period_start"`
	CurrentPeriodEnd   *time.Time `json:"current_period_end"`
	CancelAtPeriodEnd  bool       `json:"cancel_at_period_end"`
}

type AdminStats struct {
	TotalCoaches        int     `json:"total_coaches"`
	TotalClients        int     `json:"total_clients"`
	ActiveSubscriptions int     `json:"active_subscriptions"`
	RecentClientRevenue float64 `json:"recent_client_revenue"`
}

func AdminDashboard(c *gin.Context) {
	var stats AdminStats

	var totalCoaches int64
	var totalClients int64
	var activeSubs int64
	var recentRevenue float64

	database.DB.Model(&users.User{}).Where("role = ?", users.RoleCoach).Count(&totalCoaches)
	database.DB.Model(&users.User{}).Where("role = ?", users.RoleClient).Count(&totalClients)
	database.DB.Model(&billing.StripeAccount{}).
		Where("subscription_status IN ?", []string{
			string(stripeinfra.StatusActive),
			string(stripeinfra.StatusTrialing),
		}).
		Count(&activeSubs)

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	database.DB.Model(&billing.ClientPayment{}).
		Where("status = ? AND created_at >= ?", "succeeded", thirtyDaysAgo).
		Select("COALESCE(SUM(amount), 0)").Scan(&recentRevenue)

	stats.TotalCoaches = int(totalCoaches)
	stats.TotalClients = int(totalClients)
	stats.ActiveSubscriptions = int(activeSubs)
	stats.RecentClientRevenue = recentRevenue

	c.JSON(http.StatusOK, stats)
}

// ListCoachSubscriptions returns every coach with their stored
// subscription snapshot, most recent billing first.
func ListCoachSubscriptions(c *gin.Context) {
	var coaches []users.User
	if err := database.DB.Where("role = ?", users.RoleCoach).Find(&coaches).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load coaches"})
		return
	}

	var accounts []billing.StripeAccount
	if err := database.DB.Find(&accounts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load billing accounts"})
		return
	}
	byCoach := make(map[uint]*billing.StripeAccount, len(accounts))
	for i := range accounts {
		byCoach[accounts[i].UserID] = &accounts[i]
	}

	result := make([]CoachSubscriptionRow, 0, len(coaches))
	for _, coach := range coaches {
		row := CoachSubscriptionRow{
			CoachID:    coach.ID,
			CoachName:  coach.Name,
			CoachEmail: coach.Email,
		}
		if acct, ok := byCoach[coach.ID]; ok {
			row.Status = acct.SubscriptionStatus
			row.CurrentPeriodStart = acct.CurrentPeriodStart
			row.CurrentPeriodEnd = acct.CurrentPeriodEnd
			row.CancelAtPeriodEnd = acct.CancelAtPeriodEnd
			created := acct.CreatedAt
			row.CreatedAt = &created
		}
		result = append(result, row)
	}

	c.JSON(http.StatusOK, gin.H{"subscriptions": result})
}

func GetUserDetails(c *gin.Context) {
	userID := c.Param("id")

	var user users.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	resp := gin.H{"user": newAdminUser(user)}

	switch user.Role {
	case users.RoleCoach:
		var acct billing.StripeAccount
		if err := database.DB.Where("user_id = ?", user.ID).First(&acct).Error; err == nil {
			resp["billing_account"] = newAdminBillingAccount(acct)
		}
		var clients []users.User
		database.DB.Where("coach_id = ?", user.ID).Find(&clients)
		clientRows := make([]AdminUser, 0, len(clients))
		for _, cl := range clients {
			clientRows = append(clientRows, newAdminUser(cl))
		}
		resp["clients"] = clientRows
	case users.RoleClient:
		var subs []billing.ClientSubscription
		database.DB.Where("client_id = ?", user.ID).Find(&subs)
		subRows := make([]AdminClientSubscription, 0, len(subs))
		for _, s := range subs {
			subRows = append(subRows, AdminClientSubscription{
				ID:                 s.ID,
				CoachID:            s.CoachID,
				ProductType:        s.ProductType,
				Status:             s.Status,
				CurrentPeriodStart: s.CurrentPeriodStart,
				CurrentPeriodEnd:   s.CurrentPeriodEnd,
				CancelAtPeriodEnd:  s.CancelAtPeriodEnd,
			})
		}
		resp["subscriptions"] = subRows
	}

	c.JSON(http.StatusOK, resp)
}
