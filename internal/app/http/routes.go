package routes

import (
	adminapi "coaching-app/internal/api/admin"
	authapi "coaching-app/internal/api/auth"
	"coaching-app/internal/api/billing"
	"coaching-app/internal/api/clients"
	"coaching-app/internal/api/plans"
	stripewebhooks "coaching-app/internal/api/stripewebhook"
	"coaching-app/internal/api/subscription"
	"coaching-app/internal/api/users"
	"coaching-app/internal/app/http/middleware"
	"coaching-app/internal/domain/access"
	domusers "coaching-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, checker *access.Checker) {
	r.POST("/webhook", stripewebhooks.StripeWebhook)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.GET("/plans", plans.ListPlans)
	public.GET("/verify", users.VerifyEmail)
	public.POST("/resend-verification", authapi.ResendVerification)
	public.POST("/request-password-reset", authapi.RequestPasswordReset)
	public.POST("/reset-password", authapi.ResetPassword)

	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", users.GetCurrentUser(checker))
	auth.POST("/change-password", authapi.ChangePassword)

	// Access engine endpoints: anyone signed in may ask where they stand.
	auth.GET("/subscription/check", subscription.CheckAccess(checker))
	auth.GET("/access-denied/info", subscription.DenialPageInfo)

	// Coach billing surface. Checkout and the billing portal stay reachable
	// without an active subscription so a lapsed coach can pay.
	coach := auth.Group("/")
	coach.Use(middleware.RequireRole(domusers.RoleCoach))
	coach.GET("/subscription/status", subscription.GetStatus)
	coach.POST("/create-checkout-session", billing.CreateCheckoutSession)
	coach.POST("/billing-portal", billing.CreateBillingPortal)

	// Coach features gated on an active platform subscription.
	coachGated := coach.Group("/")
	coachGated.Use(middleware.RequireSubscriptionAccess(checker))
	coachGated.POST("/subscription/cancel", subscription.Cancel)
	coachGated.POST("/clients", clients.CreateClient)
	coachGated.GET("/clients", clients.ListClients)
	coachGated.GET("/client-subscriptions", billing.ListCoachClientSubscriptions)
	coachGated.GET("/payments", billing.GetPaymentHistory)

	// Client surface, gated on the coach's subscription standing.
	client := auth.Group("/")
	client.Use(middleware.RequireRole(domusers.RoleClient), middleware.RequireSubscriptionAccess(checker))
	client.GET("/client/subscriptions", billing.ListClientSubscriptions)
	client.GET("/client/subscriptions/check", billing.CheckClientProductSubscription)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole(domusers.RoleAdmin))
	admin.GET("/dashboard", adminapi.AdminDashboard)
	admin.GET("/coaches/subscriptions", adminapi.ListCoachSubscriptions)
	admin.GET("/user/:id", adminapi.GetUserDetails)
	admin.POST("/sync-plans", plans.SyncPlansFromStripe)
}
