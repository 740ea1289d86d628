package middleware

import (
	"net/http"

	"coaching-app/internal/domain/access"
	"coaching-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// SubscriptionNoticeKey holds a non-blocking banner message (scheduled
// cancellation, grace period) for handlers that want to surface it.
const SubscriptionNoticeKey = "subscription_notice"

// RequireSubscriptionAccess runs the access engine for the authenticated
// user. Admins bypass the check. A denial aborts with the reason code, the
// user-facing message and the denial page redirect; billing-caused denials
// use 402, the rest 403.
func RequireSubscriptionAccess(checker *access.Checker) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role == users.RoleAdmin {
			c.Next()
			return
		}

		userID := c.GetUint("user_id")
		if userID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
			return
		}

		var decision access.Decision
		switch role {
		case users.RoleCoach:
			decision = checker.CheckCoach(userID)
		case users.RoleClient:
			decision = checker.CheckClient(userID)
		default:
			c.Next()
			return
		}

		if !decision.Allowed {
			c.AbortWithStatusJSON(denialStatus(decision.Reason), gin.H{
				"error":    decision.Message,
				"reason":   decision.Reason,
				"redirect": access.DenialRedirect(decision),
			})
			return
		}

		if decision.Message != "" {
			c.Set(SubscriptionNoticeKey, decision.Message)
		}
		c.Next()
	}
}

func denialStatus(reason access.Reason) int {
	switch reason {
	case access.ReasonExpired, access.ReasonPastDue, access.ReasonCanceled,
		access.ReasonUnpaid, access.ReasonIncomplete, access.ReasonIncompleteExpired:
		return http.StatusPaymentRequired
	default:
		return http.StatusForbidden
	}
}
