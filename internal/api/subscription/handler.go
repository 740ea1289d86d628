package subscription

import (
	"net/http"

	"coaching-app/internal/domain/access"
	"coaching-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// CheckAccess is the route page guards call on mount, on navigation and on
// a polling interval. Role-aware: admins always pass, coaches are checked
// against their own subscription, clients against their coach's.
func CheckAccess(checker *access.Checker) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")
		if userID == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{
				"has_access": false,
				"reason":     "unauthorized",
				"message":    "Not authenticated",
			})
			return
		}

		role := c.GetString("role")
		if role == users.RoleAdmin {
			c.JSON(http.StatusOK, gin.H{"has_access": true})
			return
		}

		var decision access.Decision
		switch role {
		case users.RoleCoach:
			decision = checker.CheckCoach(userID)
		case users.RoleClient:
			decision = checker.CheckClient(userID)
		default:
			c.JSON(http.StatusOK, gin.H{"has_access": true})
			return
		}

		resp := gin.H{
			"has_access": decision.Allowed,
			"reason":     decision.Reason,
			"message":    decision.Message,
		}
		if decision.RelevantDate != nil {
			resp["relevant_date"] = decision.RelevantDate
		}
		if decision.CoachReason != access.ReasonNone {
			resp["coach_subscription_reason"] = decision.CoachReason
		}
		if !decision.Allowed {
			resp["redirect"] = access.DenialRedirect(decision)
		}
		c.JSON(http.StatusOK, resp)
	}
}

// DenialPageInfo returns the fixed title/description for a denial reason.
// The denial pages render this and fall back to the message query param
// when the reason is unrecognized.
func DenialPageInfo(c *gin.Context) {
	reason := access.Reason(c.Query("reason"))
	c.JSON(http.StatusOK, access.PageInfo(reason))
}
