package users

import (
	"net/http"

	"coaching-app/config"
	"coaching-app/database"
	"coaching-app/internal/domain/access"
	"coaching-app/internal/domain/billing"
	"coaching-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// GetCurrentUser returns the account, its billing snapshot (coaches only)
// and the current access decision, which page-level gates poll.
func GetCurrentUser(checker *access.Checker) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")
		if userID == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var user users.User
		if err := database.DB.First(&user, userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		resp := MeResponse{
			User: UserDTO{
				ID:         user.ID,
				Email:      user.Email,
				Name:       user.Name,
				Lastname:   user.Lastname,
				Role:       user.Role,
				IsVerified: user.IsVerified,
				CoachID:    user.CoachID,
			},
		}

		switch user.Role {
		case users.RoleCoach:
			var acct billing.StripeAccount
			if err := database.DB.Where("user_id = ?", user.ID).First(&acct).Error; err == nil {
				resp.Billing = BuildBillingDTO(&acct)
			}
			d := checker.CheckCoach(user.ID)
			resp.Access = BuildAccessDTO(d)
		case users.RoleClient:
			d := checker.CheckClient(user.ID)
			resp.Access = BuildAccessDTO(d)
		default:
			resp.Access = &AccessDTO{Allowed: true}
		}

		c.JSON(http.StatusOK, resp)
	}
}

func VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing token"})
		return
	}

	var t users.VerificationToken
	if err := database.DB.Where("token = ?", token).First(&t).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired token"})
		return
	}

	if err := database.DB.Model(&users.User{}).Where("id = ?", t.UserID).Update("is_verified", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify user"})
		return
	}

	database.DB.Delete(&t)

	c.Redirect(http.StatusTemporaryRedirect, config.APP_URL+"/signin")
}
