package clients

import (
	"net/http"

	"coaching-app/database"
	"coaching-app/internal/domain/users"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// CreateClient lets a coach create a client account. The coach link is
// set here and only here: dependent access resolution relies on clients
// having exactly one coach, assigned at creation.
func CreateClient(c *gin.Context) {
	coachID := c.GetUint("user_id")
	if coachID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	var input struct {
		Name     string `json:"name" binding:"required"`
		Lastname string `json:"lastname"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}
	hashed := string(hashedPassword)

	client := users.User{
		Name:         input.Name,
		Lastname:     input.Lastname,
		Email:        input.Email,
		Password:     &hashed,
		AuthProvider: "local",
		Role:         users.RoleClient,
		IsVerified:   true, // created by their coach, no email round-trip
		CoachID:      &coachID,
	}

	if err := database.DB.Create(&client).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email may already exist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Client created",
		"client": gin.H{
			"id":    client.ID,
			"name":  client.Name,
			"email": client.Email,
		},
	})
}

func ListClients(c *gin.Context) {
	coachID := c.GetUint("user_id")
	if coachID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	var clients []users.User
	if err := database.DB.
		Where("coach_id = ? AND role = ?", coachID, users.RoleClient).
		Order("created_at DESC").
		Find(&clients).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load clients"})
		return
	}

	type clientRow struct {
		ID       uint   `json:"id"`
		Name     string `json:"name"`
		Lastname string `json:"lastname"`
		Email    string `json:"email"`
	}
	result := make([]clientRow, 0, len(clients))
	for _, cl := range clients {
		result = append(result, clientRow{
			ID:       cl.ID,
			Name:     cl.Name,
			Lastname: cl.Lastname,
			Email:    cl.Email,
		})
	}
	c.JSON(http.StatusOK, gin.H{"clients": result})
}
