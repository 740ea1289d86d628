package admin

import (
	"encoding/json"
	"testing"

	"coaching-app/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminUserPayloadOmitsCredentials(t *testing.T) {
	hash := "$2a$10$abcdefghijklmnopqrstuv"
	sub := "google-sub-123"
	coach := uint(7)
	u := users.User{
		ID:           2,
		Name:         "Ada",
		Lastname:     "Lovelace",
		Email:        "ada@example.com",
		Password:     &hash,
		AuthProvider: "google",
		GoogleSub:    &sub,
		Role:         users.RoleClient,
		IsVerified:   true,
		CoachID:      &coach,
	}

	body, err := json.Marshal(gin.H{"user": newAdminUser(u)})
	require.NoError(t, err)

	s := string(body)
	assert.NotContains(t, s, hash)
	assert.NotContains(t, s, sub)
	assert.NotContains(t, s, "Password")
	assert.NotContains(t, s, "AuthProvider")

	assert.Contains(t, s, `"email":"ada@example.com"`)
	assert.Contains(t, s, `"role":"client"`)
	assert.Contains(t, s, `"coach_id":7`)
}

func TestAdminUserPayloadOmitsCredentialsForClientLists(t *testing.T) {
	hash := "$2a$10$zyxwvutsrqponmlkjihgfe"
	clients := []users.User{
		{ID: 3, Email: "c1@example.com", Password: &hash, Role: users.RoleClient},
		{ID: 4, Email: "c2@example.com", Password: &hash, Role: users.RoleClient},
	}

	rows := make([]AdminUser, 0, len(clients))
	for _, cl := range clients {
		rows = append(rows, newAdminUser(cl))
	}

	body, err := json.Marshal(rows)
	require.NoError(t, err)
	assert.NotContains(t, string(body), hash)
}
