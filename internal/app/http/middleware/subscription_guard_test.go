package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"coaching-app/internal/domain/access"
	"coaching-app/internal/domain/billing"
	"coaching-app/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type guardStore struct {
	account *billing.StripeAccount
	client  *users.User
	err     error
}

func (s guardStore) CoachSubscription(uint) (*billing.StripeAccount, error) {
	return s.account, s.err
}

func (s guardStore) ClientRecord(uint) (*users.User, error) {
	return s.client, s.err
}

func guardRouter(store access.Store, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	checker := access.NewChecker(store, zap.NewNop())

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", uint(1))
		c.Set("role", role)
	})
	r.Use(RequireSubscriptionAccess(checker))
	r.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func doGet(r *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestGuardAllowsActiveCoach(t *testing.T) {
	subID := "sub_1"
	status := "active"
	end := time.Now().Add(10 * 24 * time.Hour)
	r := guardRouter(guardStore{account: &billing.StripeAccount{
		StripeSubscriptionID: &subID,
		SubscriptionStatus:   &status,
		CurrentPeriodEnd:     &end,
	}}, users.RoleCoach)

	assert.Equal(t, http.StatusOK, doGet(r).Code)
}

func TestGuardBlocksCanceledCoachWithPaymentRequired(t *testing.T) {
	subID := "sub_1"
	status := "canceled"
	r := guardRouter(guardStore{account: &billing.StripeAccount{
		StripeSubscriptionID: &subID,
		SubscriptionStatus:   &status,
	}}, users.RoleCoach)

	w := doGet(r)
	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	assert.Contains(t, w.Body.String(), "canceled")
	assert.Contains(t, w.Body.String(), "/subscription-error")
}

func TestGuardBlocksClientWithoutCoach(t *testing.T) {
	r := guardRouter(guardStore{client: &users.User{ID: 1, Role: users.RoleClient}}, users.RoleClient)

	w := doGet(r)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "no_coach_assigned")
}

func TestGuardAdminBypassesCheck(t *testing.T) {
	// Store always errors; an admin must still get through.
	r := guardRouter(guardStore{err: errors.New("db down")}, users.RoleAdmin)
	assert.Equal(t, http.StatusOK, doGet(r).Code)
}

func TestGuardFailsClosedOnStoreError(t *testing.T) {
	r := guardRouter(guardStore{err: errors.New("db down")}, users.RoleCoach)

	w := doGet(r)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}
