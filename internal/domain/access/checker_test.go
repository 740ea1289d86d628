package access

import (
	"errors"
	"testing"
	"time"

	"coaching-app/internal/domain/billing"
	"coaching-app/internal/domain/users"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeStore struct {
	accounts map[uint]*billing.StripeAccount
	clients  map[uint]*users.User

	accountErr error
	clientErr  error
}

func (f *fakeStore) CoachSubscription(coachID uint) (*billing.StripeAccount, error) {
	if f.accountErr != nil {
		return nil, f.accountErr
	}
	return f.accounts[coachID], nil
}

func (f *fakeStore) ClientRecord(clientID uint) (*users.User, error) {
	if f.clientErr != nil {
		return nil, f.clientErr
	}
	return f.clients[clientID], nil
}

func newTestChecker(store *fakeStore) *Checker {
	return NewChecker(store, zap.NewNop()).WithClock(func() time.Time { return testNow })
}

func coachID(id uint) *uint { return &id }

func TestCheckCoachFailsClosedOnStoreError(t *testing.T) {
	checker := newTestChecker(&fakeStore{accountErr: errors.New("connection refused")})

	d := checker.CheckCoach(7)
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonError, d.Reason)
	assert.Equal(t, "Unable to verify subscription status. Please contact support for assistance.", d.Message)
}

func TestCheckCoachNoAccountAllows(t *testing.T) {
	checker := newTestChecker(&fakeStore{accounts: map[uint]*billing.StripeAccount{}})

	d := checker.CheckCoach(7)
	assert.True(t, d.Allowed)
	assert.Equal(t, ReasonNoStripeConnection, d.Reason)
}

func TestCheckClientPropagatesCoachDenialGenerically(t *testing.T) {
	pastEnd := testNow.Add(-30 * 24 * time.Hour)
	checker := newTestChecker(&fakeStore{
		clients: map[uint]*users.User{
			2: {ID: 2, Role: users.RoleClient, CoachID: coachID(7)},
		},
		accounts: map[uint]*billing.StripeAccount{
			7: account("sub_1", "past_due", &pastEnd, false),
		},
	})

	d := checker.CheckClient(2)
	assert.False(t, d.Allowed)
	// The client sees the generic code, not the coach's billing detail.
	assert.Equal(t, ReasonCoachSubscriptionInactive, d.Reason)
	assert.Equal(t, ReasonPastDue, d.CoachReason)
	assert.Equal(t, "Your coach's subscription is inactive. Access is temporarily unavailable. Please contact your coach or support for assistance.", d.Message)
}

func TestCheckClientAllowedWhenCoachActive(t *testing.T) {
	end := testNow.Add(10 * 24 * time.Hour)
	checker := newTestChecker(&fakeStore{
		clients: map[uint]*users.User{
			2: {ID: 2, Role: users.RoleClient, CoachID: coachID(7)},
		},
		accounts: map[uint]*billing.StripeAccount{
			7: account("sub_1", "active", &end, false),
		},
	})

	d := checker.CheckClient(2)
	assert.True(t, d.Allowed)
	assert.Empty(t, d.Message)
	assert.Equal(t, ReasonNone, d.CoachReason)
}

func TestCheckClientNoCoachAssigned(t *testing.T) {
	checker := newTestChecker(&fakeStore{
		clients: map[uint]*users.User{
			2: {ID: 2, Role: users.RoleClient},
		},
	})

	d := checker.CheckClient(2)
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonNoCoachAssigned, d.Reason)
	assert.Equal(t, "No coach assigned. Please contact support for assistance.", d.Message)
}

func TestCheckClientNotFound(t *testing.T) {
	checker := newTestChecker(&fakeStore{clients: map[uint]*users.User{}})

	d := checker.CheckClient(99)
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonClientNotFound, d.Reason)
}

func TestCheckClientFailsClosedOnAnyFetchError(t *testing.T) {
	// Client lookup failing.
	checker := newTestChecker(&fakeStore{clientErr: errors.New("timeout")})
	d := checker.CheckClient(2)
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonError, d.Reason)

	// Coach lookup failing mid-resolution.
	checker = newTestChecker(&fakeStore{
		clients: map[uint]*users.User{
			2: {ID: 2, Role: users.RoleClient, CoachID: coachID(7)},
		},
		accountErr: errors.New("timeout"),
	})
	d = checker.CheckClient(2)
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonError, d.Reason)
	assert.Equal(t, "Unable to verify access. Please contact support for assistance.", d.Message)
}
