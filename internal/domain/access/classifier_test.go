package access

import (
	"testing"
	"time"

	"coaching-app/internal/domain/billing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func strPtr(s string) *string        { return &s }
func timePtr(t time.Time) *time.Time { return &t }

func account(subID string, status string, periodEnd *time.Time, cancelAtEnd bool) *billing.StripeAccount {
	acct := &billing.StripeAccount{
		UserID:            1,
		CancelAtPeriodEnd: cancelAtEnd,
		CurrentPeriodEnd:  periodEnd,
	}
	if subID != "" {
		acct.StripeSubscriptionID = strPtr(subID)
	}
	if status != "" {
		acct.SubscriptionStatus = strPtr(status)
	}
	return acct
}

func TestClassifyNoStripeConnectionAllows(t *testing.T) {
	// Regardless of other fields, no subscription id means allow.
	d := Classify(testNow, nil)
	assert.True(t, d.Allowed)
	assert.Equal(t, ReasonNoStripeConnection, d.Reason)

	d = Classify(testNow, account("", "canceled", timePtr(testNow.Add(-time.Hour)), true))
	assert.True(t, d.Allowed)
	assert.Equal(t, ReasonNoStripeConnection, d.Reason)
	assert.NotEmpty(t, d.Message)
}

func TestClassifyActiveExpiredBoundary(t *testing.T) {
	d := Classify(testNow, account("sub_1", "active", timePtr(testNow.Add(-time.Second)), false))
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonExpired, d.Reason)
	assert.Equal(t, "Your subscription has expired. Please renew to continue using the platform.", d.Message)

	d = Classify(testNow, account("sub_1", "active", timePtr(testNow.Add(time.Second)), false))
	assert.True(t, d.Allowed)
	assert.Equal(t, ReasonActive, d.Reason)
	assert.Empty(t, d.Message)
}

func TestClassifyActiveMissingPeriodFailsClosed(t *testing.T) {
	d := Classify(testNow, account("sub_1", "active", nil, false))
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonInvalidPeriod, d.Reason)
}

func TestClassifyScheduledCancellationStillAllows(t *testing.T) {
	end := testNow.Add(10 * 24 * time.Hour)
	d := Classify(testNow, account("sub_1", "active", &end, true))
	assert.True(t, d.Allowed)
	assert.Equal(t, ReasonScheduledCancellation, d.Reason)
	assert.Contains(t, d.Message, "canceled at the end of the current billing period")
	require.NotNil(t, d.RelevantDate)
	assert.Equal(t, end, *d.RelevantDate)
}

func TestClassifyPastDueGraceBoundary(t *testing.T) {
	// 8 days past period end: the 7-day grace window is over.
	d := Classify(testNow, account("sub_1", "past_due", timePtr(testNow.Add(-8*24*time.Hour)), false))
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonPastDue, d.Reason)
	assert.Equal(t, "Your payment failed and the grace period has ended. Please update your payment method to continue using the platform.", d.Message)

	// 6 days past: still in grace, one day left.
	d = Classify(testNow, account("sub_1", "past_due", timePtr(testNow.Add(-6*24*time.Hour)), false))
	assert.True(t, d.Allowed)
	assert.Equal(t, ReasonPastDueGracePeriod, d.Reason)
	assert.Contains(t, d.Message, "within 1 days")
}

func TestClassifyPastDueWithinPaidPeriod(t *testing.T) {
	end := testNow.Add(3 * 24 * time.Hour)
	d := Classify(testNow, account("sub_1", "past_due", &end, false))
	assert.True(t, d.Allowed)
	assert.Equal(t, ReasonPastDueGracePeriod, d.Reason)
	assert.Contains(t, d.Message, "You have access until")
	require.NotNil(t, d.RelevantDate)
	assert.Equal(t, end, *d.RelevantDate)
}

func TestClassifyPastDueWithoutPeriodEndAnchorsAtNow(t *testing.T) {
	d := Classify(testNow, account("sub_1", "past_due", nil, false))
	assert.True(t, d.Allowed)
	assert.Equal(t, ReasonPastDueGracePeriod, d.Reason)
	require.NotNil(t, d.RelevantDate)
	assert.Equal(t, testNow.Add(GracePeriodDays*24*time.Hour), *d.RelevantDate)
}

func TestClassifyTrialingAllowsWithoutMessaging(t *testing.T) {
	d := Classify(testNow, account("sub_1", "trialing", timePtr(testNow.Add(24*time.Hour)), false))
	assert.True(t, d.Allowed)
	assert.Equal(t, ReasonNone, d.Reason)
	assert.Empty(t, d.Message)
}

func TestClassifyTerminalStatuses(t *testing.T) {
	cases := []struct {
		status  string
		reason  Reason
		message string
	}{
		{"canceled", ReasonCanceled, "Your subscription has been canceled. Please resubscribe to continue using the platform."},
		{"unpaid", ReasonUnpaid, "Your subscription payment is overdue. Please update your payment method to continue using the platform."},
		{"incomplete", ReasonIncomplete, "Your subscription setup is incomplete. Please complete your subscription to continue using the platform."},
		{"incomplete_expired", ReasonIncompleteExpired, "Your subscription setup expired. Please create a new subscription to continue using the platform."},
	}
	for _, tc := range cases {
		d := Classify(testNow, account("sub_1", tc.status, nil, false))
		assert.False(t, d.Allowed, tc.status)
		assert.Equal(t, tc.reason, d.Reason, tc.status)
		assert.Equal(t, tc.message, d.Message, tc.status)
	}
}

func TestClassifyUnrecognizedStatusFailsClosed(t *testing.T) {
	d := Classify(testNow, account("sub_1", "paused", nil, false))
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonInvalidStatus, d.Reason)

	d = Classify(testNow, account("sub_1", "", nil, false))
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonInvalidStatus, d.Reason)
}

func TestClassifyIsPure(t *testing.T) {
	acct := account("sub_1", "past_due", timePtr(testNow.Add(-2*24*time.Hour)), false)
	first := Classify(testNow, acct)
	second := Classify(testNow, acct)
	assert.Equal(t, first, second)
}
