package stripe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestParseSubscriptionStatus(t *testing.T) {
	assert.Equal(t, StatusNone, ParseSubscriptionStatus(nil))
	assert.Equal(t, StatusNone, ParseSubscriptionStatus(strPtr("")))
	assert.Equal(t, StatusNone, ParseSubscriptionStatus(strPtr("   ")))

	assert.Equal(t, StatusActive, ParseSubscriptionStatus(strPtr("active")))
	assert.Equal(t, StatusActive, ParseSubscriptionStatus(strPtr(" active ")))
	assert.Equal(t, StatusTrialing, ParseSubscriptionStatus(strPtr("trialing")))
	assert.Equal(t, StatusPastDue, ParseSubscriptionStatus(strPtr("past_due")))
	assert.Equal(t, StatusCanceled, ParseSubscriptionStatus(strPtr("canceled")))
	assert.Equal(t, StatusUnpaid, ParseSubscriptionStatus(strPtr("unpaid")))
	assert.Equal(t, StatusIncomplete, ParseSubscriptionStatus(strPtr("incomplete")))
	assert.Equal(t, StatusIncompleteExpired, ParseSubscriptionStatus(strPtr("incomplete_expired")))
}

func TestParseSubscriptionStatusUnknownFallsThrough(t *testing.T) {
	// A status Stripe adds tomorrow must not be treated as anything we know.
	assert.Equal(t, StatusUnknown, ParseSubscriptionStatus(strPtr("paused")))
	assert.Equal(t, StatusUnknown, ParseSubscriptionStatus(strPtr("ACTIVE")))
}
