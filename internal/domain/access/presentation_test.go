package access

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDenialRedirectForCoachReasons(t *testing.T) {
	d := deny(ReasonExpired, msgExpired, nil)
	target := DenialRedirect(d)
	assert.True(t, strings.HasPrefix(target, "/subscription-error?"))

	u, err := url.Parse(target)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "expired", q.Get("reason"))
	assert.Equal(t, msgExpired, q.Get("message"))
}

func TestDenialRedirectForClientReasons(t *testing.T) {
	d := deny(ReasonCoachSubscriptionInactive, msgCoachInactive, nil)
	d.CoachReason = ReasonPastDue
	assert.True(t, strings.HasPrefix(DenialRedirect(d), "/access-denied?"))

	d = deny(ReasonNoCoachAssigned, msgNoCoachAssigned, nil)
	assert.True(t, strings.HasPrefix(DenialRedirect(d), "/access-denied?"))
}

func TestDenialRedirectEmptyWhenAllowed(t *testing.T) {
	assert.Empty(t, DenialRedirect(Decision{Allowed: true}))
}

func TestPageInfoCoversEveryDenialReason(t *testing.T) {
	reasons := []Reason{
		ReasonExpired, ReasonCanceled, ReasonPastDue, ReasonUnpaid,
		ReasonIncomplete, ReasonIncompleteExpired, ReasonInvalidStatus,
		ReasonInvalidPeriod, ReasonCoachSubscriptionInactive,
		ReasonNoCoachAssigned, ReasonClientNotFound, ReasonError,
	}
	for _, r := range reasons {
		p := PageInfo(r)
		assert.NotEmpty(t, p.Title, string(r))
		assert.NotEmpty(t, p.Description, string(r))
	}

	// Unrecognized reasons fall back to a generic page.
	p := PageInfo(Reason("something_new"))
	assert.Equal(t, "Access Denied", p.Title)
}

func TestBillingReasonsLinkToBillingScreen(t *testing.T) {
	assert.True(t, PageInfo(ReasonExpired).Billing)
	assert.True(t, PageInfo(ReasonPastDue).Billing)
	assert.False(t, PageInfo(ReasonNoCoachAssigned).Billing)
	assert.False(t, PageInfo(ReasonCoachSubscriptionInactive).Billing)
}
