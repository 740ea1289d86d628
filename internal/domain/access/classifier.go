package access

import (
	"math"
	"time"

	"coaching-app/internal/domain/billing"
	stripeinfra "coaching-app/internal/infra/stripe"
)

// GracePeriodDays is how long a past_due coach keeps access after the paid
// period ends.
const GracePeriodDays = 7

// Classify turns a coach's billing snapshot into an access decision. Pure:
// no I/O, no clock reads; `now` is the evaluation instant. Rules are
// priority-ordered and every branch is explicit. When state cannot be
// verified the result is a denial, never an allowance.
func Classify(now time.Time, acct *billing.StripeAccount) Decision {
	// No subscription connected yet: first-time coaches may use the
	// platform before completing billing setup.
	if !acct.HasSubscription() {
		return allow(ReasonNoStripeConnection, msgNoStripeConnection, nil)
	}

	periodEnd := acct.CurrentPeriodEnd

	switch stripeinfra.ParseSubscriptionStatus(acct.SubscriptionStatus) {
	case stripeinfra.StatusActive:
		// An active subscription must have a period end; its absence is
		// a data anomaly and denies access.
		if periodEnd == nil {
			return deny(ReasonInvalidPeriod, msgInvalidPeriod, nil)
		}
		if periodEnd.Before(now) {
			return deny(ReasonExpired, msgExpired, periodEnd)
		}
		if acct.CancelAtPeriodEnd {
			// Informational only: they paid for this period, access is
			// not reduced before it actually ends.
			return allow(ReasonScheduledCancellation, msgScheduledCancellation(*periodEnd), periodEnd)
		}
		return allow(ReasonActive, "", periodEnd)

	case stripeinfra.StatusTrialing:
		return allow(ReasonNone, "", periodEnd)

	case stripeinfra.StatusPastDue:
		return classifyPastDue(now, periodEnd)

	case stripeinfra.StatusCanceled:
		return deny(ReasonCanceled, msgCanceled, periodEnd)
	case stripeinfra.StatusUnpaid:
		return deny(ReasonUnpaid, msgUnpaid, periodEnd)
	case stripeinfra.StatusIncomplete:
		return deny(ReasonIncomplete, msgIncomplete, periodEnd)
	case stripeinfra.StatusIncompleteExpired:
		return deny(ReasonIncompleteExpired, msgIncompleteExpired, periodEnd)

	default:
		// StatusNone or a status we have never seen.
		return deny(ReasonInvalidStatus, msgInvalidStatus, periodEnd)
	}
}

func classifyPastDue(now time.Time, periodEnd *time.Time) Decision {
	grace := GracePeriodDays * 24 * time.Hour

	// No period end recorded: anchor the grace window at now. Note this
	// grants a fresh window on every evaluation; see DESIGN.md.
	if periodEnd == nil {
		graceEnd := now.Add(grace)
		return allow(ReasonPastDueGracePeriod, msgPastDueNoPeriod(GracePeriodDays), &graceEnd)
	}

	// Still inside the paid period: they paid for this window.
	if now.Before(*periodEnd) {
		return allow(ReasonPastDueGracePeriod, msgPastDueWithinPeriod(*periodEnd), periodEnd)
	}

	graceEnd := periodEnd.Add(grace)
	if now.Before(graceEnd) {
		daysLeft := int(math.Ceil(graceEnd.Sub(now).Hours() / 24))
		return allow(ReasonPastDueGracePeriod, msgPastDueInGrace(daysLeft), &graceEnd)
	}

	return deny(ReasonPastDue, msgPastDueGraceOver, &graceEnd)
}
