package stripe

import "strings"

// SubscriptionStatus is the closed vocabulary of billing subscription
// statuses we act on. Stripe sends these as free-form strings; anything
// we do not recognize maps to StatusUnknown so new upstream statuses
// fail closed instead of silently passing an access check.
type SubscriptionStatus string

const (
	StatusActive            SubscriptionStatus = "active"
	StatusTrialing          SubscriptionStatus = "trialing"
	StatusPastDue           SubscriptionStatus = "past_due"
	StatusCanceled          SubscriptionStatus = "canceled"
	StatusUnpaid            SubscriptionStatus = "unpaid"
	StatusIncomplete        SubscriptionStatus = "incomplete"
	StatusIncompleteExpired SubscriptionStatus = "incomplete_expired"

	// StatusNone means no status is stored at all.
	StatusNone SubscriptionStatus = "none"

	// StatusUnknown is the fallback for unrecognized strings.
	StatusUnknown SubscriptionStatus = "unknown"
)

func ParseSubscriptionStatus(s *string) SubscriptionStatus {
	if s == nil || strings.TrimSpace(*s) == "" {
		return StatusNone
	}
	switch SubscriptionStatus(strings.TrimSpace(*s)) {
	case StatusActive:
		return StatusActive
	case StatusTrialing:
		return StatusTrialing
	case StatusPastDue:
		return StatusPastDue
	case StatusCanceled:
		return StatusCanceled
	case StatusUnpaid:
		return StatusUnpaid
	case StatusIncomplete:
		return StatusIncomplete
	case StatusIncompleteExpired:
		return StatusIncompleteExpired
	default:
		return StatusUnknown
	}
}
