package access

import (
	"fmt"
	"time"
)

// Fixed user-facing messages. The frontend renders these verbatim, so the
// literals must not drift.
const (
	msgNoStripeConnection = "You can use the platform until you connect your Stripe payment. Please connect Stripe to continue after your first connection."
	msgInvalidStatus      = "Subscription status is invalid. Please contact support for assistance."
	msgInvalidPeriod      = "Subscription period information is missing. Please contact support."
	msgExpired            = "Your subscription has expired. Please renew to continue using the platform."
	msgPastDueGraceOver   = "Your payment failed and the grace period has ended. Please update your payment method to continue using the platform."
	msgCanceled           = "Your subscription has been canceled. Please resubscribe to continue using the platform."
	msgUnpaid             = "Your subscription payment is overdue. Please update your payment method to continue using the platform."
	msgIncomplete         = "Your subscription setup is incomplete. Please complete your subscription to continue using the platform."
	msgIncompleteExpired  = "Your subscription setup expired. Please create a new subscription to continue using the platform."

	msgClientNotFound  = "Client record not found. Please contact support for assistance."
	msgNoCoachAssigned = "No coach assigned. Please contact support for assistance."
	msgCoachInactive   = "Your coach's subscription is inactive. Access is temporarily unavailable. Please contact your coach or support for assistance."

	msgVerifySubscriptionFailed = "Unable to verify subscription status. Please contact support for assistance."
	msgVerifyAccessFailed       = "Unable to verify access. Please contact support for assistance."
)

const messageDateLayout = "January 2, 2006"

func msgScheduledCancellation(periodEnd time.Time) string {
	return fmt.Sprintf("Your subscription will be canceled at the end of the current billing period (%s).", periodEnd.Format(messageDateLayout))
}

func msgPastDueNoPeriod(graceDays int) string {
	return fmt.Sprintf("Your payment failed. Please update your payment method within %d days to avoid service interruption.", graceDays)
}

func msgPastDueWithinPeriod(periodEnd time.Time) string {
	return fmt.Sprintf("Your payment failed. Please update your payment method. You have access until %s.", periodEnd.Format(messageDateLayout))
}

func msgPastDueInGrace(daysLeft int) string {
	return fmt.Sprintf("Your payment failed and your subscription period has ended. Please update your payment method within %d days to avoid service interruption.", daysLeft)
}
