package access

import "time"

// Reason is the stable code attached to every access decision. It drives
// both route-guard branching and the denial page rendering, so values must
// stay in sync with the frontend.
type Reason string

const (
	ReasonNone Reason = ""

	// Coach-side reasons.
	ReasonNoStripeConnection    Reason = "no_stripe_connection"
	ReasonActive                Reason = "active"
	ReasonScheduledCancellation Reason = "scheduled_cancellation"
	ReasonPastDueGracePeriod    Reason = "past_due_grace_period"
	ReasonPastDue               Reason = "past_due"
	ReasonExpired               Reason = "expired"
	ReasonCanceled              Reason = "canceled"
	ReasonUnpaid                Reason = "unpaid"
	ReasonIncomplete            Reason = "incomplete"
	ReasonIncompleteExpired     Reason = "incomplete_expired"
	ReasonInvalidStatus         Reason = "invalid_status"
	ReasonInvalidPeriod         Reason = "invalid_period"

	// Client-side reasons.
	ReasonClientNotFound            Reason = "client_not_found"
	ReasonNoCoachAssigned           Reason = "no_coach_assigned"
	ReasonCoachSubscriptionInactive Reason = "coach_subscription_inactive"

	// Any unexpected failure while verifying state. Always a denial.
	ReasonError Reason = "error"
)

// Decision is the value object the engine produces. It is never persisted;
// every check re-reads current state.
type Decision struct {
	Allowed bool   `json:"allowed"`
	Reason  Reason `json:"reason,omitempty"`
	Message string `json:"message,omitempty"`

	// RelevantDate is display-only: the period end or grace-period end
	// the message refers to.
	RelevantDate *time.Time `json:"relevant_date,omitempty"`

	// CoachReason carries the coach's underlying denial reason on the
	// client path. The client-facing Reason stays generic so coach
	// billing details never leak to clients.
	CoachReason Reason `json:"coach_subscription_reason,omitempty"`
}

func allow(reason Reason, message string, relevantDate *time.Time) Decision {
	return Decision{Allowed: true, Reason: reason, Message: message, RelevantDate: relevantDate}
}

func deny(reason Reason, message string, relevantDate *time.Time) Decision {
	return Decision{Allowed: false, Reason: reason, Message: message, RelevantDate: relevantDate}
}
