package access

import "net/url"

// Page is the fixed denial-page content for a reason code. The frontend
// maps Reason to title/icon and falls back to the decision message for
// body text when the reason is unrecognized.
type Page struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	// Billing pages offer a direct link to the billing management screen
	// alongside "go back" and "contact support".
	Billing bool `json:"billing"`
}

// DenialRedirect builds the redirect target for a denied decision:
// coach denials land on the subscription error page, client denials on
// the access denied page. Empty string for allowed decisions.
func DenialRedirect(d Decision) string {
	if d.Allowed {
		return ""
	}

	v := url.Values{}
	v.Set("reason", string(d.Reason))
	if d.Message != "" {
		v.Set("message", d.Message)
	}

	path := "/subscription-error"
	switch d.Reason {
	case ReasonCoachSubscriptionInactive, ReasonNoCoachAssigned, ReasonClientNotFound:
		path = "/access-denied"
	}
	return path + "?" + v.Encode()
}

func PageInfo(r Reason) Page {
	switch r {
	case ReasonExpired:
		return Page{Title: "Subscription Expired", Description: msgExpired, Billing: true}
	case ReasonCanceled:
		return Page{Title: "Subscription Canceled", Description: msgCanceled, Billing: true}
	case ReasonPastDue:
		return Page{Title: "Payment Failed", Description: msgPastDueGraceOver, Billing: true}
	case ReasonUnpaid:
		return Page{Title: "Payment Overdue", Description: msgUnpaid, Billing: true}
	case ReasonIncomplete:
		return Page{Title: "Subscription Incomplete", Description: msgIncomplete, Billing: true}
	case ReasonIncompleteExpired:
		return Page{Title: "Subscription Setup Expired", Description: msgIncompleteExpired, Billing: true}
	case ReasonInvalidStatus, ReasonInvalidPeriod:
		return Page{Title: "Subscription Issue", Description: msgInvalidStatus, Billing: true}
	case ReasonCoachSubscriptionInactive:
		return Page{Title: "Access Temporarily Unavailable", Description: "Your coach's subscription is currently inactive. This may be due to an expired subscription, payment issue, or cancellation."}
	case ReasonNoCoachAssigned:
		return Page{Title: "No Coach Assigned", Description: "You don't have a coach assigned to your account. Please contact support for assistance."}
	case ReasonClientNotFound:
		return Page{Title: "Account Issue", Description: "There was an issue verifying your account. Please contact support."}
	case ReasonError:
		return Page{Title: "Verification Error", Description: "Unable to verify your access. Please contact support for assistance."}
	default:
		return Page{Title: "Access Denied", Description: "Your access to the platform is currently restricted. Please contact support for assistance."}
	}
}
