package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// new and processing are working states before any negotiation,
// pending_customer_review and pending_admin_review hold a pending suggestion,
// date_accepted and date_forced carry the final window, completed and cancelled
// are terminal.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	New
	Processing
	PendingAdminReview
	PendingCustomerReview
	DateAccepted
	DateForced
	Completed
	Cancelled
)

var statusNames = map[Status]string{
	New:                   "new",
	Processing:            "processing",
	PendingAdminReview:    "pending_admin_review",
	PendingCustomerReview: "pending_customer_review",
	DateAccepted:          "date_accepted",
	DateForced:            "date_forced",
	Completed:             "completed",
	Cancelled:             "cancelled",
}

// Statuses lists every valid status.
func Statuses() []Status {
	return []Status{
		New, Processing, PendingAdminReview, PendingCustomerReview,
		DateAccepted, DateForced, Completed, Cancelled,
	}
}

// ParseStatus maps the wire name onto a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name, or "unknown" for invalid values.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// IsReview reports whether a suggestion is pending in this status.
func (s Status) IsReview() bool {
	return s == PendingAdminReview || s == PendingCustomerReview
}

// HasFinalWindow reports whether an order in this status may carry a final window.
func (s Status) HasFinalWindow() bool {
	switch s {
	case DateAccepted, DateForced, Completed, Cancelled:
		return true
	case Unknown, New, Processing, PendingAdminReview, PendingCustomerReview:
		return false
	}
	return false
}

// Next returns the status reached by applying action, or an InvalidTransitionError
// when the action is illegal from s. Lock, Unlock and EditItems keep the status.
func (s Status) Next(action Action) (Status, error) {
	if s.IsTerminal() || s.Validate() != nil {
		return Unknown, errs.NewInvalidTransitionError(s, action)
	}

	next := Unknown
	switch action {
	case StartProcessing:
		if s == New {
			next = Processing
		}
	case ProposeDate:
		if s == New || s == Processing || s == PendingCustomerReview {
			next = PendingCustomerReview
		}
	case CounterPropose:
		if s == PendingCustomerReview || s == PendingAdminReview {
			next = PendingAdminReview
		}
	case AcceptSuggestion:
		if s == PendingCustomerReview {
			next = DateAccepted
		}
	case AcceptCounter:
		if s == PendingAdminReview {
			next = DateAccepted
		}
	case ForceDate:
		next = DateForced
	case Lock, Unlock, EditItems:
		next = s
	case Cancel:
		next = Cancelled
	case MarkFulfilled:
		if s == DateAccepted || s == DateForced {
			next = Completed
		}
	case UnknownAction:
	}

	if next == Unknown {
		return Unknown, errs.NewInvalidTransitionError(s, action)
	}
	return next, nil
}
