package notification

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Type is the kind of event a notification reports.
type Type int

const (
	UnknownType Type = iota
	NewOrder
	DateChangeRequest
	// DateChange is a recognized kind that no negotiation transition emits.
	DateChange
	DateAccepted
	FinalDateSet
	OrderLocked
	OrderUnlocked
	// StatusChange reports a generic status change, e.g. a cancellation.
	StatusChange
)

var typeNames = map[Type]string{
	NewOrder:          "new_order",
	DateChangeRequest: "date_change_request",
	DateChange:        "date_change",
	DateAccepted:      "date_accepted",
	FinalDateSet:      "final_date_set",
	OrderLocked:       "order_locked",
	OrderUnlocked:     "order_unlocked",
	StatusChange:      "status_change",
}

func Types() []Type {
	return []Type{
		NewOrder, DateChangeRequest, DateChange, DateAccepted,
		FinalDateSet, OrderLocked, OrderUnlocked, StatusChange,
	}
}

func ParseType(s string) (Type, error) {
	for t, name := range typeNames {
		if name == s {
			return t, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause("notification type", fmt.Errorf("%q is not a known type", s))
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

func (t Type) Validate() error {
	if _, ok := typeNames[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("notification type", fmt.Errorf("%d is not a valid type", t))
	}
	return nil
}
