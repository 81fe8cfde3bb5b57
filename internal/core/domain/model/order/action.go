package order

import (
	"fmt"

	"ordering/internal/core/domain/model/actor"
	"ordering/internal/pkg/errs"
)

// Action is something an actor asks to do to an order.
type Action int

const (
	UnknownAction Action = iota
	StartProcessing
	ProposeDate
	CounterPropose
	AcceptSuggestion
	AcceptCounter
	ForceDate
	Lock
	Unlock
	Cancel
	MarkFulfilled
	EditItems
)

var actionNames = map[Action]string{
	StartProcessing:  "start_processing",
	ProposeDate:      "propose_date",
	CounterPropose:   "counter_propose",
	AcceptSuggestion: "accept_suggestion",
	AcceptCounter:    "accept_counter",
	ForceDate:        "force_date",
	Lock:             "lock",
	Unlock:           "unlock",
	Cancel:           "cancel",
	MarkFulfilled:    "mark_fulfilled",
	EditItems:        "edit_items",
}

// Actions lists every valid action.
func Actions() []Action {
	return []Action{
		StartProcessing, ProposeDate, CounterPropose, AcceptSuggestion, AcceptCounter,
		ForceDate, Lock, Unlock, Cancel, MarkFulfilled, EditItems,
	}
}

func ParseAction(s string) (Action, error) {
	for a, name := range actionNames {
		if name == s {
			return a, nil
		}
	}
	return UnknownAction, errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%q is not a known action", s))
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

func (a Action) Validate() error {
	if _, ok := actionNames[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%d is not a valid action", a))
	}
	return nil
}

// AllowedFor reports whether the role may perform the action at all. Ownership of
// the order is checked separately.
func (a Action) AllowedFor(role actor.Role) bool {
	switch a {
	case CounterPropose, AcceptSuggestion:
		return role == actor.Customer
	case StartProcessing, ProposeDate, AcceptCounter, ForceDate, Lock, Unlock, MarkFulfilled:
		return role == actor.Operator
	case Cancel, EditItems:
		return role == actor.Customer || role == actor.Operator
	case UnknownAction:
		return false
	}
	return false
}

// RequiresWindow reports whether the action carries a delivery window payload.
func (a Action) RequiresWindow() bool {
	return a == ProposeDate || a == CounterPropose || a == ForceDate
}
