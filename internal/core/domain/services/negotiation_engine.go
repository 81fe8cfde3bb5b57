package services

import (
	"fmt"

	"ordering/internal/core/domain/model/actor"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/notification"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
)

// Request is one negotiation action by an actor. Window carries the payload of
// ProposeDate, CounterPropose and ForceDate and is ignored otherwise.
type Request struct {
	Actor  actor.Actor
	Action order.Action
	Window *kernel.DeliveryWindow
}

// Intent is a notification the engine wants emitted. A nil Recipient means "the
// operators": the caller fans the intent out to every operator it knows.
type Intent struct {
	Recipient   *kernel.UUID
	Type        notification.Type
	Message     string
	TriggeredBy kernel.UUID
}

// Decision is the outcome of a successful transition.
type Decision struct {
	// Order is the next state. It is a copy; the input order is left untouched.
	Order   *order.Order
	Intents []Intent
}

// NegotiationEngine is the delivery-date negotiation state machine.
//
// Key responsibilities:
//   - Applying exactly one transition of the (status, action) table to a copy of the order
//   - Listing exactly the notifications that transition triggers, never more and never duplicated
//
// Business rules:
//   - Re-proposing overwrites the pending suggestion and notifies again
//   - A forced date wins over any pending suggestion
//   - Accepting or forcing a date locks the order
//   - Operator-bound notifications go to the last operator who acted on the order
//
// The engine checks neither ownership nor the lock; callers run Authorize and
// LockingGuard first.
//
// Example usage:
//
//	engine := NewNegotiationEngine()
//	decision, err := engine.Decide(o, Request{Actor: operator, Action: order.ForceDate, Window: &w})
//	if errors.Is(err, errs.ErrInvalidTransition) {
//	    // action is illegal for the current status
//	}
//	// persist decision.Order, then emit decision.Intents
type NegotiationEngine struct{}

// NewNegotiationEngine creates a new NegotiationEngine instance.
func NewNegotiationEngine() NegotiationEngine {
	return NegotiationEngine{}
}

// Decide computes the transition for req.
//
// Parameters:
//   - o: The current order state (must be valid, is not modified)
//   - req: The actor, the action and its optional window payload
//
// Returns:
//   - Decision: The next order state and the notification intents
//   - error: InvalidTransitionError for an illegal action, validation errors for a malformed request
func (e NegotiationEngine) Decide(o *order.Order, req Request) (Decision, error) {
	if err := o.Validate(); err != nil {
		return Decision{}, err
	}
	if err := req.Actor.Validate(); err != nil {
		return Decision{}, err
	}
	if err := req.Action.Validate(); err != nil {
		return Decision{}, err
	}
	if req.Action.RequiresWindow() && req.Window == nil {
		return Decision{}, errs.NewValueIsRequiredError("delivery window")
	}

	next := o.Clone()
	actorID := req.Actor.ID()

	var (
		err     error
		intents []Intent
	)

	switch req.Action {
	case order.StartProcessing:
		err = next.StartProcessing(actorID)
	case order.ProposeDate:
		if err = next.ProposeDate(actorID, *req.Window); err == nil {
			intents = append(intents, toCustomer(next, actorID, notification.DateChangeRequest,
				fmt.Sprintf("Order %s: delivery on %s was suggested instead of %s. Please accept it or propose another window.",
					next.Number(), req.Window, next.DesiredWindow())))
		}
	case order.CounterPropose:
		if err = next.CounterPropose(*req.Window); err == nil {
			intents = append(intents, toOperator(next, actorID, notification.DateChangeRequest,
				fmt.Sprintf("Order %s: the customer proposed delivery on %s.", next.Number(), req.Window)))
		}
	case order.AcceptSuggestion:
		if err = next.AcceptSuggestion(); err == nil {
			intents = append(intents, toOperator(next, actorID, notification.DateAccepted,
				fmt.Sprintf("Order %s: the customer accepted delivery on %s.", next.Number(), next.FinalWindow())))
		}
	case order.AcceptCounter:
		if err = next.AcceptCounter(actorID); err == nil {
			intents = append(intents, toCustomer(next, actorID, notification.DateAccepted,
				fmt.Sprintf("Order %s: your delivery window %s was accepted.", next.Number(), next.FinalWindow())))
		}
	case order.ForceDate:
		if err = next.ForceDate(actorID, *req.Window); err == nil {
			intents = append(intents, toCustomer(next, actorID, notification.FinalDateSet,
				fmt.Sprintf("Order %s: delivery is scheduled for %s.", next.Number(), next.FinalWindow())))
		}
	case order.Lock:
		if err = next.Lock(actorID); err == nil {
			intents = append(intents, toCustomer(next, actorID, notification.OrderLocked,
				fmt.Sprintf("Order %s is locked and can no longer be changed.", next.Number())))
		}
	case order.Unlock:
		if err = next.Unlock(actorID); err == nil {
			intents = append(intents, toCustomer(next, actorID, notification.OrderUnlocked,
				fmt.Sprintf("Order %s is unlocked and can be changed again.", next.Number())))
		}
	case order.Cancel:
		if err = next.Cancel(); err == nil {
			msg := fmt.Sprintf("Order %s was cancelled.", next.Number())
			if req.Actor.IsOperator() {
				intents = append(intents, toCustomer(next, actorID, notification.StatusChange, msg))
			} else {
				intents = append(intents, toOperator(next, actorID, notification.StatusChange, msg))
			}
		}
	case order.MarkFulfilled:
		err = next.MarkFulfilled(actorID)
	case order.EditItems, order.UnknownAction:
		err = errs.NewInvalidTransitionError(o.Status(), req.Action)
	}

	if err != nil {
		return Decision{}, err
	}

	return Decision{Order: next, Intents: intents}, nil
}

// Intake lists the notifications for an order that has just been placed.
func (e NegotiationEngine) Intake(o *order.Order) []Intent {
	return []Intent{{
		Type:        notification.NewOrder,
		TriggeredBy: o.CustomerID(),
		Message: fmt.Sprintf("New order %s with %d item(s), desired delivery on %s.",
			o.Number(), len(o.Details().Items), o.DesiredWindow()),
	}}
}

func toCustomer(o *order.Order, by kernel.UUID, typ notification.Type, msg string) Intent {
	customerID := o.CustomerID()
	return Intent{Recipient: &customerID, Type: typ, Message: msg, TriggeredBy: by}
}

func toOperator(o *order.Order, by kernel.UUID, typ notification.Type, msg string) Intent {
	return Intent{Recipient: o.OperatorID(), Type: typ, Message: msg, TriggeredBy: by}
}
