package services

import (
	"ordering/internal/core/domain/model/actor"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
)

// LockingGuard decides whether an order may be mutated. A locked order rejects
// every change except the operator's administrative actions, which stay open so
// an operator can always correct a finalized order.
type LockingGuard struct{}

func NewLockingGuard() LockingGuard {
	return LockingGuard{}
}

// CanMutate reports whether role may apply action to o in its current lock state.
func (LockingGuard) CanMutate(o *order.Order, action order.Action, role actor.Role) bool {
	if !o.IsLocked() {
		return true
	}

	if role != actor.Operator {
		return false
	}

	switch action {
	case order.ForceDate, order.Lock, order.Unlock, order.Cancel, order.MarkFulfilled:
		return true
	case order.UnknownAction, order.StartProcessing, order.ProposeDate, order.CounterPropose,
		order.AcceptSuggestion, order.AcceptCounter, order.EditItems:
		return false
	}
	return false
}

// Check is CanMutate surfaced as an OrderLockedError.
func (g LockingGuard) Check(o *order.Order, action order.Action, role actor.Role) error {
	if g.CanMutate(o, action, role) {
		return nil
	}
	return errs.NewOrderLockedError(o.ID(), action.String())
}
