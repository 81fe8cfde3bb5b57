package services

import (
	"fmt"

	"ordering/internal/core/domain/model/actor"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
)

// Authorize checks that the actor may perform action on o: the role must allow
// the action and a customer must own the order.
func Authorize(o *order.Order, a actor.Actor, action order.Action) error {
	if err := a.Validate(); err != nil {
		return err
	}

	if !action.AllowedFor(a.Role()) {
		return errs.NewForbiddenError(a.ID(), fmt.Sprintf("%s may not %s", a.Role(), action))
	}

	if a.Role() == actor.Customer && !o.IsOwnedBy(a.ID()) {
		return errs.NewForbiddenError(a.ID(), "order belongs to another customer")
	}

	return nil
}
