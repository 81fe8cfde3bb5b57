package queries

import (
	"errors"

	"ordering/internal/core/domain/model/actor"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery pages through orders, newest first. Operators see every order,
// customers only their own. An optional status narrows the list, e.g. to the
// orders waiting for an operator in pending_admin_review.
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	actor  actor.Actor
	status *order.Status
	limit  int
	offset int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery validates paging; a zero limit means DefaultPageSize.
func NewListOrdersQuery(a actor.Actor, status *order.Status, limit, offset int) (ListOrdersQuery, error) {
	limit, offset, pageErr := page(limit, offset)

	var statusErr error
	if status != nil {
		statusErr = status.Validate()
	}

	if err := errors.Join(a.Validate(), statusErr, pageErr); err != nil {
		return ListOrdersQuery{}, err
	}

	q := ListOrdersQuery{
		actor:  a,
		limit:  limit,
		offset: offset,
		guard:  guard.NewConstructorGuard(),
	}
	if status != nil {
		s := *status
		q.status = &s
	}
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Actor() actor.Actor {
	return q.actor
}

func (q ListOrdersQuery) Status() *order.Status {
	if q.status == nil {
		return nil
	}
	s := *q.status
	return &s
}

func (q ListOrdersQuery) Limit() int {
	return q.limit
}

func (q ListOrdersQuery) Offset() int {
	return q.offset
}

func page(limit, offset int) (int, int, error) {
	if limit == 0 {
		limit = DefaultPageSize
	}

	var limitErr, offsetErr error
	if limit < 1 || limit > MaxPageSize {
		limitErr = errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxPageSize)
	}
	if offset < 0 {
		offsetErr = errs.NewValueIsOutOfRangeError("offset", offset, 0, "unbounded")
	}
	return limit, offset, errors.Join(limitErr, offsetErr)
}
