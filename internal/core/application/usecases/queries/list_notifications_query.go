package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrListNotificationsQueryIsNotConstructed = errors.New(
		"ListNotificationsQuery must be created via NewListNotificationsQuery constructor",
	)
	ErrCountUnreadNotificationsQueryIsNotConstructed = errors.New(
		"CountUnreadNotificationsQuery must be created via NewCountUnreadNotificationsQuery constructor",
	)
)

// ListNotificationsQuery pages through a user's inbox, newest first.
type ListNotificationsQuery struct { //nolint:recvcheck //using for validation
	userID     kernel.UUID
	unreadOnly bool
	limit      int
	offset     int

	guard guard.ConstructorGuard
}

// NewListNotificationsQuery validates paging; a zero limit means DefaultPageSize.
func NewListNotificationsQuery(userID kernel.UUID, unreadOnly bool, limit, offset int) (ListNotificationsQuery, error) {
	limit, offset, pageErr := page(limit, offset)
	if err := errors.Join(userID.Validate(), pageErr); err != nil {
		return ListNotificationsQuery{}, err
	}

	return ListNotificationsQuery{
		userID:     userID,
		unreadOnly: unreadOnly,
		limit:      limit,
		offset:     offset,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrListNotificationsQueryIsNotConstructed)
}

func (q ListNotificationsQuery) UserID() kernel.UUID {
	return q.userID
}

func (q ListNotificationsQuery) UnreadOnly() bool {
	return q.unreadOnly
}

func (q ListNotificationsQuery) Limit() int {
	return q.limit
}

func (q ListNotificationsQuery) Offset() int {
	return q.offset
}

// CountUnreadNotificationsQuery counts a user's unread notifications.
type CountUnreadNotificationsQuery struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCountUnreadNotificationsQuery(userID kernel.UUID) (CountUnreadNotificationsQuery, error) {
	if err := userID.Validate(); err != nil {
		return CountUnreadNotificationsQuery{}, err
	}

	return CountUnreadNotificationsQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q CountUnreadNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrCountUnreadNotificationsQueryIsNotConstructed)
}

func (q CountUnreadNotificationsQuery) UserID() kernel.UUID {
	return q.userID
}
