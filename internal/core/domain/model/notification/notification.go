// Package notification holds the inbox entries created for customers and
// operators when an order changes.
package notification

import (
	"errors"
	"strings"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification or RestoreNotification")

// Snapshot is the persisted state of a notification.
type Snapshot struct {
	ID          kernel.UUID
	UserID      kernel.UUID
	Type        Type
	Message     string
	TriggeredBy kernel.UUID
	OrderID     *kernel.UUID
	IsRead      bool
	CreatedAt   time.Time
	DeliveredAt *time.Time
}

// Notification is addressed to exactly one user. Its content is immutable; only
// the read and delivered marks change.
type Notification struct {
	id          kernel.UUID
	userID      kernel.UUID
	typ         Type
	message     string
	triggeredBy kernel.UUID
	orderID     *kernel.UUID
	isRead      bool
	createdAt   time.Time
	deliveredAt *time.Time

	isConstructed bool
}

func NewNotification(
	id kernel.UUID,
	userID kernel.UUID,
	typ Type,
	message string,
	triggeredBy kernel.UUID,
	orderID *kernel.UUID,
	createdAt time.Time,
) (*Notification, error) {
	message = strings.TrimSpace(message)

	var messageErr, orderErr error
	if message == "" {
		messageErr = errs.NewValueIsRequiredError("message")
	}
	if orderID != nil {
		orderErr = orderID.Validate()
	}

	if err := errors.Join(
		id.Validate(),
		userID.Validate(),
		typ.Validate(),
		messageErr,
		triggeredBy.Validate(),
		orderErr,
	); err != nil {
		return nil, err
	}

	return &Notification{
		id:            id,
		userID:        userID,
		typ:           typ,
		message:       message,
		triggeredBy:   triggeredBy,
		orderID:       copyID(orderID),
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

func RestoreNotification(s Snapshot) (*Notification, error) {
	n, err := NewNotification(s.ID, s.UserID, s.Type, s.Message, s.TriggeredBy, s.OrderID, s.CreatedAt)
	if err != nil {
		return nil, err
	}

	n.isRead = s.IsRead
	if s.DeliveredAt != nil {
		at := *s.DeliveredAt
		n.deliveredAt = &at
	}
	return n, nil
}

func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

func (n *Notification) ID() kernel.UUID {
	return n.id
}

// UserID is the recipient.
func (n *Notification) UserID() kernel.UUID {
	return n.userID
}

func (n *Notification) Type() Type {
	return n.typ
}

func (n *Notification) Message() string {
	return n.message
}

func (n *Notification) TriggeredBy() kernel.UUID {
	return n.triggeredBy
}

func (n *Notification) OrderID() *kernel.UUID {
	return copyID(n.orderID)
}

func (n *Notification) IsRead() bool {
	return n.isRead
}

func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// DeliveredAt is nil until a publisher accepted the notification.
func (n *Notification) DeliveredAt() *time.Time {
	if n.deliveredAt == nil {
		return nil
	}
	at := *n.deliveredAt
	return &at
}

func (n *Notification) IsDelivered() bool {
	return n.deliveredAt != nil
}

// IsAddressedTo reports whether userID is the recipient.
func (n *Notification) IsAddressedTo(userID kernel.UUID) bool {
	return n.userID.IsEqual(userID)
}

// MarkRead is idempotent; only the recipient may mark a notification read.
func (n *Notification) MarkRead(by kernel.UUID) error {
	if !n.IsAddressedTo(by) {
		return errs.NewForbiddenError(by, "notification belongs to another user")
	}
	n.isRead = true
	return nil
}

func (n *Notification) MarkDelivered(at time.Time) {
	if n.deliveredAt == nil {
		n.deliveredAt = &at
	}
}

func (n *Notification) Snapshot() Snapshot {
	return Snapshot{
		ID:          n.id,
		UserID:      n.userID,
		Type:        n.typ,
		Message:     n.message,
		TriggeredBy: n.triggeredBy,
		OrderID:     copyID(n.orderID),
		IsRead:      n.isRead,
		CreatedAt:   n.createdAt,
		DeliveredAt: n.DeliveredAt(),
	}
}

func copyID(id *kernel.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}
