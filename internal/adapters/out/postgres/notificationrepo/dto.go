// Package notificationrepo persists notifications, the outbox written together
// with every order transition.
package notificationrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO represents the database structure of a notification.
type NotificationDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	Type        string     `gorm:"type:varchar(32);not null"`
	Message     string     `gorm:"type:text;not null"`
	TriggeredBy uuid.UUID  `gorm:"type:uuid;not null"`
	OrderID     *uuid.UUID `gorm:"type:uuid"`
	IsRead      bool       `gorm:"not null"`
	CreatedAt   time.Time  `gorm:"not null;autoCreateTime:false"`
	DeliveredAt *time.Time
}

// TableName specifies the database table name for notifications.
func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(n *notification.Notification) NotificationDTO {
	s := n.Snapshot()

	var orderID *uuid.UUID
	if s.OrderID != nil {
		raw := s.OrderID.Bytes()
		orderID = &raw
	}

	return NotificationDTO{
		ID:          s.ID.Bytes(),
		UserID:      s.UserID.Bytes(),
		Type:        s.Type.String(),
		Message:     s.Message,
		TriggeredBy: s.TriggeredBy.Bytes(),
		OrderID:     orderID,
		IsRead:      s.IsRead,
		CreatedAt:   s.CreatedAt,
		DeliveredAt: s.DeliveredAt,
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	triggeredBy, err := kernel.UUIDFromBytes(dto.TriggeredBy[:])
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if dto.OrderID != nil {
		oID, orderErr := kernel.UUIDFromBytes((*dto.OrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}
		orderID = &oID
	}

	typ, err := notification.ParseType(dto.Type)
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(notification.Snapshot{
		ID:          id,
		UserID:      userID,
		Type:        typ,
		Message:     dto.Message,
		TriggeredBy: triggeredBy,
		OrderID:     orderID,
		IsRead:      dto.IsRead,
		CreatedAt:   dto.CreatedAt,
		DeliveredAt: dto.DeliveredAt,
	})
}
