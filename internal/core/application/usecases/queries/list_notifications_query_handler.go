package queries

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/notification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationView is one inbox entry.
type NotificationView struct {
	ID          kernel.UUID
	Type        notification.Type
	Message     string
	TriggeredBy kernel.UUID
	OrderID     *kernel.UUID
	IsRead      bool
	CreatedAt   time.Time
}

type ListNotificationsQueryHandler struct {
	db *gorm.DB
}

func NewListNotificationsQueryHandler(db *gorm.DB) ListNotificationsQueryHandler {
	return ListNotificationsQueryHandler{db: db}
}

func (h ListNotificationsQueryHandler) Handle(
	ctx context.Context,
	query ListNotificationsQuery,
) ([]NotificationView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			type,
			message,
			triggered_by,
			order_id,
			is_read,
			created_at
		FROM notifications
		WHERE user_id = ?`
	args := []any{query.UserID().Bytes()}
	if query.UnreadOnly() {
		sql += ` AND is_read = FALSE`
	}
	sql += ` ORDER BY created_at DESC, id LIMIT ? OFFSET ?`
	args = append(args, query.Limit(), query.Offset())

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]NotificationView, 0)
	for rows.Next() {
		var (
			view            NotificationView
			id, triggeredBy uuid.UUID
			orderID         uuid.NullUUID
			typ             string
		)

		if err = rows.Scan(&id, &typ, &view.Message, &triggeredBy, &orderID, &view.IsRead, &view.CreatedAt); err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.TriggeredBy, err = kernel.UUIDFromBytes(triggeredBy[:]); err != nil {
			return nil, err
		}
		if view.OrderID, err = nullableID(orderID); err != nil {
			return nil, err
		}
		if view.Type, err = notification.ParseType(typ); err != nil {
			return nil, err
		}

		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}

type CountUnreadNotificationsQueryHandler struct {
	db *gorm.DB
}

func NewCountUnreadNotificationsQueryHandler(db *gorm.DB) CountUnreadNotificationsQueryHandler {
	return CountUnreadNotificationsQueryHandler{db: db}
}

func (h CountUnreadNotificationsQueryHandler) Handle(
	ctx context.Context,
	query CountUnreadNotificationsQuery,
) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := h.db.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM notifications WHERE user_id = ? AND is_read = FALSE`, query.UserID().Bytes()).
		Scan(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
