package queries

import (
	"context"
	"strings"

	"ordering/internal/core/domain/model/actor"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler returns order projections without items; GetOrder
// serves the full order.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderProjection, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		conditions []string
		args       []any
	)

	if a := query.Actor(); a.Role() == actor.Customer {
		conditions = append(conditions, "customer_id = ?")
		args = append(args, a.ID().Bytes())
	}
	if status := query.Status(); status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, status.String())
	}

	sql := `SELECT ` + orderColumns + ` FROM orders`
	if len(conditions) > 0 {
		sql += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	sql += ` ORDER BY created_at DESC, id LIMIT ? OFFSET ?`
	args = append(args, query.Limit(), query.Offset())

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderProjection, 0)
	for rows.Next() {
		projection, scanErr := scanOrder(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, projection)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
