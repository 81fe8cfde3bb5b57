package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"ordering/internal/core/domain/model/actor"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const orderColumns = `
	id,
	number,
	customer_id,
	operator_id,
	status,
	desired_date,
	desired_slot,
	suggested_date,
	suggested_slot,
	final_date,
	final_slot,
	is_locked,
	address_id,
	store,
	instructions,
	version,
	created_at,
	updated_at`

// GetOrderQueryHandler reads an order projection straight from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError for an unknown order and
// errs.ForbiddenError when a customer asks for someone else's order.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderProjection, error) {
	if err := query.Validate(); err != nil {
		return OrderProjection{}, err
	}

	db := h.db.WithContext(ctx)
	row := db.Raw(`SELECT `+orderColumns+` FROM orders WHERE id = ?`, query.OrderID().Bytes()).Row()

	projection, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderProjection{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	if err != nil {
		return OrderProjection{}, err
	}

	a := query.Actor()
	if a.Role() == actor.Customer && projection.CustomerID != a.ID() {
		return OrderProjection{}, errs.NewForbiddenError(a.ID(), "order belongs to another customer")
	}

	items, err := loadItems(db, projection.ID)
	if err != nil {
		return OrderProjection{}, err
	}
	projection.Items = items

	return projection, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (OrderProjection, error) {
	var (
		p                        OrderProjection
		id, customerID           uuid.UUID
		operatorID, addressID    uuid.NullUUID
		status, desiredSlot      string
		desiredDate              time.Time
		suggestedDate, finalDate sql.NullTime
		suggestedSlot, finalSlot sql.NullString
	)

	err := row.Scan(
		&id,
		&p.Number,
		&customerID,
		&operatorID,
		&status,
		&desiredDate,
		&desiredSlot,
		&suggestedDate,
		&suggestedSlot,
		&finalDate,
		&finalSlot,
		&p.IsLocked,
		&addressID,
		&p.Store,
		&p.Instructions,
		&p.Version,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return OrderProjection{}, err
	}

	var idErr, customerErr, operatorErr, addressErr, statusErr, desiredErr, suggestedErr, finalErr error
	p.ID, idErr = kernel.UUIDFromBytes(id[:])
	p.CustomerID, customerErr = kernel.UUIDFromBytes(customerID[:])
	p.OperatorID, operatorErr = nullableID(operatorID)
	p.AddressID, addressErr = nullableID(addressID)
	p.Status, statusErr = order.ParseStatus(status)
	p.Desired, desiredErr = windowFrom(desiredDate, desiredSlot)
	p.Suggested, suggestedErr = nullableWindow(suggestedDate, suggestedSlot)
	p.Final, finalErr = nullableWindow(finalDate, finalSlot)

	if err = errors.Join(
		idErr, customerErr, operatorErr, addressErr, statusErr, desiredErr, suggestedErr, finalErr,
	); err != nil {
		return OrderProjection{}, err
	}

	return p, nil
}

func loadItems(db *gorm.DB, orderID kernel.UUID) ([]ItemView, error) {
	rows, err := db.Raw(`
		SELECT
			product_name,
			quantity,
			note
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]ItemView, 0)
	for rows.Next() {
		var item ItemView
		if err = rows.Scan(&item.ProductName, &item.Quantity, &item.Note); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func nullableID(id uuid.NullUUID) (*kernel.UUID, error) {
	if !id.Valid {
		return nil, nil
	}

	v, err := kernel.UUIDFromBytes(id.UUID[:])
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func windowFrom(date time.Time, slot string) (kernel.DeliveryWindow, error) {
	d, err := kernel.DeliveryDateFromTime(date)
	if err != nil {
		return kernel.DeliveryWindow{}, err
	}

	s, err := kernel.ParseTimeSlot(slot)
	if err != nil {
		return kernel.DeliveryWindow{}, err
	}

	return kernel.NewDeliveryWindow(d, s)
}

func nullableWindow(date sql.NullTime, slot sql.NullString) (*kernel.DeliveryWindow, error) {
	if !date.Valid || !slot.Valid {
		return nil, nil
	}

	w, err := windowFrom(date.Time, slot.String)
	if err != nil {
		return nil, err
	}
	return &w, nil
}
