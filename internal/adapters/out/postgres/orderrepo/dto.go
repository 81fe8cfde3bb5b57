// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Delivery windows are stored as date + slot column pairs.
type OrderDTO struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Number        string         `gorm:"type:varchar(32);not null;uniqueIndex"`
	CustomerID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	OperatorID    *uuid.UUID     `gorm:"type:uuid"`
	Status        string         `gorm:"type:varchar(32);not null;index"`
	DesiredDate   time.Time      `gorm:"type:date;not null"`
	DesiredSlot   string         `gorm:"type:varchar(16);not null"`
	SuggestedDate *time.Time     `gorm:"type:date"`
	SuggestedSlot *string        `gorm:"type:varchar(16)"`
	FinalDate     *time.Time     `gorm:"type:date"`
	FinalSlot     *string        `gorm:"type:varchar(16)"`
	IsLocked      bool           `gorm:"not null"`
	AddressID     *uuid.UUID     `gorm:"type:uuid"`
	Store         string         `gorm:"type:varchar(255);not null"`
	Instructions  string         `gorm:"type:text;not null"`
	Version       int64          `gorm:"not null"`
	CreatedAt     time.Time      `gorm:"not null;autoCreateTime:false"`
	UpdatedAt     time.Time      `gorm:"not null;autoUpdateTime:false"`
	Items         []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one order line; position keeps the order of lines stable.
type OrderItemDTO struct {
	OrderID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position    int       `gorm:"primaryKey"`
	ProductName string    `gorm:"type:varchar(255);not null"`
	Quantity    int       `gorm:"not null"`
	Note        string    `gorm:"type:text;not null"`
}

// TableName specifies the database table name for order lines.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// negotiationColumns are the columns a CAS update rewrites. Items are replaced
// separately.
func (d OrderDTO) negotiationColumns() map[string]any {
	return map[string]any{
		"operator_id":    d.OperatorID,
		"status":         d.Status,
		"suggested_date": d.SuggestedDate,
		"suggested_slot": d.SuggestedSlot,
		"final_date":     d.FinalDate,
		"final_slot":     d.FinalSlot,
		"is_locked":      d.IsLocked,
		"address_id":     d.AddressID,
		"store":          d.Store,
		"instructions":   d.Instructions,
		"version":        d.Version,
		"updated_at":     d.UpdatedAt,
	}
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	s := aggregate.Snapshot()
	id := s.ID.Bytes()

	items := make([]OrderItemDTO, 0, len(s.Details.Items))
	for i, item := range s.Details.Items {
		items = append(items, OrderItemDTO{
			OrderID:     id,
			Position:    i + 1,
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			Note:        item.Note(),
		})
	}

	suggestedDate, suggestedSlot := windowColumns(s.Suggested)
	finalDate, finalSlot := windowColumns(s.Final)

	return OrderDTO{
		ID:            id,
		Number:        s.Number,
		CustomerID:    s.CustomerID.Bytes(),
		OperatorID:    idColumn(s.OperatorID),
		Status:        s.Status.String(),
		DesiredDate:   s.Desired.Date().Time(),
		DesiredSlot:   s.Desired.Slot().String(),
		SuggestedDate: suggestedDate,
		SuggestedSlot: suggestedSlot,
		FinalDate:     finalDate,
		FinalSlot:     finalSlot,
		IsLocked:      s.Locked,
		AddressID:     idColumn(s.Details.AddressID),
		Store:         s.Details.Store,
		Instructions:  s.Details.Instructions,
		Version:       s.Version,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
		Items:         items,
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	operatorID, err := idFromColumn(dto.OperatorID)
	if err != nil {
		return nil, err
	}

	addressID, err := idFromColumn(dto.AddressID)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	desired, err := windowFromColumns(&dto.DesiredDate, &dto.DesiredSlot)
	if err != nil {
		return nil, err
	}

	suggested, err := windowFromColumns(dto.SuggestedDate, dto.SuggestedSlot)
	if err != nil {
		return nil, err
	}

	final, err := windowFromColumns(dto.FinalDate, dto.FinalSlot)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := order.NewItem(itemDto.ProductName, itemDto.Quantity, itemDto.Note)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.Snapshot{
		ID:         id,
		Number:     dto.Number,
		CustomerID: customerID,
		OperatorID: operatorID,
		Status:     status,
		Desired:    *desired,
		Suggested:  suggested,
		Final:      final,
		Locked:     dto.IsLocked,
		Details: order.Details{
			AddressID:    addressID,
			Store:        dto.Store,
			Instructions: dto.Instructions,
			Items:        items,
		},
		Version:   dto.Version,
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
	})
}

func windowColumns(w *kernel.DeliveryWindow) (*time.Time, *string) {
	if w == nil {
		return nil, nil
	}
	date := w.Date().Time()
	slot := w.Slot().String()
	return &date, &slot
}

func windowFromColumns(date *time.Time, slot *string) (*kernel.DeliveryWindow, error) {
	if date == nil || slot == nil {
		return nil, nil //nolint:nilnil // absent window
	}

	d, err := kernel.DeliveryDateFromTime(*date)
	if err != nil {
		return nil, err
	}

	s, err := kernel.ParseTimeSlot(*slot)
	if err != nil {
		return nil, err
	}

	w, err := kernel.NewDeliveryWindow(d, s)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func idColumn(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func idFromColumn(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil //nolint:nilnil // nullable column
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
