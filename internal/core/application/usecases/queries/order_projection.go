// Package queries contains read operations of the ordering service.
package queries

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// ItemView is one order line as shown to callers.
type ItemView struct {
	ProductName string
	Quantity    int
	Note        string
}

// OrderProjection is the caller-visible state of an order. Negotiation commands
// return it after a successful transition and GetOrder reads it from storage.
type OrderProjection struct {
	ID           kernel.UUID
	Number       string
	CustomerID   kernel.UUID
	OperatorID   *kernel.UUID
	Status       order.Status
	Desired      kernel.DeliveryWindow
	Suggested    *kernel.DeliveryWindow
	Final        *kernel.DeliveryWindow
	IsLocked     bool
	AddressID    *kernel.UUID
	Store        string
	Instructions string
	Items        []ItemView
	Version      int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewOrderProjection projects an order aggregate.
func NewOrderProjection(o *order.Order) OrderProjection {
	details := o.Details()
	items := make([]ItemView, 0, len(details.Items))
	for _, item := range details.Items {
		items = append(items, ItemView{
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			Note:        item.Note(),
		})
	}

	return OrderProjection{
		ID:           o.ID(),
		Number:       o.Number(),
		CustomerID:   o.CustomerID(),
		OperatorID:   o.OperatorID(),
		Status:       o.Status(),
		Desired:      o.DesiredWindow(),
		Suggested:    o.SuggestedWindow(),
		Final:        o.FinalWindow(),
		IsLocked:     o.IsLocked(),
		AddressID:    details.AddressID,
		Store:        details.Store,
		Instructions: details.Instructions,
		Items:        items,
		Version:      o.Version(),
		CreatedAt:    o.CreatedAt(),
		UpdatedAt:    o.UpdatedAt(),
	}
}
