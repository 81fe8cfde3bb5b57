package http

import (
	"errors"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func fromID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func fromWindow(w servers.DeliveryWindow) (kernel.DeliveryWindow, error) {
	date, dateErr := kernel.DeliveryDateFromTime(w.Date.Time)
	slot, slotErr := kernel.ParseTimeSlot(string(w.Slot))
	if err := errors.Join(dateErr, slotErr); err != nil {
		return kernel.DeliveryWindow{}, err
	}
	return kernel.NewDeliveryWindow(date, slot)
}

func fromItems(items []servers.OrderItem) []commands.ItemInput {
	inputs := make([]commands.ItemInput, 0, len(items))
	for _, item := range items {
		inputs = append(inputs, commands.ItemInput{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Note:        deref(item.Note),
		})
	}
	return inputs
}

func toWindow(w kernel.DeliveryWindow) servers.DeliveryWindow {
	return servers.DeliveryWindow{
		Date: openapi_types.Date{Time: w.Date().Time()},
		Slot: servers.TimeSlot(w.Slot().String()),
	}
}

func toOptionalWindow(w *kernel.DeliveryWindow) *servers.DeliveryWindow {
	if w == nil {
		return nil
	}
	dto := toWindow(*w)
	return &dto
}

func toOptionalID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	b := id.Bytes()
	return &b
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toOrder(p queries.OrderProjection) servers.Order {
	items := make([]servers.OrderItem, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, servers.OrderItem{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Note:        optionalString(item.Note),
		})
	}

	return servers.Order{
		Id:              p.ID.Bytes(),
		Number:          p.Number,
		CustomerId:      p.CustomerID.Bytes(),
		OperatorId:      toOptionalID(p.OperatorID),
		Status:          servers.OrderStatus(p.Status.String()),
		DesiredWindow:   toWindow(p.Desired),
		SuggestedWindow: toOptionalWindow(p.Suggested),
		FinalWindow:     toOptionalWindow(p.Final),
		IsLocked:        p.IsLocked,
		AddressId:       toOptionalID(p.AddressID),
		Store:           optionalString(p.Store),
		Instructions:    optionalString(p.Instructions),
		Items:           items,
		Version:         p.Version,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func toNotification(v queries.NotificationView) servers.Notification {
	return servers.Notification{
		Id:          v.ID.Bytes(),
		Type:        servers.NotificationType(v.Type.String()),
		Message:     v.Message,
		TriggeredBy: v.TriggeredBy.Bytes(),
		OrderId:     toOptionalID(v.OrderID),
		IsRead:      v.IsRead,
		CreatedAt:   v.CreatedAt,
	}
}
