package services_test

import (
	"testing"
	"time"

	"ordering/internal/core/domain/model/actor"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2024, time.May, 28, 9, 0, 0, 0, time.UTC)

func window(t *testing.T, date, slot string) kernel.DeliveryWindow {
	t.Helper()
	w, err := kernel.ParseDeliveryWindow(date, slot)
	require.NoError(t, err)
	return w
}

func newActor(t *testing.T, id kernel.UUID, role actor.Role) actor.Actor {
	t.Helper()
	a, err := actor.NewActor(id, role)
	require.NoError(t, err)
	return a
}

func newOrder(t *testing.T, customerID kernel.UUID) *order.Order {
	t.Helper()
	item, err := order.NewItem("Apples", 3, "")
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		"ORD-20240528-AAAAAA",
		customerID,
		window(t, "2024-06-01", "morning"),
		order.Details{Items: []order.Item{item}},
		createdAt,
	)
	require.NoError(t, err)
	return o
}
