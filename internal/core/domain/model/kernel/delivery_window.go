package kernel

import (
	"errors"
	"fmt"

	"ordering/internal/pkg/guard"
)

var ErrDeliveryWindowIsNotConstructed = errors.New("DeliveryWindow must be created via NewDeliveryWindow or ParseDeliveryWindow")

// DeliveryWindow is a delivery date together with its time slot. Orders carry
// three of them: the customer's desired window, the pending suggestion and the
// final agreed or forced window.
type DeliveryWindow struct {
	date  DeliveryDate
	slot  TimeSlot
	guard guard.ConstructorGuard
}

func NewDeliveryWindow(date DeliveryDate, slot TimeSlot) (DeliveryWindow, error) {
	if err := errors.Join(date.Validate(), slot.Validate()); err != nil {
		return DeliveryWindow{}, err
	}

	return DeliveryWindow{
		date:  date,
		slot:  slot,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// ParseDeliveryWindow builds a window from its wire form ("2024-06-01", "morning").
func ParseDeliveryWindow(date, slot string) (DeliveryWindow, error) {
	d, dateErr := ParseDeliveryDate(date)
	s, slotErr := ParseTimeSlot(slot)
	if err := errors.Join(dateErr, slotErr); err != nil {
		return DeliveryWindow{}, err
	}

	return NewDeliveryWindow(d, s)
}

func (w DeliveryWindow) Date() DeliveryDate {
	return w.date
}

func (w DeliveryWindow) Slot() TimeSlot {
	return w.slot
}

func (w DeliveryWindow) IsEqual(other DeliveryWindow) bool {
	return w.date.IsEqual(other.date) && w.slot == other.slot
}

// String renders the window as "2024-06-01 (morning)".
func (w DeliveryWindow) String() string {
	return fmt.Sprintf("%s (%s)", w.date, w.slot)
}

func (w DeliveryWindow) Validate() error {
	return w.guard.Validate(ErrDeliveryWindowIsNotConstructed)
}
