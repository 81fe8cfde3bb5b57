package kernel

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// TimeSlot is the part of the day a delivery happens in. The set is closed:
// anything else is rejected at the API boundary by ParseTimeSlot.
type TimeSlot int

const (
	UnknownTimeSlot TimeSlot = iota
	Morning
	Afternoon
	Evening
)

var timeSlotNames = map[TimeSlot]string{
	Morning:   "morning",
	Afternoon: "afternoon",
	Evening:   "evening",
}

// TimeSlots lists the valid slots in chronological order.
func TimeSlots() []TimeSlot {
	return []TimeSlot{Morning, Afternoon, Evening}
}

// ParseTimeSlot maps the wire name onto a TimeSlot.
func ParseTimeSlot(s string) (TimeSlot, error) {
	for slot, name := range timeSlotNames {
		if name == s {
			return slot, nil
		}
	}
	return UnknownTimeSlot, errs.NewValueIsInvalidErrorWithCause(
		"time slot",
		fmt.Errorf("%q is not one of morning, afternoon, evening", s),
	)
}

func (s TimeSlot) String() string {
	if name, ok := timeSlotNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s TimeSlot) Validate() error {
	if _, ok := timeSlotNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("time slot", fmt.Errorf("%d is not a valid time slot", s))
	}
	return nil
}
