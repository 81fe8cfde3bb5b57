package kernel

import (
	"errors"
	"fmt"
	"time"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// DeliveryDateLayout is the wire and storage format of a DeliveryDate.
const DeliveryDateLayout = time.DateOnly

var ErrDeliveryDateIsNotConstructed = errors.New("DeliveryDate must be created via NewDeliveryDate or ParseDeliveryDate")

// DeliveryDate is a calendar date. It carries no time of day and no time zone;
// internally it is pinned to midnight UTC so equal dates compare equal.
type DeliveryDate struct {
	t     time.Time
	guard guard.ConstructorGuard
}

// NewDeliveryDate rejects dates that do not exist, such as February 30.
func NewDeliveryDate(year int, month time.Month, day int) (DeliveryDate, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return DeliveryDate{}, errs.NewValueIsInvalidErrorWithCause(
			"delivery date",
			fmt.Errorf("%04d-%02d-%02d is not a calendar date", year, month, day),
		)
	}

	return DeliveryDate{t: t, guard: guard.NewConstructorGuard()}, nil
}

// DeliveryDateFromTime keeps the calendar date of t as seen in t's own location.
func DeliveryDateFromTime(t time.Time) (DeliveryDate, error) {
	if t.IsZero() {
		return DeliveryDate{}, errs.NewValueIsRequiredError("delivery date")
	}
	return NewDeliveryDate(t.Year(), t.Month(), t.Day())
}

// ParseDeliveryDate parses a YYYY-MM-DD string.
func ParseDeliveryDate(s string) (DeliveryDate, error) {
	if s == "" {
		return DeliveryDate{}, errs.NewValueIsRequiredError("delivery date")
	}

	t, err := time.Parse(DeliveryDateLayout, s)
	if err != nil {
		return DeliveryDate{}, errs.NewValueIsInvalidErrorWithCause("delivery date", err)
	}

	return NewDeliveryDate(t.Year(), t.Month(), t.Day())
}

// Time returns the date at midnight UTC.
func (d DeliveryDate) Time() time.Time {
	return d.t
}

func (d DeliveryDate) String() string {
	return d.t.Format(DeliveryDateLayout)
}

func (d DeliveryDate) IsEqual(other DeliveryDate) bool {
	return d.t.Equal(other.t)
}

func (d DeliveryDate) Before(other DeliveryDate) bool {
	return d.t.Before(other.t)
}

func (d DeliveryDate) Validate() error {
	return d.guard.Validate(ErrDeliveryDateIsNotConstructed)
}
