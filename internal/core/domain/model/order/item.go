package order

import (
	"errors"
	"strings"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

const (
	MinItemQuantity = 1
	MaxItemQuantity = 999
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem")

// Item is one product line of an order.
type Item struct {
	productName string
	quantity    int
	note        string
	guard       guard.ConstructorGuard
}

func NewItem(productName string, quantity int, note string) (Item, error) {
	productName = strings.TrimSpace(productName)

	var nameErr, quantityErr error
	if productName == "" {
		nameErr = errs.NewValueIsRequiredError("product name")
	}
	if quantity < MinItemQuantity || quantity > MaxItemQuantity {
		quantityErr = errs.NewValueIsOutOfRangeError("quantity", quantity, MinItemQuantity, MaxItemQuantity)
	}
	if err := errors.Join(nameErr, quantityErr); err != nil {
		return Item{}, err
	}

	return Item{
		productName: productName,
		quantity:    quantity,
		note:        strings.TrimSpace(note),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (i Item) ProductName() string {
	return i.productName
}

func (i Item) Quantity() int {
	return i.quantity
}

func (i Item) Note() string {
	return i.note
}

func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}
