package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	ErrOrderHasNoItems = errs.NewValueIsRequiredError("order items")
)

// Details is the CRUD payload of an order. It is not part of the negotiation
// state machine but is subject to the lock.
type Details struct {
	AddressID    *kernel.UUID
	Store        string
	Instructions string
	Items        []Item
}

// Snapshot is the full persisted state of an order, used to restore the aggregate
// from storage and to map it onto storage rows.
type Snapshot struct {
	ID         kernel.UUID
	Number     string
	CustomerID kernel.UUID
	OperatorID *kernel.UUID
	Status     Status
	Desired    kernel.DeliveryWindow
	Suggested  *kernel.DeliveryWindow
	Final      *kernel.DeliveryWindow
	Locked     bool
	Details    Details
	Version    int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Order is a customer's shopping order together with the negotiation of its
// delivery window.
//
// Order follows these invariants:
//   - suggested is set if and only if status is a review status
//   - final is set if and only if status is date_accepted or date_forced, or the
//     order was completed or cancelled after reaching one of them
//   - every transition reaching a final window locks the order
//   - desired never changes after creation
type Order struct {
	id         kernel.UUID
	number     string
	customerID kernel.UUID

	// operatorID is the last operator who acted on the negotiation; operator-side
	// notifications are addressed to them.
	operatorID *kernel.UUID

	status    Status
	desired   kernel.DeliveryWindow
	suggested *kernel.DeliveryWindow
	final     *kernel.DeliveryWindow
	locked    bool
	details   Details

	// version is the optimistic-concurrency token read from storage.
	version   int64
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrderNumber derives the human-readable order number, e.g. ORD-20240601-4F2A9C.
func NewOrderNumber(id kernel.UUID, at time.Time) string {
	raw := strings.ReplaceAll(id.String(), "-", "")
	return fmt.Sprintf("ORD-%s-%s", at.UTC().Format("20060102"), strings.ToUpper(raw[:6]))
}

// NewOrder creates an order in status new, as handed over by the cart. The desired
// window has already been validated against the time-slot set by the caller.
func NewOrder(
	id kernel.UUID,
	number string,
	customerID kernel.UUID,
	desired kernel.DeliveryWindow,
	details Details,
	createdAt time.Time,
) (*Order, error) {
	var numberErr error
	if strings.TrimSpace(number) == "" {
		numberErr = errs.NewValueIsRequiredError("order number")
	}

	if err := errors.Join(
		id.Validate(),
		numberErr,
		customerID.Validate(),
		desired.Validate(),
		validateDetails(details),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		number:        number,
		customerID:    customerID,
		status:        New,
		desired:       desired,
		details:       cloneDetails(details),
		createdAt:     createdAt,
		updatedAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreOrder rebuilds an order from storage and checks its invariants.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		id:            s.ID,
		number:        s.Number,
		customerID:    s.CustomerID,
		operatorID:    cloneID(s.OperatorID),
		status:        s.Status,
		desired:       s.Desired,
		suggested:     cloneWindow(s.Suggested),
		final:         cloneWindow(s.Final),
		locked:        s.Locked,
		details:       cloneDetails(s.Details),
		version:       s.Version,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		s.ID.Validate(),
		s.CustomerID.Validate(),
		s.Desired.Validate(),
		validateDetails(s.Details),
		o.Validate(),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate checks construction and the negotiation invariants.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	if err := o.status.Validate(); err != nil {
		return err
	}

	if (o.suggested != nil) != o.status.IsReview() {
		return errs.NewValueIsInvalidErrorWithCause(
			"suggested delivery window",
			fmt.Errorf("suggestion presence does not match status %s", o.status),
		)
	}

	if o.final != nil && !o.status.HasFinalWindow() {
		return errs.NewValueIsInvalidErrorWithCause(
			"final delivery window",
			fmt.Errorf("%s cannot carry a final window", o.status),
		)
	}

	if o.final == nil && (o.status == DateAccepted || o.status == DateForced) {
		return errs.NewValueIsRequiredErrorWithCause(
			"final delivery window",
			fmt.Errorf("%s requires a final window", o.status),
		)
	}

	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Number() string {
	return o.number
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// OperatorID returns the last operator who acted on the order, or nil.
func (o *Order) OperatorID() *kernel.UUID {
	return cloneID(o.operatorID)
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) DesiredWindow() kernel.DeliveryWindow {
	return o.desired
}

// SuggestedWindow returns the pending suggestion, or nil outside review statuses.
func (o *Order) SuggestedWindow() *kernel.DeliveryWindow {
	return cloneWindow(o.suggested)
}

// FinalWindow returns the agreed or forced window, or nil.
func (o *Order) FinalWindow() *kernel.DeliveryWindow {
	return cloneWindow(o.final)
}

func (o *Order) IsLocked() bool {
	return o.locked
}

func (o *Order) Details() Details {
	return cloneDetails(o.details)
}

func (o *Order) Version() int64 {
	return o.version
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// IsOwnedBy reports whether customerID created the order.
func (o *Order) IsOwnedBy(customerID kernel.UUID) bool {
	return o.customerID.IsEqual(customerID)
}

// Snapshot exports the full state for persistence.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:         o.id,
		Number:     o.number,
		CustomerID: o.customerID,
		OperatorID: cloneID(o.operatorID),
		Status:     o.status,
		Desired:    o.desired,
		Suggested:  cloneWindow(o.suggested),
		Final:      cloneWindow(o.final),
		Locked:     o.locked,
		Details:    cloneDetails(o.details),
		Version:    o.version,
		CreatedAt:  o.createdAt,
		UpdatedAt:  o.updatedAt,
	}
}

// Clone returns an independent copy; mutating it leaves o untouched.
func (o *Order) Clone() *Order {
	c := *o
	c.operatorID = cloneID(o.operatorID)
	c.suggested = cloneWindow(o.suggested)
	c.final = cloneWindow(o.final)
	c.details = cloneDetails(o.details)
	return &c
}

// Persisted records the version and timestamp storage assigned to the latest
// successful write. Repositories call it; domain code never does.
func (o *Order) Persisted(version int64, at time.Time) {
	o.version = version
	o.updatedAt = at
}

// StartProcessing moves a new order into processing.
func (o *Order) StartProcessing(operatorID kernel.UUID) error {
	if err := operatorID.Validate(); err != nil {
		return err
	}

	next, err := o.status.Next(StartProcessing)
	if err != nil {
		return err
	}

	o.status = next
	o.operatorID = &operatorID
	return nil
}

// ProposeDate records the operator's alternate window and hands the decision to
// the customer. Proposing again while the customer has not answered overwrites
// the pending suggestion.
func (o *Order) ProposeDate(operatorID kernel.UUID, window kernel.DeliveryWindow) error {
	if err := errors.Join(operatorID.Validate(), window.Validate()); err != nil {
		return err
	}

	next, err := o.status.Next(ProposeDate)
	if err != nil {
		return err
	}

	o.status = next
	o.suggested = &window
	o.operatorID = &operatorID
	return nil
}

// CounterPropose replaces the pending suggestion with the customer's alternative
// and hands the decision back to the operator.
func (o *Order) CounterPropose(window kernel.DeliveryWindow) error {
	if err := window.Validate(); err != nil {
		return err
	}

	next, err := o.status.Next(CounterPropose)
	if err != nil {
		return err
	}

	o.status = next
	o.suggested = &window
	return nil
}

// AcceptSuggestion is the customer agreeing to the operator's suggestion.
func (o *Order) AcceptSuggestion() error {
	next, err := o.status.Next(AcceptSuggestion)
	if err != nil {
		return err
	}

	o.finalize(next, *o.suggested)
	return nil
}

// AcceptCounter is the operator agreeing to the customer's counter-proposal.
func (o *Order) AcceptCounter(operatorID kernel.UUID) error {
	if err := operatorID.Validate(); err != nil {
		return err
	}

	next, err := o.status.Next(AcceptCounter)
	if err != nil {
		return err
	}

	o.finalize(next, *o.suggested)
	o.operatorID = &operatorID
	return nil
}

// ForceDate sets the final window directly. It wins over any pending suggestion
// and may correct a window that was already final.
func (o *Order) ForceDate(operatorID kernel.UUID, window kernel.DeliveryWindow) error {
	if err := errors.Join(operatorID.Validate(), window.Validate()); err != nil {
		return err
	}

	next, err := o.status.Next(ForceDate)
	if err != nil {
		return err
	}

	o.finalize(next, window)
	o.operatorID = &operatorID
	return nil
}

// Lock freezes items and dates without changing the status.
func (o *Order) Lock(operatorID kernel.UUID) error {
	return o.setLocked(operatorID, Lock, true)
}

// Unlock lifts the lock without changing the status or the final window.
func (o *Order) Unlock(operatorID kernel.UUID) error {
	return o.setLocked(operatorID, Unlock, false)
}

// Cancel ends the order. A pending suggestion is dropped.
func (o *Order) Cancel() error {
	next, err := o.status.Next(Cancel)
	if err != nil {
		return err
	}

	o.status = next
	o.suggested = nil
	return nil
}

// MarkFulfilled completes an order whose delivery window is final.
func (o *Order) MarkFulfilled(operatorID kernel.UUID) error {
	if err := operatorID.Validate(); err != nil {
		return err
	}

	next, err := o.status.Next(MarkFulfilled)
	if err != nil {
		return err
	}

	o.status = next
	o.operatorID = &operatorID
	return nil
}

// ReplaceItems swaps the order lines and instructions. Callers must consult the
// locking guard first; the order itself only rejects terminal statuses.
func (o *Order) ReplaceItems(items []Item, instructions string) error {
	details := o.details
	details.Items = items
	details.Instructions = strings.TrimSpace(instructions)

	if err := validateDetails(details); err != nil {
		return err
	}

	if _, err := o.status.Next(EditItems); err != nil {
		return err
	}

	o.details = cloneDetails(details)
	return nil
}

func (o *Order) finalize(next Status, window kernel.DeliveryWindow) {
	o.status = next
	o.final = &window
	o.suggested = nil
	o.locked = true
}

func (o *Order) setLocked(operatorID kernel.UUID, action Action, locked bool) error {
	if err := operatorID.Validate(); err != nil {
		return err
	}

	if _, err := o.status.Next(action); err != nil {
		return err
	}

	if o.locked == locked {
		return errs.NewInvalidTransitionError(lockState(o.locked), action)
	}

	o.locked = locked
	o.operatorID = &operatorID
	return nil
}

type lockState bool

func (l lockState) String() string {
	if l {
		return "locked"
	}
	return "unlocked"
}

func validateDetails(d Details) error {
	if len(d.Items) == 0 {
		return ErrOrderHasNoItems
	}

	var addressErr error
	if d.AddressID != nil {
		addressErr = d.AddressID.Validate()
	}

	itemErrs := make([]error, 0, len(d.Items)+1)
	itemErrs = append(itemErrs, addressErr)
	for _, item := range d.Items {
		itemErrs = append(itemErrs, item.Validate())
	}

	return errors.Join(itemErrs...)
}

func cloneDetails(d Details) Details {
	d.AddressID = cloneID(d.AddressID)
	d.Items = slices.Clone(d.Items)
	return d
}

func cloneID(id *kernel.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}

func cloneWindow(w *kernel.DeliveryWindow) *kernel.DeliveryWindow {
	if w == nil {
		return nil
	}
	c := *w
	return &c
}
