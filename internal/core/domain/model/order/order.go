package order

import (
	"errors"
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIDAlreadyAssigned is returned when AttachID is called on an order
	// that already carries a store-assigned identifier.
	ErrOrderIDAlreadyAssigned = errors.New("order id is immutable once assigned")
)

// Order is the aggregate root for a table-side order. It owns all writes to
// status and the archived flag.
//
// Invariants:
//   - table id is positive
//   - items is non-empty at creation
//   - order date is assigned once and never changes
//   - archived is monotonic: once set it is never cleared
//   - the identifier is store-assigned and immutable afterwards
type Order struct {
	// id is zero until the store assigns one on first persistence
	id kernel.OrderID

	tableID kernel.TableID

	// orderDate is the creation timestamp, immutable after construction
	orderDate time.Time

	items []Item

	status Status

	specialNotes string

	archived bool

	// isConstructed ensures the order was created via a factory function
	isConstructed bool
}

// NewOrder creates a new order for a table. The order starts Pending,
// unarchived, with the given creation timestamp. Fails if the table id is
// invalid or the item list is empty.
func NewOrder(tableID kernel.TableID, items []Item, specialNotes string, orderDate time.Time) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setTableID(tableID),
		o.setItems(items),
		o.setOrderDate(orderDate),
	); err != nil {
		return nil, err
	}

	o.specialNotes = specialNotes
	return o, nil
}

// RestoreOrder rebuilds an order from its persisted state. Used by
// repositories when loading rows; unlike NewOrder it accepts any status and
// archived flag but still enforces the structural invariants.
func RestoreOrder(
	id kernel.OrderID,
	tableID kernel.TableID,
	orderDate time.Time,
	items []Item,
	status Status,
	specialNotes string,
	archived bool,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	o, err := NewOrder(tableID, items, specialNotes, orderDate)
	if err != nil {
		return nil, err
	}

	o.id = id
	o.status = status
	o.archived = archived
	return o, nil
}

// Validate ensures the Order was created through a factory function.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// AttachID records the store-assigned identifier after first persistence.
// Fails if the id is invalid or one was already assigned.
func (o *Order) AttachID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !o.id.IsZero() {
		return ErrOrderIDAlreadyAssigned
	}

	o.id = id
	return nil
}

// ID returns the store-assigned identifier (zero before first persistence).
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// TableID returns the table the order was placed from.
func (o *Order) TableID() kernel.TableID {
	return o.tableID
}

// OrderDate returns the creation timestamp.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// Items returns a copy of the order's item lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// SpecialNotes returns the diner's free-text notes.
func (o *Order) SpecialNotes() string {
	return o.specialNotes
}

// Archived reports whether the order has been archived.
func (o *Order) Archived() bool {
	return o.archived
}

// ChangeStatus sets a new status. When the new status is Completed
// (case-insensitively), the order is archived in the same operation; callers
// must persist status and archived together. No other status carries a side
// effect, and no transition is rejected for being out of order.
func (o *Order) ChangeStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	o.status = newStatus
	if newStatus.IsCompleted() {
		o.archived = true
	}
	return nil
}

// Archive marks the order as archived regardless of its status.
// Idempotent: archiving an archived order is a no-op.
func (o *Order) Archive() {
	o.archived = true
}

// ItemsSummary renders the order's lines as a quantity-collapsed display
// string, e.g. "3× Kebap, 1× Ayran".
func (o *Order) ItemsSummary() string {
	return summarizeLines(o.items)
}

func (o *Order) setTableID(tableID kernel.TableID) error {
	if err := tableID.Validate(); err != nil {
		return err
	}
	o.tableID = tableID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setOrderDate(orderDate time.Time) error {
	if orderDate.IsZero() {
		return errs.NewValueIsRequiredError("order_date")
	}
	o.orderDate = orderDate
	return nil
}
