package kernel

import (
	"fmt"
	"strconv"

	"tableside/internal/pkg/errs"
)

// TableID identifies the dining table an order was placed from.
// Must be a positive integer; there is no table registry to check against.
type TableID int

// NewTableID creates a validated TableID.
// Returns ValueIsRequiredError for the zero value and ValueIsInvalidError
// for negative input.
func NewTableID(value int) (TableID, error) {
	if value == 0 {
		return 0, errs.NewValueIsRequiredError("table_id")
	}
	if value < 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("table_id",
			fmt.Errorf("%d is not greater than 0", value))
	}
	return TableID(value), nil
}

// Validate checks that the TableID holds a positive value.
func (t TableID) Validate() error {
	if t <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("table_id",
			fmt.Errorf("%d is not greater than 0", int(t)))
	}
	return nil
}

// Int returns the numeric table number.
func (t TableID) Int() int {
	return int(t)
}

// String returns the decimal representation of the table number.
func (t TableID) String() string {
	return strconv.Itoa(int(t))
}

// OrderID is the store-assigned identifier of an order. It is zero until the
// order has been persisted for the first time and immutable afterwards.
type OrderID int64

// NewOrderID creates a validated, non-zero OrderID.
func NewOrderID(value int64) (OrderID, error) {
	if value <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("order_id",
			fmt.Errorf("%d is not greater than 0", value))
	}
	return OrderID(value), nil
}

// Validate checks that the OrderID has been assigned.
func (id OrderID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order_id",
			fmt.Errorf("%d is not greater than 0", int64(id)))
	}
	return nil
}

// IsZero reports whether the order has not been persisted yet.
func (id OrderID) IsZero() bool {
	return id == 0
}

// Int64 returns the raw numeric identifier.
func (id OrderID) Int64() int64 {
	return int64(id)
}

// String returns the decimal representation of the identifier.
func (id OrderID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
