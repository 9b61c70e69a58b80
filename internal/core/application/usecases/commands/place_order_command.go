package commands

import (
	"errors"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/pkg/errs"
	"tableside/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a diner's request to place an order from a
// table. Carries the table, the item lines, and optional free-text notes.
//
// Example:
//
//	tableID, _ := kernel.NewTableID(7)
//	items, _ := order.ParseItems(`["Ayran",{"name":"Kebap","qty":2}]`)
//	cmd, err := NewPlaceOrderCommand(tableID, items, "no onions")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	orderID, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	tableID      kernel.TableID
	items        []order.Item
	specialNotes string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates that the table id is positive and the item list is non-empty.
func NewPlaceOrderCommand(tableID kernel.TableID, items []order.Item, specialNotes string) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTableID(tableID),
		cmd.setItems(items),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	cmd.specialNotes = specialNotes
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// TableID returns the ordering table.
func (c PlaceOrderCommand) TableID() kernel.TableID {
	return c.tableID
}

// Items returns the requested item lines.
func (c PlaceOrderCommand) Items() []order.Item {
	return c.items
}

// SpecialNotes returns the diner's free-text notes, possibly empty.
func (c PlaceOrderCommand) SpecialNotes() string {
	return c.specialNotes
}

func (c *PlaceOrderCommand) setTableID(tableID kernel.TableID) error {
	if err := tableID.Validate(); err != nil {
		return err
	}

	c.tableID = tableID
	return nil
}

func (c *PlaceOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}
