package commands

import (
	"errors"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/guard"
)

var ErrArchiveOrderCommandIsNotConstructed = errors.New(
	"ArchiveOrderCommand must be created via NewArchiveOrderCommand constructor",
)

// ArchiveOrderCommand represents a staff request to archive a single order,
// regardless of its current status.
type ArchiveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewArchiveOrderCommand creates a command to archive one order.
func NewArchiveOrderCommand(orderID kernel.OrderID) (ArchiveOrderCommand, error) {
	cmd := ArchiveOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ArchiveOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ArchiveOrderCommand) Validate() error {
	return c.guard.Validate(ErrArchiveOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c ArchiveOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

func (c *ArchiveOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
