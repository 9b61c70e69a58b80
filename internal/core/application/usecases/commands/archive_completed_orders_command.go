package commands

import (
	"errors"

	"tableside/internal/pkg/guard"
)

var ErrArchiveCompletedOrdersCommandIsNotConstructed = errors.New(
	"ArchiveCompletedOrdersCommand must be created via NewArchiveCompletedOrdersCommand constructor",
)

// ArchiveCompletedOrdersCommand sweeps every Completed, not-yet-archived
// order into the archive. Parameterless; the scan-and-update runs as one
// batch.
type ArchiveCompletedOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewArchiveCompletedOrdersCommand creates the bulk-archive command.
func NewArchiveCompletedOrdersCommand() ArchiveCompletedOrdersCommand {
	return ArchiveCompletedOrdersCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c ArchiveCompletedOrdersCommand) Validate() error {
	return c.guard.Validate(ErrArchiveCompletedOrdersCommandIsNotConstructed)
}
