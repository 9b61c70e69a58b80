package commands

import (
	"context"
)

// ArchiveCompletedOrdersCommandHandler runs the bulk archival sweep.
// The whole sweep is a single transaction: either every matched order is
// archived and the count reflects it, or nothing changes. Partial success is
// never reported.
type ArchiveCompletedOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewArchiveCompletedOrdersCommandHandler creates a handler for bulk archival.
func NewArchiveCompletedOrdersCommandHandler(uowFactory OrderUoWFactory) ArchiveCompletedOrdersCommandHandler {
	return ArchiveCompletedOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle archives all Completed, unarchived orders and returns the number of
// orders whose state actually changed.
func (h *ArchiveCompletedOrdersCommandHandler) Handle(ctx context.Context, cmd ArchiveCompletedOrdersCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	count, err := uow.OrderRepository().ArchiveCompleted(ctx)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return count, nil
}
