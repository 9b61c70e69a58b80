package commands

import (
	"context"

	"tableside/internal/core/domain/model/order"
)

// ArchiveOrderCommandHandler archives a single order. Archiving is
// unconditional and idempotent: the operation succeeds silently when the
// order is already archived.
type ArchiveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewArchiveOrderCommandHandler creates a handler for single-order archival.
func NewArchiveOrderCommandHandler(uowFactory OrderUoWFactory) ArchiveOrderCommandHandler {
	return ArchiveOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the target order, sets the archived flag, and persists it.
// Returns the archived aggregate, or an ObjectNotFoundError for unknown ids.
func (h *ArchiveOrderCommandHandler) Handle(ctx context.Context, cmd ArchiveOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	aggregate.Archive()

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
