package commands

import (
	"context"
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
)

// PlaceOrderCommandHandler handles the business logic for order intake.
// New orders start Pending and unarchived, timestamped at intake time.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewPlaceOrderCommandHandler creates a handler for order intake.
// Requires an OrderUoWFactory for transactional persistence.
func NewPlaceOrderCommandHandler(uowFactory OrderUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the intake command and returns the store-assigned id of
// the created order. A rejected command performs no write.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (kernel.OrderID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	aggregate, err := order.NewOrder(cmd.TableID(), cmd.Items(), cmd.SpecialNotes(), h.now())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return aggregate.ID(), nil
}
