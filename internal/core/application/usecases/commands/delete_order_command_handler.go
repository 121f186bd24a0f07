package commands

import (
	"context"
)

// DeleteOrderCommandHandler handles order deletion. Line items are removed
// by cascade with the order row, so no orphaned items remain queryable.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion operations.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
// Returns errs.ObjectNotFoundError if the order does not exist.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	existing, err := orderRepo.GetByNumber(ctx, cmd.Number())
	if err != nil {
		return err
	}

	if err = orderRepo.Delete(ctx, existing.Number()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
