package commands

import (
	"context"
)

// ChangeOrderStatusCommandHandler handles the business logic for status
// changes. Both the order and the target status are resolved against the
// store; either one being absent surfaces as an object-not-found error,
// matching the original service's 404 behavior on this endpoint.
type ChangeOrderStatusCommandHandler struct {
	uowFactory ChangeStatusUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for status change operations.
func NewChangeOrderStatusCommandHandler(uowFactory ChangeStatusUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	status, err := uow.OrderStatusRepository().GetByID(ctx, cmd.StatusID())
	if err != nil {
		return err
	}

	if err = existing.ChangeStatus(status); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
