package commands

import (
	"context"
)

// ChangeOrderCompositionCommandHandler handles the set-reconciliation of an
// order's line items: the target names are resolved against the catalog
// (unknown names silently dropped), the aggregate computes the additions and
// removals by product identity, and the result is persisted atomically.
type ChangeOrderCompositionCommandHandler struct {
	uowFactory ChangeCompositionUoWFactory
}

// NewChangeOrderCompositionCommandHandler creates a handler for composition change operations.
func NewChangeOrderCompositionCommandHandler(
	uowFactory ChangeCompositionUoWFactory,
) ChangeOrderCompositionCommandHandler {
	return ChangeOrderCompositionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the composition change command.
// The whole reconciliation runs inside one transaction: a failure partway
// through leaves the stored composition untouched.
func (h *ChangeOrderCompositionCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderCompositionCommand,
) error {
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

	products, err := uow.ProductRepository().GetByNames(ctx, cmd.Composition())
	if err != nil {
		return err
	}

	if err = existing.ChangeComposition(products, cmd.Cost()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
