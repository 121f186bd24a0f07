package commands

import (
	"context"
	"errors"

	"pickpoint/internal/core/domain/model/order"
	"pickpoint/internal/pkg/errs"
)

var (
	// ErrOrderAlreadyExists is returned when an order with the requested
	// number is already stored.
	ErrOrderAlreadyExists = errors.New("the order exists")

	// ErrPostautomatNotFound is returned when the requested locker is not in
	// the reference data. A creation request referencing a missing locker is
	// a client error, not a 404.
	ErrPostautomatNotFound = errors.New("postautomat not found")

	// ErrStatusNotFound is returned when the requested status identifier has
	// no row in the reference table.
	ErrStatusNotFound = errors.New("status not found")
)

// CreateOrderCommandHandler handles the business logic for order creation:
// uniqueness of the order number, resolution of the composition against the
// catalog (unknown product names are silently dropped), and resolution of
// the target locker and status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    switch {
//	    case errors.Is(err, ErrOrderAlreadyExists):
//	        // reject as a client error
//	    default:
//	        return err
//	    }
//	}
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory CreateOrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// The order and all its line items are persisted in a single transaction, so
// a failed insert leaves no speculative line items behind.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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
	exists, err := orderRepo.Exists(ctx, cmd.Number())
	if err != nil {
		return err
	}
	if exists {
		return ErrOrderAlreadyExists
	}

	status, err := uow.OrderStatusRepository().GetByID(ctx, cmd.StatusID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrStatusNotFound
		}
		return err
	}

	locker, err := uow.PostautomatRepository().GetByNumber(ctx, cmd.Postautomat())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrPostautomatNotFound
		}
		return err
	}

	products, err := uow.ProductRepository().GetByNames(ctx, cmd.Composition())
	if err != nil {
		return err
	}

	items := make([]order.Item, 0, len(products))
	for _, p := range products {
		item, itemErr := order.NewItemFromProduct(p)
		if itemErr != nil {
			return itemErr
		}
		items = append(items, item)
	}

	newOrder, err := order.NewOrder(
		cmd.Number(),
		status,
		cmd.Cost(),
		cmd.Recipient(),
		cmd.Phone(),
		locker.Number(),
		items,
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
