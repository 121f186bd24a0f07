package commands_test

import (
	"errors"
	"testing"

	"pickpoint/internal/core/application/usecases/commands"
	"pickpoint/internal/core/domain/model/order"
	"pickpoint/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createOrderCommand(t *testing.T) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(
		42, 1, []string{"prod1", "prod2"}, decimal.NewFromInt(500),
		testLocker(t), testPhone(t), "Ivan Petrov",
	)
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := createOrderCommand(t)

	orderRepo := new(MockOrderRepository)
	statusRepo := new(MockOrderStatusRepository)
	postautomatRepo := new(MockPostautomatRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Exists", mock.Anything, 42).Return(false, nil).Once(),
		uow.On("OrderStatusRepository").Return(statusRepo).Once(),
		statusRepo.On("GetByID", mock.Anything, 1).Return(order.Registered, nil).Once(),
		uow.On("PostautomatRepository").Return(postautomatRepo).Once(),
		postautomatRepo.On("GetByNumber", mock.Anything, cmd.Postautomat()).
			Return(testPostautomat(t), nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetByNames", mock.Anything, []string{"prod1", "prod2"}).
			Return(testProducts(t, "prod1", "prod2"), nil).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockCreateOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}

func TestCreateOrderCommandHandler_Handle_OrderAlreadyExists(t *testing.T) {
	ctx := t.Context()
	cmd := createOrderCommand(t)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Exists", mock.Anything, 42).Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrOrderAlreadyExists)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_StatusNotFound(t *testing.T) {
	ctx := t.Context()
	cmd := createOrderCommand(t)

	orderRepo := new(MockOrderRepository)
	statusRepo := new(MockOrderStatusRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Exists", mock.Anything, 42).Return(false, nil).Once(),
		uow.On("OrderStatusRepository").Return(statusRepo).Once(),
		statusRepo.On("GetByID", mock.Anything, 1).
			Return(order.Unknown, errs.NewObjectNotFoundError("status", 1)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrStatusNotFound)
	statusRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_PostautomatNotFound(t *testing.T) {
	ctx := t.Context()
	cmd := createOrderCommand(t)

	orderRepo := new(MockOrderRepository)
	statusRepo := new(MockOrderStatusRepository)
	postautomatRepo := new(MockPostautomatRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Exists", mock.Anything, 42).Return(false, nil).Once(),
		uow.On("OrderStatusRepository").Return(statusRepo).Once(),
		statusRepo.On("GetByID", mock.Anything, 1).Return(order.Registered, nil).Once(),
		uow.On("PostautomatRepository").Return(postautomatRepo).Once(),
		postautomatRepo.On("GetByNumber", mock.Anything, cmd.Postautomat()).
			Return(nil, errs.NewObjectNotFoundError("postautomat", cmd.Postautomat().String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrPostautomatNotFound)
	postautomatRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

// Unknown product names resolve to an empty catalog slice and the order is
// registered with no line items, the way the original service behaved.
func TestCreateOrderCommandHandler_Handle_UnknownProductsDropped(t *testing.T) {
	ctx := t.Context()
	cmd := createOrderCommand(t)

	orderRepo := new(MockOrderRepository)
	statusRepo := new(MockOrderStatusRepository)
	postautomatRepo := new(MockPostautomatRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Exists", mock.Anything, 42).Return(false, nil).Once(),
		uow.On("OrderStatusRepository").Return(statusRepo).Once(),
		statusRepo.On("GetByID", mock.Anything, 1).Return(order.Registered, nil).Once(),
		uow.On("PostautomatRepository").Return(postautomatRepo).Once(),
		postautomatRepo.On("GetByNumber", mock.Anything, cmd.Postautomat()).
			Return(testPostautomat(t), nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetByNames", mock.Anything, []string{"prod1", "prod2"}).
			Return(testProducts(t), nil).Once(),
		orderRepo.On("Add", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
			return len(o.Composition()) == 0
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd := createOrderCommand(t)

	uow := new(MockUoW)
	factory := new(MockCreateOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd := createOrderCommand(t)

	orderRepo := new(MockOrderRepository)
	statusRepo := new(MockOrderStatusRepository)
	postautomatRepo := new(MockPostautomatRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Exists", mock.Anything, 42).Return(false, nil).Once(),
		uow.On("OrderStatusRepository").Return(statusRepo).Once(),
		statusRepo.On("GetByID", mock.Anything, 1).Return(order.Registered, nil).Once(),
		uow.On("PostautomatRepository").Return(postautomatRepo).Once(),
		postautomatRepo.On("GetByNumber", mock.Anything, cmd.Postautomat()).
			Return(testPostautomat(t), nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetByNames", mock.Anything, []string{"prod1", "prod2"}).
			Return(testProducts(t, "prod1", "prod2"), nil).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}
