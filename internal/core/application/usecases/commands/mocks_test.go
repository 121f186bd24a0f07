package commands_test

import (
	"context"

	"pickpoint/internal/core/application/usecases/commands"
	"pickpoint/internal/core/domain/model/kernel"
	"pickpoint/internal/core/domain/model/order"
	"pickpoint/internal/core/domain/model/postautomat"
	"pickpoint/internal/core/domain/model/product"
	"pickpoint/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, number int) error {
	args := m.Called(ctx, number)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByNumber(ctx context.Context, number int) (*order.Order, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Exists(ctx context.Context, number int) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

type MockPostautomatRepository struct{ mock.Mock }

func (m *MockPostautomatRepository) GetByNumber(
	ctx context.Context, number kernel.LockerNumber,
) (*postautomat.Postautomat, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*postautomat.Postautomat), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) GetByNames(ctx context.Context, names []string) ([]*product.Product, error) {
	args := m.Called(ctx, names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

type MockOrderStatusRepository struct{ mock.Mock }

func (m *MockOrderStatusRepository) GetByID(ctx context.Context, id int) (order.Status, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(order.Status), args.Error(1)
}

// MockUoW implements every unit-of-work interface the commands declare.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) PostautomatRepository() ports.PostautomatRepository {
	args := m.Called()
	return args.Get(0).(ports.PostautomatRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockUoW) OrderStatusRepository() ports.OrderStatusRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderStatusRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCreateOrderUoWFactory struct{ mock.Mock }

func (m *MockCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateOrderUoW)
}

type MockChangeStatusUoWFactory struct{ mock.Mock }

func (m *MockChangeStatusUoWFactory) Create() commands.ChangeStatusUoW {
	args := m.Called()
	return args.Get(0).(commands.ChangeStatusUoW)
}

type MockChangeCompositionUoWFactory struct{ mock.Mock }

func (m *MockChangeCompositionUoWFactory) Create() commands.ChangeCompositionUoW {
	args := m.Called()
	return args.Get(0).(commands.ChangeCompositionUoW)
}
