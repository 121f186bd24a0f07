package commands_test

import (
	"testing"

	"pickpoint/internal/core/domain/model/kernel"
	"pickpoint/internal/core/domain/model/order"
	"pickpoint/internal/core/domain/model/postautomat"
	"pickpoint/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testPhone(t *testing.T) kernel.Phone {
	t.Helper()
	phone, err := kernel.NewPhone("+79991234567")
	require.NoError(t, err)
	return phone
}

func testLocker(t *testing.T) kernel.LockerNumber {
	t.Helper()
	locker, err := kernel.NewLockerNumber("1111-2222")
	require.NoError(t, err)
	return locker
}

func testPostautomat(t *testing.T) *postautomat.Postautomat {
	t.Helper()
	p, err := postautomat.NewPostautomat(testLocker(t), "Lenina st. 1", true)
	require.NoError(t, err)
	return p
}

func testProducts(t *testing.T, names ...string) []*product.Product {
	t.Helper()
	products := make([]*product.Product, 0, len(names))
	for i, name := range names {
		// IDs start at 100 so catalog fixtures never collide with the
		// line item baked into testOrder.
		p, err := product.NewProduct(int64(100+i), name, 10, decimal.NewFromInt(100))
		require.NoError(t, err)
		products = append(products, p)
	}
	return products
}

func testOrder(t *testing.T, number int) *order.Order {
	t.Helper()
	item, err := order.NewItem(1, "prod1")
	require.NoError(t, err)
	o, err := order.NewOrder(
		number,
		order.Registered,
		decimal.NewFromInt(500),
		"Ivan Petrov",
		testPhone(t),
		testLocker(t),
		[]order.Item{item},
	)
	require.NoError(t, err)
	return o
}
