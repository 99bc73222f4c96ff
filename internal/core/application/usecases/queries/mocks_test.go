package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/beliemun/uber-backend/internal/core/domain/model/kernel"
	"github.com/beliemun/uber-backend/internal/core/domain/model/order"
	"github.com/beliemun/uber-backend/internal/core/domain/model/restaurant"
	"github.com/beliemun/uber-backend/internal/core/domain/model/user"
	"github.com/beliemun/uber-backend/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(_ context.Context, _ *order.Order) error {
	panic("not used by queries")
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(_ context.Context, _ kernel.UUID, _ order.Status) error {
	panic("not used by queries")
}

func (m *MockOrderRepository) AssignDriver(_ context.Context, _, _ kernel.UUID) error {
	panic("not used by queries")
}

func (m *MockOrderRepository) FindByCustomer(
	ctx context.Context, customerID kernel.UUID, filter ports.OrderFilter,
) ([]*order.Order, error) {
	args := m.Called(ctx, customerID, filter)
	o, _ := args.Get(0).([]*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) FindByDriver(
	ctx context.Context, driverID kernel.UUID, filter ports.OrderFilter,
) ([]*order.Order, error) {
	args := m.Called(ctx, driverID, filter)
	o, _ := args.Get(0).([]*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) FindByOwner(
	ctx context.Context, ownerID kernel.UUID, filter ports.OrderFilter,
) ([]*order.Order, error) {
	args := m.Called(ctx, ownerID, filter)
	o, _ := args.Get(0).([]*order.Order)
	return o, args.Error(1)
}

type MockRestaurantRepository struct{ mock.Mock }

func (m *MockRestaurantRepository) Add(_ context.Context, _ *restaurant.Restaurant) error {
	panic("not used by queries")
}

func (m *MockRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*restaurant.Restaurant)
	return r, args.Error(1)
}

func (m *MockRestaurantRepository) List(
	ctx context.Context, filter ports.RestaurantFilter,
) ([]*restaurant.Restaurant, int, error) {
	args := m.Called(ctx, filter)
	r, _ := args.Get(0).([]*restaurant.Restaurant)
	return r, args.Int(1), args.Error(2)
}

type MockDishRepository struct{ mock.Mock }

func (m *MockDishRepository) Add(_ context.Context, _ *restaurant.Dish) error {
	panic("not used by queries")
}

func (m *MockDishRepository) Get(_ context.Context, _ kernel.UUID) (*restaurant.Dish, error) {
	panic("not used by queries")
}

func (m *MockDishRepository) GetMany(
	_ context.Context, _ []kernel.UUID,
) (map[kernel.UUID]*restaurant.Dish, error) {
	panic("not used by queries")
}

func (m *MockDishRepository) FindByRestaurant(
	ctx context.Context, restaurantID kernel.UUID,
) ([]*restaurant.Dish, error) {
	args := m.Called(ctx, restaurantID)
	d, _ := args.Get(0).([]*restaurant.Dish)
	return d, args.Error(1)
}

func (m *MockDishRepository) Update(_ context.Context, _ *restaurant.Dish) error {
	panic("not used by queries")
}

func (m *MockDishRepository) Delete(_ context.Context, _ kernel.UUID) error {
	panic("not used by queries")
}

func mustUser(t *testing.T, role user.Role) *user.User {
	t.Helper()
	u, err := user.NewUser(kernel.NewUUID(), role)
	require.NoError(t, err)
	return u
}

func storedOrder(t *testing.T, customerID, ownerID kernel.UUID, driverID *kernel.UUID) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), nil)
	require.NoError(t, err)
	o, err := order.RestoreOrder(kernel.NewUUID(), customerID, kernel.NewUUID(), ownerID, driverID,
		[]order.Item{item}, decimal.NewFromInt(9), order.Pending, time.Now())
	require.NoError(t, err)
	return o
}
