package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/beliemun/uber-backend/internal/core/application/usecases/commands"
	"github.com/beliemun/uber-backend/internal/core/domain/events"
	"github.com/beliemun/uber-backend/internal/core/domain/model/kernel"
	"github.com/beliemun/uber-backend/internal/core/domain/model/order"
	"github.com/beliemun/uber-backend/internal/core/domain/model/restaurant"
	"github.com/beliemun/uber-backend/internal/core/domain/model/user"
	"github.com/beliemun/uber-backend/internal/core/ports"
	"github.com/beliemun/uber-backend/internal/pkg/pubsub"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id kernel.UUID, status order.Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockOrderRepository) AssignDriver(ctx context.Context, id, driverID kernel.UUID) error {
	args := m.Called(ctx, id, driverID)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByCustomer(
	_ context.Context, _ kernel.UUID, _ ports.OrderFilter,
) ([]*order.Order, error) {
	panic("not used by commands")
}

func (m *MockOrderRepository) FindByDriver(
	_ context.Context, _ kernel.UUID, _ ports.OrderFilter,
) ([]*order.Order, error) {
	panic("not used by commands")
}

func (m *MockOrderRepository) FindByOwner(
	_ context.Context, _ kernel.UUID, _ ports.OrderFilter,
) ([]*order.Order, error) {
	panic("not used by commands")
}

type MockRestaurantRepository struct{ mock.Mock }

func (m *MockRestaurantRepository) Add(ctx context.Context, r *restaurant.Restaurant) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*restaurant.Restaurant)
	return r, args.Error(1)
}

func (m *MockRestaurantRepository) List(
	_ context.Context, _ ports.RestaurantFilter,
) ([]*restaurant.Restaurant, int, error) {
	panic("not used by commands")
}

type MockDishRepository struct{ mock.Mock }

func (m *MockDishRepository) Add(ctx context.Context, d *restaurant.Dish) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDishRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Dish, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*restaurant.Dish)
	return d, args.Error(1)
}

func (m *MockDishRepository) GetMany(
	ctx context.Context, ids []kernel.UUID,
) (map[kernel.UUID]*restaurant.Dish, error) {
	args := m.Called(ctx, ids)
	d, _ := args.Get(0).(map[kernel.UUID]*restaurant.Dish)
	return d, args.Error(1)
}

func (m *MockDishRepository) FindByRestaurant(_ context.Context, _ kernel.UUID) ([]*restaurant.Dish, error) {
	panic("not used by commands")
}

func (m *MockDishRepository) Update(ctx context.Context, d *restaurant.Dish) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDishRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUoW satisfies every unit-of-work flavour the handlers use.
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

func (m *MockUoW) RestaurantRepository() ports.RestaurantRepository {
	args := m.Called()
	return args.Get(0).(ports.RestaurantRepository)
}

func (m *MockUoW) DishRepository() ports.DishRepository {
	args := m.Called()
	return args.Get(0).(ports.DishRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	args := m.Called()
	return args.Get(0).(commands.CatalogUoW)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, topic pubsub.Topic, event events.OrderEvent) int {
	args := m.Called(ctx, topic, event)
	return args.Int(0)
}

func mustUser(t *testing.T, role user.Role) *user.User {
	t.Helper()
	u, err := user.NewUser(kernel.NewUUID(), role)
	require.NoError(t, err)
	return u
}

func mustItem(t *testing.T, dishID kernel.UUID, options ...order.ItemOption) order.Item {
	t.Helper()
	item, err := order.NewItem(dishID, options)
	require.NoError(t, err)
	return item
}

// storedOrder builds an order the way a repository would return it.
func storedOrder(
	t *testing.T,
	id, customerID, ownerID kernel.UUID,
	driverID *kernel.UUID,
	status order.Status,
) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(id, customerID, kernel.NewUUID(), ownerID, driverID,
		[]order.Item{mustItem(t, kernel.NewUUID())}, decimal.NewFromInt(12), status, time.Now())
	require.NoError(t, err)
	return o
}

func eventWithStatus(status string) any {
	return mock.MatchedBy(func(e events.OrderEvent) bool { return e.Status == status })
}
