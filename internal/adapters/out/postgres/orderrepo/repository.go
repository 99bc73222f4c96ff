package orderrepo

import (
	"context"
	"errors"

	"github.com/beliemun/uber-backend/internal/core/domain/model/kernel"
	"github.com/beliemun/uber-backend/internal/core/domain/model/order"
	"github.com/beliemun/uber-backend/internal/core/ports"
	"github.com/beliemun/uber-backend/internal/pkg/errs"

	"gorm.io/gorm"
)

var _ ports.OrderRepository = (*GormOrderRepository)(nil)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order with its items in a single insert.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Google()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderID", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateStatus writes only the status column.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, id kernel.UUID, status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", id.Google()).
		Update("status", int(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderID", id)
	}
	return nil
}

// AssignDriver is a compare-and-swap on driver_id: the update only matches
// while the column is still NULL. When nothing matched, a second read tells
// a missing order from a lost race.
func (r *GormOrderRepository) AssignDriver(ctx context.Context, id, driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	result := db.Model(&OrderDTO{}).
		Where("id = ? AND driver_id IS NULL", id.Google()).
		Update("driver_id", driverID.Google())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 1 {
		return nil
	}

	var count int64
	if err := db.Model(&OrderDTO{}).Where("id = ?", id.Google()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("orderID", id)
	}
	return order.NewDriverAlreadyAssignedError(id)
}

func (r *GormOrderRepository) FindByCustomer(
	ctx context.Context, customerID kernel.UUID, filter ports.OrderFilter,
) ([]*order.Order, error) {
	return r.find(ctx, "customer_id = ?", customerID, filter)
}

func (r *GormOrderRepository) FindByDriver(
	ctx context.Context, driverID kernel.UUID, filter ports.OrderFilter,
) ([]*order.Order, error) {
	return r.find(ctx, "driver_id = ?", driverID, filter)
}

func (r *GormOrderRepository) FindByOwner(
	ctx context.Context, ownerID kernel.UUID, filter ports.OrderFilter,
) ([]*order.Order, error) {
	return r.find(ctx, "owner_id = ?", ownerID, filter)
}

func (r *GormOrderRepository) find(
	ctx context.Context, where string, partyID kernel.UUID, filter ports.OrderFilter,
) ([]*order.Order, error) {
	query := r.db.WithContext(ctx).Where(where, partyID.Google())
	if filter.Status != order.Unknown {
		query = query.Where("status = ?", int(filter.Status))
	}

	var dtos []OrderDTO
	if err := query.Order("created_at, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
