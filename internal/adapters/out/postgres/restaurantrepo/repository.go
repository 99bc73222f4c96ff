package restaurantrepo

import (
	"context"
	"errors"
	"strings"

	"github.com/beliemun/uber-backend/internal/core/domain/model/kernel"
	"github.com/beliemun/uber-backend/internal/core/domain/model/restaurant"
	"github.com/beliemun/uber-backend/internal/core/ports"
	"github.com/beliemun/uber-backend/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	_ ports.RestaurantRepository = (*GormRestaurantRepository)(nil)
	_ ports.DishRepository       = (*GormDishRepository)(nil)
)

type GormRestaurantRepository struct {
	db *gorm.DB
}

func NewGormRestaurantRepository(db *gorm.DB) *GormRestaurantRepository {
	return &GormRestaurantRepository{db: db}
}

func (r *GormRestaurantRepository) Add(ctx context.Context, aggregate *restaurant.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := restaurantFromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Google()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurantID", id)
		}
		return nil, err
	}

	return restaurantToDomain(dto)
}

// List pages with LIMIT/OFFSET. The name filter is an ILIKE with the
// pattern characters escaped.
func (r *GormRestaurantRepository) List(
	ctx context.Context, filter ports.RestaurantFilter,
) ([]*restaurant.Restaurant, int, error) {
	matching := func(db *gorm.DB) *gorm.DB {
		if name := strings.TrimSpace(filter.Name); name != "" {
			return db.Where("name ILIKE ?", "%"+likeEscaper.Replace(name)+"%")
		}
		return db
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&RestaurantDTO{}).Scopes(matching).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var dtos []RestaurantDTO
	if err := r.db.WithContext(ctx).Scopes(matching).
		Order("name, id").
		Limit(ports.RestaurantPageSize).
		Offset(filter.Offset()).
		Find(&dtos).Error; err != nil {
		return nil, 0, err
	}

	page := make([]*restaurant.Restaurant, 0, len(dtos))
	for _, dto := range dtos {
		rest, err := restaurantToDomain(dto)
		if err != nil {
			return nil, 0, err
		}
		page = append(page, rest)
	}

	return page, int(total), nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

type GormDishRepository struct {
	db *gorm.DB
}

func NewGormDishRepository(db *gorm.DB) *GormDishRepository {
	return &GormDishRepository{db: db}
}

func (r *GormDishRepository) Add(ctx context.Context, aggregate *restaurant.Dish) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := dishFromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormDishRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Dish, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DishDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Google()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dishID", id)
		}
		return nil, err
	}

	return dishToDomain(dto)
}

// GetMany loads all requested dishes in one query.
func (r *GormDishRepository) GetMany(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]*restaurant.Dish, error) {
	dishes := make(map[kernel.UUID]*restaurant.Dish, len(ids))
	if len(ids) == 0 {
		return dishes, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Google())
	}

	var dtos []DishDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", raw).Find(&dtos).Error; err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		d, err := dishToDomain(dto)
		if err != nil {
			return nil, err
		}
		dishes[d.ID()] = d
	}

	return dishes, nil
}

func (r *GormDishRepository) FindByRestaurant(
	ctx context.Context, restaurantID kernel.UUID,
) ([]*restaurant.Dish, error) {
	var dtos []DishDTO
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID.Google()).
		Order("name, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	menu := make([]*restaurant.Dish, 0, len(dtos))
	for _, dto := range dtos {
		d, err := dishToDomain(dto)
		if err != nil {
			return nil, err
		}
		menu = append(menu, d)
	}

	return menu, nil
}

// Update rewrites every column except the restaurant, which never changes.
func (r *GormDishRepository) Update(ctx context.Context, aggregate *restaurant.Dish) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := dishFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DishDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "price", "description", "options").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("dishID", aggregate.ID())
	}
	return nil
}

func (r *GormDishRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&DishDTO{}, "id = ?", id.Google())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("dishID", id)
	}
	return nil
}
