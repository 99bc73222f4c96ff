// Package orderrepo maps order aggregates to the "orders" table. Items are
// written once at creation and kept as a JSONB column next to the row.
package orderrepo

import (
	"time"

	"github.com/beliemun/uber-backend/internal/core/domain/model/kernel"
	"github.com/beliemun/uber-backend/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderDTO is one row of the orders table. OwnerID is denormalized from the
// restaurant so owner listings need no join.
type OrderDTO struct {
	ID           uuid.UUID                    `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID                    `gorm:"type:uuid;not null;index"`
	RestaurantID uuid.UUID                    `gorm:"type:uuid;not null;index"`
	OwnerID      uuid.UUID                    `gorm:"type:uuid;not null;index"`
	DriverID     *uuid.UUID                   `gorm:"type:uuid;index"`
	Items        datatypes.JSONSlice[ItemDTO] `gorm:"not null"`
	TotalPrice   decimal.Decimal              `gorm:"type:numeric(12,2);not null"`
	Status       int                          `gorm:"not null;index"`
	CreatedAt    time.Time                    `gorm:"not null;index"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type ItemDTO struct {
	DishID  uuid.UUID       `json:"dishId"`
	Options []ItemOptionDTO `json:"options,omitempty"`
}

type ItemOptionDTO struct {
	Name   string `json:"name"`
	Choice string `json:"choice,omitempty"`
}

func fromDomain(o *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := o.DriverID(); id != nil {
		raw := id.Google()
		driverID = &raw
	}

	items := make([]ItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		options := make([]ItemOptionDTO, 0, len(item.Options()))
		for _, opt := range item.Options() {
			options = append(options, ItemOptionDTO{Name: opt.Name, Choice: opt.Choice})
		}
		items = append(items, ItemDTO{DishID: item.DishID().Google(), Options: options})
	}

	return OrderDTO{
		ID:           o.ID().Google(),
		CustomerID:   o.CustomerID().Google(),
		RestaurantID: o.RestaurantID().Google(),
		OwnerID:      o.OwnerID().Google(),
		DriverID:     driverID,
		Items:        datatypes.NewJSONSlice(items),
		TotalPrice:   o.TotalPrice(),
		Status:       int(o.Status()),
		CreatedAt:    o.CreatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	ids := make([]kernel.UUID, 0, 4)
	for _, raw := range []uuid.UUID{dto.ID, dto.CustomerID, dto.RestaurantID, dto.OwnerID} {
		id, err := kernel.UUIDFromGoogle(raw)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		id, err := kernel.UUIDFromGoogle(*dto.DriverID)
		if err != nil {
			return nil, err
		}
		driverID = &id
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		dishID, err := kernel.UUIDFromGoogle(itemDTO.DishID)
		if err != nil {
			return nil, err
		}
		options := make([]order.ItemOption, 0, len(itemDTO.Options))
		for _, opt := range itemDTO.Options {
			options = append(options, order.ItemOption{Name: opt.Name, Choice: opt.Choice})
		}
		item, err := order.NewItem(dishID, options)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.RestoreOrder(ids[0], ids[1], ids[2], ids[3], driverID,
		items, dto.TotalPrice, order.Status(dto.Status), dto.CreatedAt)
}
