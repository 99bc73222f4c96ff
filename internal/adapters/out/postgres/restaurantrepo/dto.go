// Package restaurantrepo persists the restaurant catalogue: restaurants and
// their dishes. A dish's option list is stored as JSONB on the dish row.
package restaurantrepo

import (
	"github.com/beliemun/uber-backend/internal/core/domain/model/kernel"
	"github.com/beliemun/uber-backend/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type RestaurantDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name    string    `gorm:"type:varchar(100);not null"`
	Address string    `gorm:"type:varchar(255)"`
}

func (RestaurantDTO) TableName() string {
	return "restaurants"
}

type DishDTO struct {
	ID           uuid.UUID                      `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID                      `gorm:"type:uuid;not null;index"`
	Name         string                         `gorm:"type:varchar(100);not null"`
	Price        decimal.Decimal                `gorm:"type:numeric(12,2);not null"`
	Description  string                         `gorm:"type:varchar(200);not null"`
	Options      datatypes.JSONSlice[OptionDTO] `gorm:"not null"`
}

func (DishDTO) TableName() string {
	return "dishes"
}

type OptionDTO struct {
	Name    string          `json:"name"`
	Extra   decimal.Decimal `json:"extra"`
	Choices []ChoiceDTO     `json:"choices,omitempty"`
}

type ChoiceDTO struct {
	Name  string          `json:"name"`
	Extra decimal.Decimal `json:"extra"`
}

func restaurantFromDomain(r *restaurant.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:      r.ID().Google(),
		OwnerID: r.OwnerID().Google(),
		Name:    r.Name(),
		Address: r.Address(),
	}
}

func restaurantToDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromGoogle(dto.OwnerID)
	if err != nil {
		return nil, err
	}
	return restaurant.NewRestaurant(id, ownerID, dto.Name, dto.Address)
}

func dishFromDomain(d *restaurant.Dish) DishDTO {
	options := make([]OptionDTO, 0, len(d.Options()))
	for _, o := range d.Options() {
		choices := make([]ChoiceDTO, 0, len(o.Choices))
		for _, c := range o.Choices {
			choices = append(choices, ChoiceDTO{Name: c.Name, Extra: c.Extra})
		}
		options = append(options, OptionDTO{Name: o.Name, Extra: o.Extra, Choices: choices})
	}

	return DishDTO{
		ID:           d.ID().Google(),
		RestaurantID: d.RestaurantID().Google(),
		Name:         d.Name(),
		Price:        d.Price(),
		Description:  d.Description(),
		Options:      datatypes.NewJSONSlice(options),
	}
}

func dishToDomain(dto DishDTO) (*restaurant.Dish, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromGoogle(dto.RestaurantID)
	if err != nil {
		return nil, err
	}

	options := make([]restaurant.Option, 0, len(dto.Options))
	for _, o := range dto.Options {
		var choices []restaurant.Choice
		for _, c := range o.Choices {
			choices = append(choices, restaurant.Choice{Name: c.Name, Extra: c.Extra})
		}
		options = append(options, restaurant.Option{Name: o.Name, Extra: o.Extra, Choices: choices})
	}

	return restaurant.NewDish(id, restaurantID, dto.Name, dto.Price, dto.Description, options)
}
