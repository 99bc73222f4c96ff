package http

import (
	"net/http"

	"github.com/beliemun/uber-backend/internal/core/application/auth"
	"github.com/beliemun/uber-backend/internal/core/application/usecases/commands"
	"github.com/beliemun/uber-backend/internal/core/application/usecases/queries"
	"github.com/beliemun/uber-backend/internal/core/domain/model/kernel"
	"github.com/beliemun/uber-backend/internal/core/domain/model/restaurant"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type (
	CreateRestaurantRequest struct {
		Name    string `json:"name"`
		Address string `json:"address"`
	}

	Choice struct {
		Name  string          `json:"name"`
		Extra decimal.Decimal `json:"extra"`
	}

	DishOption struct {
		Name    string          `json:"name"`
		Extra   decimal.Decimal `json:"extra"`
		Choices []Choice        `json:"choices"`
	}

	CreateDishRequest struct {
		Name        string          `json:"name"`
		Price       decimal.Decimal `json:"price"`
		Description string          `json:"description"`
		Options     []DishOption    `json:"options"`
	}

	// EditDishRequest changes only the fields present in the body.
	EditDishRequest struct {
		Name        *string          `json:"name"`
		Price       *decimal.Decimal `json:"price"`
		Description *string          `json:"description"`
		Options     *[]DishOption    `json:"options"`
	}

	Restaurant struct {
		ID      kernel.UUID `json:"id"`
		OwnerID kernel.UUID `json:"ownerId"`
		Name    string      `json:"name"`
		Address string      `json:"address"`
	}

	Dish struct {
		ID           kernel.UUID     `json:"id"`
		RestaurantID kernel.UUID     `json:"restaurantId"`
		Name         string          `json:"name"`
		Price        decimal.Decimal `json:"price"`
		Description  string          `json:"description"`
		Options      []DishOption    `json:"options"`
	}

	RestaurantWithMenu struct {
		Restaurant
		Menu []Dish `json:"menu"`
	}
)

// GetRestaurants handles GET /api/v1/restaurants.
func (s *Server) GetRestaurants(c echo.Context) error {
	op := auth.GetRestaurants.Name

	name, page, err := restaurantsQuery(c)
	if err != nil {
		return s.fail(c, op, err)
	}

	q, err := queries.NewGetRestaurantsQuery(name, page)
	if err != nil {
		return s.fail(c, op, err)
	}

	result, err := s.handlers.GetRestaurants.Handle(c.Request().Context(), q)
	if err != nil {
		return s.fail(c, op, err)
	}

	restaurants := make([]Restaurant, 0, len(result.Restaurants))
	for _, r := range result.Restaurants {
		restaurants = append(restaurants, toRestaurant(r))
	}

	return c.JSON(http.StatusOK, RestaurantsResponse{
		OK:          true,
		Restaurants: restaurants,
		TotalItems:  result.TotalItems,
		TotalPages:  result.TotalPages,
	})
}

// GetRestaurant handles GET /api/v1/restaurants/:id.
func (s *Server) GetRestaurant(c echo.Context) error {
	op := auth.GetRestaurant.Name

	restaurantID, err := pathID(c)
	if err != nil {
		return s.fail(c, op, err)
	}

	q, err := queries.NewGetRestaurantQuery(restaurantID)
	if err != nil {
		return s.fail(c, op, err)
	}

	result, err := s.handlers.GetRestaurant.Handle(c.Request().Context(), q)
	if err != nil {
		return s.fail(c, op, err)
	}

	menu := make([]Dish, 0, len(result.Dishes))
	for _, d := range result.Dishes {
		menu = append(menu, toDish(d))
	}

	return c.JSON(http.StatusOK, RestaurantResponse{
		OK:         true,
		Restaurant: RestaurantWithMenu{Restaurant: toRestaurant(result.Restaurant), Menu: menu},
	})
}

// CreateRestaurant handles POST /api/v1/restaurants.
func (s *Server) CreateRestaurant(c echo.Context) error {
	op := auth.CreateRestaurant.Name

	owner, err := viewer(c)
	if err != nil {
		return s.fail(c, op, err)
	}

	var req CreateRestaurantRequest
	if err := bindBody(c, &req); err != nil {
		return s.fail(c, op, err)
	}

	restaurantID := s.newID()
	cmd, err := commands.NewCreateRestaurantCommand(restaurantID, owner.ID(), req.Name, req.Address)
	if err != nil {
		return s.fail(c, op, err)
	}

	if err := s.handlers.CreateRestaurant.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, op, err)
	}

	return c.JSON(http.StatusCreated, CreateRestaurantResponse{OK: true, RestaurantID: restaurantID})
}

// CreateDish handles POST /api/v1/restaurants/:id/dishes.
func (s *Server) CreateDish(c echo.Context) error {
	op := auth.CreateDish.Name

	owner, err := viewer(c)
	if err != nil {
		return s.fail(c, op, err)
	}

	restaurantID, err := pathID(c)
	if err != nil {
		return s.fail(c, op, err)
	}

	var req CreateDishRequest
	if err := bindBody(c, &req); err != nil {
		return s.fail(c, op, err)
	}

	dishID := s.newID()
	cmd, err := commands.NewCreateDishCommand(dishID, owner.ID(), restaurantID,
		req.Name, req.Price, req.Description, fromDishOptions(req.Options))
	if err != nil {
		return s.fail(c, op, err)
	}

	if err := s.handlers.CreateDish.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, op, err)
	}

	return c.JSON(http.StatusCreated, CreateDishResponse{OK: true, DishID: dishID})
}

// EditDish handles PATCH /api/v1/dishes/:id.
func (s *Server) EditDish(c echo.Context) error {
	op := auth.EditDish.Name

	owner, err := viewer(c)
	if err != nil {
		return s.fail(c, op, err)
	}

	dishID, err := pathID(c)
	if err != nil {
		return s.fail(c, op, err)
	}

	var req EditDishRequest
	if err := bindBody(c, &req); err != nil {
		return s.fail(c, op, err)
	}

	patch := restaurant.DishPatch{Name: req.Name, Price: req.Price, Description: req.Description}
	if req.Options != nil {
		options := fromDishOptions(*req.Options)
		patch.Options = &options
	}

	cmd, err := commands.NewEditDishCommand(owner.ID(), dishID, patch)
	if err != nil {
		return s.fail(c, op, err)
	}

	dish, err := s.handlers.EditDish.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, op, err)
	}

	return c.JSON(http.StatusOK, DishResponse{OK: true, Dish: toDish(dish)})
}

// DeleteDish handles DELETE /api/v1/dishes/:id.
func (s *Server) DeleteDish(c echo.Context) error {
	op := auth.DeleteDish.Name

	owner, err := viewer(c)
	if err != nil {
		return s.fail(c, op, err)
	}

	dishID, err := pathID(c)
	if err != nil {
		return s.fail(c, op, err)
	}

	cmd, err := commands.NewDeleteDishCommand(owner.ID(), dishID)
	if err != nil {
		return s.fail(c, op, err)
	}

	if err := s.handlers.DeleteDish.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, op, err)
	}

	return c.JSON(http.StatusOK, OK{OK: true})
}

func fromDishOptions(in []DishOption) []restaurant.Option {
	options := make([]restaurant.Option, 0, len(in))
	for _, o := range in {
		choices := make([]restaurant.Choice, 0, len(o.Choices))
		for _, ch := range o.Choices {
			choices = append(choices, restaurant.Choice{Name: ch.Name, Extra: ch.Extra})
		}
		options = append(options, restaurant.Option{Name: o.Name, Extra: o.Extra, Choices: choices})
	}
	return options
}

func toRestaurant(r *restaurant.Restaurant) Restaurant {
	return Restaurant{ID: r.ID(), OwnerID: r.OwnerID(), Name: r.Name(), Address: r.Address()}
}

func toDish(d *restaurant.Dish) Dish {
	options := make([]DishOption, 0, len(d.Options()))
	for _, o := range d.Options() {
		choices := make([]Choice, 0, len(o.Choices))
		for _, ch := range o.Choices {
			choices = append(choices, Choice{Name: ch.Name, Extra: ch.Extra})
		}
		options = append(options, DishOption{Name: o.Name, Extra: o.Extra, Choices: choices})
	}

	return Dish{
		ID:           d.ID(),
		RestaurantID: d.RestaurantID(),
		Name:         d.Name(),
		Price:        d.Price(),
		Description:  d.Description(),
		Options:      options,
	}
}
