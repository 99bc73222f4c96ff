package auth

import (
	"slices"

	"github.com/beliemun/uber-backend/internal/core/domain/model/user"
)

// Requirement is one entry of an operation's role set.
type Requirement string

const (
	RequireClient Requirement = "Client"
	RequireOwner  Requirement = "Owner"
	RequireDriver Requirement = "Driver"
	// RequireAny admits every authenticated role. It does not admit anonymous callers.
	RequireAny Requirement = "Any"
)

// Operation names a gated entry point and the roles allowed to call it.
// An empty role set makes it public.
type Operation struct {
	Name  string
	Roles []Requirement
}

// IsPublic reports whether the operation needs no credential.
func (o Operation) IsPublic() bool {
	return len(o.Roles) == 0
}

// Admits reports whether role satisfies the operation's role set.
func (o Operation) Admits(role user.Role) bool {
	if role.Validate() != nil {
		return false
	}
	if slices.Contains(o.Roles, RequireAny) {
		return true
	}
	return slices.Contains(o.Roles, Requirement(role.String()))
}

var (
	CreateOrder      = Operation{Name: "createOrder", Roles: []Requirement{RequireClient}}
	GetOrders        = Operation{Name: "getOrders", Roles: []Requirement{RequireAny}}
	GetOrder         = Operation{Name: "getOrder", Roles: []Requirement{RequireAny}}
	EditOrder        = Operation{Name: "editOrder", Roles: []Requirement{RequireAny}}
	TakeOrder        = Operation{Name: "takeOrder", Roles: []Requirement{RequireDriver}}
	CreateRestaurant = Operation{Name: "createRestaurant", Roles: []Requirement{RequireOwner}}
	CreateDish       = Operation{Name: "createDish", Roles: []Requirement{RequireOwner}}
	EditDish         = Operation{Name: "editDish", Roles: []Requirement{RequireOwner}}
	DeleteDish       = Operation{Name: "deleteDish", Roles: []Requirement{RequireOwner}}
	GetRestaurants   = Operation{Name: "getRestaurants", Roles: []Requirement{RequireAny}}
	GetRestaurant    = Operation{Name: "getRestaurant", Roles: []Requirement{RequireAny}}
	PendingOrders    = Operation{Name: "pendingOrders", Roles: []Requirement{RequireOwner}}
	CookedOrders     = Operation{Name: "cookedOrders", Roles: []Requirement{RequireDriver}}
	OrderUpdates     = Operation{Name: "orderUpdates", Roles: []Requirement{RequireAny}}
	Health           = Operation{Name: "health"}
)

// Operations returns the full operation catalogue.
func Operations() []Operation {
	return []Operation{
		CreateOrder, GetOrders, GetOrder, EditOrder, TakeOrder,
		CreateRestaurant, CreateDish, EditDish, DeleteDish,
		GetRestaurants, GetRestaurant,
		PendingOrders, CookedOrders, OrderUpdates,
		Health,
	}
}
