// Package restaurant models the catalogue orders are placed against.
//
// A Restaurant belongs to exactly one Owner. A Dish belongs to exactly one
// Restaurant and carries an option catalogue:
//
//	Dish "Pizza" 10.00
//	├── Option "Size"
//	│   ├── Choice "Small"  +0
//	│   └── Choice "Large"  +2
//	└── Option "Extra cheese" +1.50   (flat extra, no choices)
//
// Dish.OptionExtra resolves a chosen option against this catalogue. Order
// pricing is built on top of it in the services package.
package restaurant
