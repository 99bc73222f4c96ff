// Package order provides the Order aggregate and its lifecycle status.
//
// An order is placed by a Client against one restaurant and walks this path:
//
//	Pending -> Cooking -> Cooked -> PickedUp -> Delivered
//	└─ Owner sets ─┘        └─ Driver sets ─┘
//
// Which role may set which target status is decided by services.OrderPolicy.
// The aggregate itself only guards what holds regardless of the caller:
//   - items and total price are fixed at creation
//   - the driver is assigned at most once (Take)
//   - the status is always one of the five known values
package order
