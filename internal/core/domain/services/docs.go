// Package services holds the stateless domain rules of the ordering workflow.
//
// OrderPolicy answers who may see an order and which target status a role
// may set. OrderPricer computes the immutable total of a new order from the
// dish catalogue. Neither touches storage nor publishes events; the
// application layer orchestrates that around them.
package services
