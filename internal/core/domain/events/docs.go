// Package events defines the order notifications fanned out over the event
// bus: the three topics, the OrderEvent envelope and the filter each kind of
// subscriber registers with.
//
//	PENDING_ORDER  new order          -> Owner of the restaurant
//	COOKED_ORDER   Owner set Cooked   -> every Driver
//	UPDATE_ORDER   any edit or take   -> customer, driver, owner watching that order
package events
