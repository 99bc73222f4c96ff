// Package queries contains the read operations. Order results are scoped to
// what the viewer may see: a viewer never receives an order outside their
// own customer, owner or driver relation to it. The restaurant catalogue is
// readable by every authenticated role.
package queries
