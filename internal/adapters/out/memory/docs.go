// Package memory keeps users, the restaurant catalogue and orders in process
// memory. It implements the same ports as the postgres adapter and backs the
// "memory" storage driver and the acceptance tests.
//
// Stored aggregates are never mutated in place. A write replaces the stored
// pointer with a changed copy, so readers holding an earlier result are
// unaffected.
//
// A unit of work reads the live tables through an overlay that holds its own
// writes. Commit takes the store's write lock only long enough to re-run the
// buffered writes against the live tables; if one of them no longer holds,
// nothing is applied. Transactions on different orders never wait for each
// other. Repositories obtained outside a transaction lock the store per call.
package memory
