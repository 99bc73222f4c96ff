// Package errs provides the error taxonomy shared by the domain, application
// and adapter layers.
//
// Every kind follows the same pattern:
//   - a sentinel (ErrObjectNotFound, ErrForbidden, ...) usable with errors.Is
//   - a struct carrying the failing parameter or reason and an optional cause
//   - NewX and NewXWithCause constructors
//   - Unwrap returning the sentinel
//
// The kinds map onto the failures callers must tell apart:
//   - ObjectNotFoundError: a restaurant, dish, user or order does not exist
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: malformed input
//   - UnauthenticatedError: the credential is missing, invalid or names no user
//   - ForbiddenError: the role or ownership check failed
//   - ConflictError: the write lost a race (e.g. a driver already claimed the order)
package errs
