// Package auth resolves the caller behind a bearer credential and decides
// whether they may run an operation.
//
// Every operation is described by an Operation value carrying its required
// role set. The Guard reads that value directly:
//
//	ctx, err := guard.Authorize(ctx, auth.TakeOrder, bearer)
//	if err != nil {
//	    return err // UnauthenticatedError or ForbiddenError
//	}
//	u, _ := auth.UserFromContext(ctx)
//
// The resolved user travels in the returned context, so handlers never
// re-resolve it.
package auth
