// Package kernel holds the identifier type shared by every aggregate of the
// ordering domain: users, restaurants, dishes and orders.
//
// UUID wraps github.com/google/uuid. Its zero value is invalid, so an ID that
// was never assigned is caught by Validate before it reaches a repository or
// an event.
package kernel
