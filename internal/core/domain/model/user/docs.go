// Package user defines the caller identity used by authorization: a user ID
// and exactly one Role (Client, Owner or Driver).
package user
