// Package ports declares the contracts the application core depends on:
// persistence (repositories and the unit of work), the order event bus and
// the token collaborator. Adapters under internal/adapters implement them.
package ports
