// Package restaurant provides the Restaurant aggregate and its MenuItem entity.
//
// The package includes:
//   - MenuItem: a named dish with a strictly positive price
//   - Restaurant: the aggregate root owning a menu and an order capacity
//
// Key business rules:
//   - Restaurant names and item names are non-blank identities
//   - Adding an item with an existing name overwrites it (last write wins)
//   - The number of accepted orders never exceeds the restaurant's capacity
//   - Menus are only exposed as copies
package restaurant
