// Package order provides the Order aggregate of the dispatch system: a customer's
// request for menu items together with its lifecycle.
//
// The package includes:
//   - Order: The aggregate root holding the request snapshot, the accepting
//     restaurant and the priced total
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders carry a positive id, a non-blank customer and at least one item
//   - Order status follows Pending -> Accepted -> Completed, or Pending -> Rejected
//   - Acceptance reserves capacity at the restaurant and completion releases it
//   - An order only ever reads its restaurant's menu; it never owns the restaurant
package order
