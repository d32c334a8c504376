// Package order provides domain entities and business logic for customer
// order management. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, line items, totals, and lifecycle
//   - Item: A line item entity owned exclusively by its order
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a valid unique identifier and a non-empty customer identifier
//   - totalAmount always equals the sum of quantity × unitPrice over all items
//   - Order status follows a defined workflow: Draft -> Confirmed or Draft -> Cancelled
//   - Items can only be added or removed while the order is in Draft status
//   - Confirmed and Cancelled are terminal states
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
