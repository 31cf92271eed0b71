// Package order provides domain entities and business logic for order
// management in the order-intake system. It implements the Order aggregate
// root with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root managing identity, items, delivery booking, and lifecycle
//   - Item: A value object for a single ordered product line
//   - Status: A state machine enforcing valid fulfillment transitions
//   - Source: The closed enumeration of intake channels
//
// Key business rules:
//   - Orders must have a valid identifier, a customer name, and at least one item
//   - The persisted total price always equals the sum of item subtotals
//   - Status follows pending -> in_production -> ready -> delivered, with
//     cancellation possible from every non-terminal status
//   - Delivered and cancelled are terminal; cancelled orders release their
//     units from the delivery date's occupancy
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
