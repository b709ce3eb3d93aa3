// Package order provides domain entities and business logic for manufacturing
// order management in the atelier workflow. It implements the Order aggregate
// root with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, workflow state, and history
//   - Status: A state machine that enforces valid order status transitions
//   - Details: A value object describing the piece being made
//   - Stamp: An audit record of who performed a workflow step and when
//   - Rejection: A permanent record of a craftsman's refusal
//
// Key business rules:
//   - Orders must have a valid unique identifier, order number, and details
//   - Order status follows the screening, approval, verification, assignment,
//     and completion workflow; each step is stamped for audit
//   - Craftsman operations are owner-only: only the assigned craftsman may
//     accept, reject, or report completion
//   - Rejections are cumulative: a craftsman who rejected an order, or anyone
//     sharing that craftsman's partner code, is never assigned to it again
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
