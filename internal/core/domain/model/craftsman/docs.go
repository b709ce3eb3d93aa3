// Package craftsman provides the business-partner directory entry referenced
// by the order workflow. It implements the Craftsman aggregate root that
// carries directory identity and the partner's workflow role.
//
// The package includes:
//   - Craftsman: The aggregate root carrying id, partner code, business name, and role
//
// Key business rules:
//   - Craftsmen must have a valid unique identifier, partner code, and business name
//   - Orders reference craftsmen by id only; directory data is never embedded
//   - Reassignment exclusion operates on partner codes, so duplicated directory
//     entries sharing a code count as one partner
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package craftsman
