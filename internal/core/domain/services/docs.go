// Package services provides domain services that implement business rules
// spanning more than one aggregate in the atelier workflow. It implements
// logic that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - TransitionPolicy: The role-to-transition authorization table consulted
//     by every mutating handler before any order state is read
//
// Domain services stay free of infrastructure concerns; they operate on
// domain model types only, following Domain-Driven Design principles.
package services
