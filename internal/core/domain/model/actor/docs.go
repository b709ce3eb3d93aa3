// Package actor defines who calls the workflow: the Actor value object and the
// Role enumeration. Every mutating operation receives an Actor and is gated on
// its Role by the transition policy; craftsman ownership checks additionally
// compare the actor's id against the order's assigned craftsman.
//
// The package owns no persistence. Actors are constructed per request from
// transport-level identity headers and discarded afterwards.
package actor
