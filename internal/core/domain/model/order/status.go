package order

import (
	"fmt"

	"atelier/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	PendingVerification ──> Pending ──> InProcessAwaitingAdmin ──> Verified ──> Assigned
//	        │                                      │                               │
//	        v                                      v                    ┌──────────┼──────────────┐
//	     Declined                            AdminRejected              v          v              v
//	                                                          InProcessByCraftsman Rejected CompletedByCraftsman
//	                                                                    │          │              │
//	                                                                    v          └─> Assigned   │
//	                                                            AwaitingApproval  (reassignment)  │
//	                                                                    └──────> Complete <───────┘
//
// The two in-process states are deliberately distinct: InProcessAwaitingAdmin
// covers the span between key-user approval and admin verification, while
// InProcessByCraftsman covers accepted work in progress. Both report the same
// display label via Label().
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// PendingVerification is the entry state of a request submitted for
	// screening. A key user either accepts it into the workflow or declines it.
	PendingVerification

	// Pending is the initial status of a created order, waiting for
	// key-user approval or reject-delete.
	Pending

	// InProcessAwaitingAdmin indicates key-user approval: the order waits for
	// admin verification or admin rejection.
	InProcessAwaitingAdmin

	// Verified indicates admin verification: the order can now be assigned
	// to a craftsman.
	Verified

	// Assigned indicates the order has been handed to a craftsman who has not
	// yet responded. The craftsman may accept, reject, or mark it complete.
	Assigned

	// InProcessByCraftsman indicates the assigned craftsman accepted the order
	// and is working on it.
	InProcessByCraftsman

	// AwaitingApproval indicates the craftsman reported completion of accepted
	// work; an admin must approve it.
	AwaitingApproval

	// CompletedByCraftsman indicates the craftsman reported completion straight
	// from Assigned, without accepting first; an admin must approve it.
	CompletedByCraftsman

	// Complete indicates admin-approved completion.
	// This is a final state with no further transitions allowed.
	Complete

	// Rejected indicates the assigned craftsman refused the order. The order
	// stays rejected until reassignment finds a replacement craftsman.
	Rejected

	// AdminRejected indicates the admin rejected the order during verification.
	// This is a final state with no further transitions allowed.
	AdminRejected

	// Declined indicates a key user declined the request during screening.
	// This is a final state with no further transitions allowed.
	Declined
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:                "unknown",
		PendingVerification:    "pending-verification",
		Pending:                "pending",
		InProcessAwaitingAdmin: "in-process-awaiting-admin",
		Verified:               "verified",
		Assigned:               "assigned",
		InProcessByCraftsman:   "in-process-by-craftsman",
		AwaitingApproval:       "awaiting-approval",
		CompletedByCraftsman:   "completed_by_craftsman",
		Complete:               "complete",
		Rejected:               "rejected",
		AdminRejected:          "admin-rejected",
		Declined:               "declined",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		PendingVerification:    "pending-verification",
		Pending:                "pending",
		InProcessAwaitingAdmin: "in-process-awaiting-admin",
		Verified:               "verified",
		Assigned:               "assigned",
		InProcessByCraftsman:   "in-process-by-craftsman",
		AwaitingApproval:       "awaiting-approval",
		CompletedByCraftsman:   "completed_by_craftsman",
		Complete:               "complete",
		Rejected:               "rejected",
		AdminRejected:          "admin-rejected",
		Declined:               "declined",
	}
}

// StatusesForLabel returns every valid status whose display label matches the
// given label. Most labels map to exactly one status; "in-process" maps to both
// InProcessAwaitingAdmin and InProcessByCraftsman. An unrecognized label yields
// an empty slice.
//
// This is the entry point for status filters supplied by callers, which speak
// in display labels.
func StatusesForLabel(label string) []Status {
	var statuses []Status
	for status := range getValidStatusStrings() {
		if status.Label() == label {
			statuses = append(statuses, status)
		}
	}
	return statuses
}

// Validate checks if the Status value is valid.
//
// Unknown (0) and any other values outside the declared constants are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical name of the status, e.g. "in-process-awaiting-admin".
// Each status has a distinct canonical name; use Label for the display form.
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Label returns the display label of the status. The two in-process states
// share the label "in-process"; every other status reports its canonical name.
func (s Status) Label() string {
	if s == InProcessAwaitingAdmin || s == InProcessByCraftsman {
		return "in-process"
	}
	return s.String()
}

// IsTerminal reports whether the status permits no further transitions.
// Complete, AdminRejected, and Declined are terminal. Rejected is not:
// reassignment can move a rejected order back to Assigned.
func (s Status) IsTerminal() bool {
	return s == Complete || s == AdminRejected || s == Declined
}

// AcceptScreening transitions the status to Pending.
//
// Valid transitions:
//   - PendingVerification -> Pending (key user accepts the request)
//
// Returns:
//   - (Pending, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) AcceptScreening() (Status, error) {
	if s != PendingVerification {
		return 0, errs.NewInvalidTransitionError(s.String(), Pending.String())
	}

	return Pending, nil
}

// DeclineScreening transitions the status to Declined.
//
// Valid transitions:
//   - PendingVerification -> Declined (key user declines the request)
//
// Declined is a final state with no further transitions possible.
func (s Status) DeclineScreening() (Status, error) {
	if s != PendingVerification {
		return 0, errs.NewInvalidTransitionError(s.String(), Declined.String())
	}

	return Declined, nil
}

// Approve transitions the status to InProcessAwaitingAdmin.
//
// Valid transitions:
//   - Pending -> InProcessAwaitingAdmin (key-user approval)
//
// Returns:
//   - (InProcessAwaitingAdmin, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Approve() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidTransitionError(s.String(), InProcessAwaitingAdmin.String())
	}

	return InProcessAwaitingAdmin, nil
}

// ValidateDelete checks whether the order may be permanently removed.
// Only a still-pending order may be deleted by the key-user reject-delete;
// every other status fails with an invalid-transition error so the attempt
// leaves the record untouched.
func (s Status) ValidateDelete() error {
	if s != Pending {
		return errs.NewInvalidTransitionError(s.String(), "deleted")
	}
	return nil
}

// Verify transitions the status to Verified.
//
// Valid transitions:
//   - InProcessAwaitingAdmin -> Verified (admin verification)
//
// Returns:
//   - (Verified, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Verify() (Status, error) {
	if s != InProcessAwaitingAdmin {
		return 0, errs.NewInvalidTransitionError(s.String(), Verified.String())
	}

	return Verified, nil
}

// AdminReject transitions the status to AdminRejected.
//
// Valid transitions:
//   - InProcessAwaitingAdmin -> AdminRejected (admin rejection)
//
// AdminRejected is a final state with no further transitions possible.
func (s Status) AdminReject() (Status, error) {
	if s != InProcessAwaitingAdmin {
		return 0, errs.NewInvalidTransitionError(s.String(), AdminRejected.String())
	}

	return AdminRejected, nil
}

// ValidateAssign checks if the status allows craftsman assignment without
// performing the transition.
//
// Valid statuses for assignment:
//   - Verified (first assignment after admin verification)
//   - Rejected (manual or automatic reassignment after a craftsman rejection)
//   - Assigned (handing the order to a different craftsman)
//
// Returns:
//   - nil if assignment is allowed from current status
//   - error with details if assignment is not allowed
//
// This method provides assignability validation without side effects,
// useful for pre-validation and business logic checks.
func (s Status) ValidateAssign() error {
	if s != Verified && s != Rejected && s != Assigned {
		return errs.NewInvalidTransitionError(s.String(), Assigned.String())
	}
	return nil
}

// Assign transitions the status to Assigned.
//
// Valid transitions:
//   - Verified -> Assigned (initial assignment)
//   - Rejected -> Assigned (reassignment)
//   - Assigned -> Assigned (assignment to a different craftsman)
//
// Returns:
//   - (Assigned, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
//
// This method is used by Order.AssignCraftsman() to enforce state transitions.
func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return 0, err
	}

	return Assigned, nil
}

// AcceptWork transitions the status to InProcessByCraftsman.
//
// Valid transitions:
//   - Assigned -> InProcessByCraftsman (assigned craftsman accepts)
//
// Returns:
//   - (InProcessByCraftsman, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) AcceptWork() (Status, error) {
	if s != Assigned {
		return 0, errs.NewInvalidTransitionError(s.String(), InProcessByCraftsman.String())
	}

	return InProcessByCraftsman, nil
}

// RejectWork transitions the status to Rejected.
//
// Valid transitions:
//   - Assigned -> Rejected (assigned craftsman refuses)
//
// The rejection itself is recorded by the aggregate; reassignment follows
// separately and may move the order back to Assigned.
func (s Status) RejectWork() (Status, error) {
	if s != Assigned {
		return 0, errs.NewInvalidTransitionError(s.String(), Rejected.String())
	}

	return Rejected, nil
}

// MarkComplete transitions the status to the completion-report state that
// matches where the work came from:
//
//   - Assigned -> CompletedByCraftsman (completion reported without acceptance)
//   - InProcessByCraftsman -> AwaitingApproval (completion of accepted work)
//
// Both target states wait for admin approval via ApproveCompletion.
//
// Returns:
//   - (CompletedByCraftsman or AwaitingApproval, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) MarkComplete() (Status, error) {
	switch s {
	case Assigned:
		return CompletedByCraftsman, nil
	case InProcessByCraftsman:
		return AwaitingApproval, nil
	default:
		return 0, errs.NewInvalidTransitionError(s.String(), AwaitingApproval.String())
	}
}

// ApproveCompletion transitions the status to Complete.
//
// Valid transitions:
//   - AwaitingApproval -> Complete
//   - CompletedByCraftsman -> Complete
//
// Complete is a final state with no further transitions possible.
func (s Status) ApproveCompletion() (Status, error) {
	if s != AwaitingApproval && s != CompletedByCraftsman {
		return 0, errs.NewInvalidTransitionError(s.String(), Complete.String())
	}

	return Complete, nil
}

// ValidateCanHaveCraftsman validates the consistency between order status and
// craftsman assignment. Enforces business rules about which statuses carry a
// craftsman reference.
//
// Business Rules:
//   - Assigned, InProcessByCraftsman, AwaitingApproval, CompletedByCraftsman,
//     and Complete orders must have a craftsman assigned
//   - All other statuses must not have a craftsman assigned
//
// Parameters:
//   - craftsman: whether the order has a craftsman assigned
//
// Returns:
//   - error: validation error if status and craftsman assignment are inconsistent
func (s Status) ValidateCanHaveCraftsman(craftsman bool) error {
	requires := s == Assigned || s == InProcessByCraftsman ||
		s == AwaitingApproval || s == CompletedByCraftsman || s == Complete

	if craftsman && !requires {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a craftsman", s.String()),
		)
	}

	if !craftsman && requires {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no craftsman", s.String()),
		)
	}

	return nil
}
