package order

import (
	"errors"
	"fmt"
	"time"

	"atelier/internal/core/domain/model/craftsman"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through one of the package constructors. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder, NewOrderRequest, or RestoreOrder")

	// ErrCraftsmanRejectedThisOrder indicates an attempt to assign the order to a
	// craftsman who already rejected it. Rejections are cumulative: once a
	// craftsman refuses an order, that craftsman is excluded from it for good.
	ErrCraftsmanRejectedThisOrder = errors.New("craftsman has previously rejected this order")

	// ErrPartnerCodeAlreadySet indicates a backfill attempt on an order that
	// already carries a partner code. Backfill only fills gaps in legacy records.
	ErrPartnerCodeAlreadySet = errors.New("partner code is already set")
)

// Order represents a manufacturing order in the system. It is the aggregate root
// that manages the order lifecycle from intake through assignment to completion.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a valid order number
//   - Details must be valid (product named, positive quantity)
//   - Status transitions follow the workflow state machine
//   - A craftsman reference is present exactly in the post-assignment statuses
//   - A craftsman who rejected the order is never assigned to it again
//   - Can only be created through NewOrder, NewOrderRequest, or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// orderNo is the human-facing sequential order number, unique across orders
	orderNo kernel.OrderNumber

	// details describes the piece being made
	details Details

	// status represents the current state in the order lifecycle
	status Status

	// craftsmanID is the assigned craftsman's ID (nil if unassigned)
	craftsmanID *kernel.UUID

	// rejectedByID is the craftsman who caused the current Rejected state
	// (nil whenever the order is not rejected)
	rejectedByID *kernel.UUID

	// dueDate is the promised completion date (nil if open-ended)
	dueDate *time.Time

	// orderDate is the business date the order was placed
	orderDate time.Time

	// createdBy is the actor who placed the order
	createdBy kernel.UUID

	// partnerCode is the partner the order is booked under (nil on legacy records)
	partnerCode *kernel.PartnerCode

	// stamps holds the audit stamps recorded at workflow steps
	stamps Stamps

	// rejections is the append-only history of craftsman rejections
	rejections []Rejection

	// isConstructed ensures the order was created via a package constructor
	isConstructed bool
}

// NewOrder creates a new Order in the Pending status, ready for key-user
// approval. This is the entry point for orders placed directly, without the
// screening step.
//
// Parameters:
//   - id: Unique identifier for the order (must be a valid UUID)
//   - orderNo: Sequential order number issued by the order book
//   - details: Validated description of the piece being made
//   - orderDate: Business date the order was placed (must not be the zero time)
//   - dueDate: Optional promised completion date (must lie strictly after orderDate)
//   - createdBy: Actor placing the order (must be a valid UUID)
//   - partnerCode: Optional partner the order is booked under
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Aggregated validation errors if any parameter is invalid
//
// Example:
//
//	details, _ := order.NewDetails("ring", "", "22K", "", 1)
//	o, err := order.NewOrder(kernel.NewUUID(), orderNo, details, time.Now(), nil, actorID, nil)
//	if err != nil {
//	    // Handle validation error
//	}
//
// The due date rule applies at creation only. Restoring an order with a due
// date in the past is valid; that is what overdue reporting is for.
func NewOrder(
	id kernel.UUID,
	orderNo kernel.OrderNumber,
	details Details,
	orderDate time.Time,
	dueDate *time.Time,
	createdBy kernel.UUID,
	partnerCode *kernel.PartnerCode,
) (*Order, error) {
	return newOrder(id, orderNo, details, orderDate, dueDate, createdBy, partnerCode, Pending)
}

// NewOrderRequest creates a new Order in the PendingVerification status. The
// request enters the workflow only after a key user accepts it during
// screening; a declined request never reaches the regular approval flow.
//
// Parameters and validation rules match NewOrder.
func NewOrderRequest(
	id kernel.UUID,
	orderNo kernel.OrderNumber,
	details Details,
	orderDate time.Time,
	dueDate *time.Time,
	createdBy kernel.UUID,
	partnerCode *kernel.PartnerCode,
) (*Order, error) {
	return newOrder(id, orderNo, details, orderDate, dueDate, createdBy, partnerCode, PendingVerification)
}

func newOrder(
	id kernel.UUID,
	orderNo kernel.OrderNumber,
	details Details,
	orderDate time.Time,
	dueDate *time.Time,
	createdBy kernel.UUID,
	partnerCode *kernel.PartnerCode,
	status Status,
) (*Order, error) {
	order := &Order{
		status:        status,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderNo(orderNo),
		order.setDetails(details),
		order.setOrderDate(orderDate),
		order.setCreatedBy(createdBy),
		order.setPartnerCode(partnerCode),
		order.setDueDate(dueDate),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistent storage. Unlike NewOrder,
// it accepts any valid status together with the state accumulated over the
// order's lifetime: craftsman assignment, audit stamps, and rejection history.
//
// The restored order behaves identically to one created through normal domain
// operations. The due date is restored as-is; the strictly-in-the-future rule
// applies at creation time only.
//
// Returns:
//   - *Order: Restored order
//   - error: Validation error if any parameter is invalid or the status does
//     not agree with the craftsman assignment
func RestoreOrder(
	id kernel.UUID,
	orderNo kernel.OrderNumber,
	details Details,
	status Status,
	craftsmanID *kernel.UUID,
	rejectedByID *kernel.UUID,
	dueDate *time.Time,
	orderDate time.Time,
	createdBy kernel.UUID,
	partnerCode *kernel.PartnerCode,
	stamps Stamps,
	rejections []Rejection,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderNo(orderNo),
		order.setDetails(details),
		order.setStatus(status),
		order.setCraftsmanID(craftsmanID),
		order.setRejectedByID(rejectedByID),
		order.setOrderDate(orderDate),
		order.setCreatedBy(createdBy),
		order.setPartnerCode(partnerCode),
		order.setStamps(stamps),
		order.setRejections(rejections),
	); err != nil {
		return nil, err
	}

	if err := order.status.ValidateCanHaveCraftsman(order.craftsmanID != nil); err != nil {
		return nil, err
	}

	order.dueDate = dueDate
	return order, nil
}

// Validate ensures the Order instance was properly constructed through one of
// the package constructors. This prevents bypassing validation by directly
// instantiating the struct.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed if the order was not created via a constructor
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNo returns the order's sequential order number.
func (o *Order) OrderNo() kernel.OrderNumber {
	return o.orderNo
}

// Details returns the description of the piece being made.
func (o *Order) Details() Details {
	return o.details
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Craftsman returns the assigned craftsman's ID.
// Returns nil if no craftsman is assigned.
func (o *Order) Craftsman() *kernel.UUID {
	return o.craftsmanID
}

// RejectedBy returns the craftsman who caused the current Rejected state.
// Returns nil whenever the order is not rejected.
func (o *Order) RejectedBy() *kernel.UUID {
	return o.rejectedByID
}

// DueDate returns the promised completion date, or nil if open-ended.
func (o *Order) DueDate() *time.Time {
	return o.dueDate
}

// OrderDate returns the business date the order was placed.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// CreatedBy returns the actor who placed the order.
func (o *Order) CreatedBy() kernel.UUID {
	return o.createdBy
}

// PartnerCode returns the partner the order is booked under.
// Returns nil on legacy records awaiting backfill.
func (o *Order) PartnerCode() *kernel.PartnerCode {
	return o.partnerCode
}

// Stamps returns the audit stamps recorded so far. A nil entry means the
// corresponding workflow step has not happened.
func (o *Order) Stamps() Stamps {
	return o.stamps
}

// Rejections returns the full rejection history, oldest first.
func (o *Order) Rejections() []Rejection {
	return o.rejections
}

// AcceptScreening moves a screened request into the regular workflow.
//
// Business rules:
//   - The order must be in PendingVerification status
//   - The screening decision is stamped with actor, notes, and time
//
// After acceptance the order is Pending and follows the same path as an
// order placed directly.
func (o *Order) AcceptScreening(by kernel.UUID, notes string, screenedAt time.Time) error {
	stamp, err := NewStamp(by, notes, screenedAt)
	if err != nil {
		return err
	}

	newStatus, err := o.status.AcceptScreening()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.stamps.Screening = &stamp
	return nil
}

// DeclineScreening throws a screened request out of the workflow.
//
// Business rules:
//   - The order must be in PendingVerification status
//   - The screening decision is stamped with actor, notes, and time
//
// Declined is a final state; the record is kept for audit.
func (o *Order) DeclineScreening(by kernel.UUID, notes string, screenedAt time.Time) error {
	stamp, err := NewStamp(by, notes, screenedAt)
	if err != nil {
		return err
	}

	newStatus, err := o.status.DeclineScreening()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.stamps.Screening = &stamp
	return nil
}

// Approve records the key-user approval of a pending order.
//
// Business rules:
//   - The order must be in Pending status
//   - The approval is stamped with actor, notes, and time
//
// After approval the order is InProcessAwaitingAdmin, waiting for the admin
// verification step.
func (o *Order) Approve(by kernel.UUID, notes string, approvedAt time.Time) error {
	stamp, err := NewStamp(by, notes, approvedAt)
	if err != nil {
		return err
	}

	newStatus, err := o.status.Approve()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.stamps.Approval = &stamp
	return nil
}

// ValidateDelete checks whether the order may be permanently removed.
// The key-user rejection of a pending order removes the record entirely
// instead of parking it in a rejected state.
//
// Returns:
//   - nil if the order is still Pending
//   - error if deletion is not allowed from the current status
func (o *Order) ValidateDelete() error {
	return o.status.ValidateDelete()
}

// Verify records the admin verification of an approved order.
//
// Business rules:
//   - The order must be in InProcessAwaitingAdmin status
//   - The verification is stamped with actor, notes, and time
//
// After verification the order is Verified and can be assigned to a craftsman.
func (o *Order) Verify(by kernel.UUID, notes string, verifiedAt time.Time) error {
	stamp, err := NewStamp(by, notes, verifiedAt)
	if err != nil {
		return err
	}

	newStatus, err := o.status.Verify()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.stamps.Verification = &stamp
	return nil
}

// AdminReject records the admin rejection of an approved order.
//
// Business rules:
//   - The order must be in InProcessAwaitingAdmin status
//   - The rejection is stamped with actor, notes, and time
//
// AdminRejected is a final state; the record is kept for audit.
func (o *Order) AdminReject(by kernel.UUID, notes string, rejectedAt time.Time) error {
	stamp, err := NewStamp(by, notes, rejectedAt)
	if err != nil {
		return err
	}

	newStatus, err := o.status.AdminReject()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.stamps.AdminRejection = &stamp
	return nil
}

// AssignCraftsman hands the order to a craftsman and updates the status to
// Assigned.
//
// This method enforces the following business rules:
//   - The craftsman must be a valid, constructed directory entry
//   - The craftsman must not have rejected this order before, neither under
//     the same directory entry nor under the same partner code
//   - The order must be in Verified, Rejected, or Assigned status
//
// Parameters:
//   - craftsman: The directory entry of the craftsman to assign
//   - dueDate: Optional new promised completion date; nil keeps the current one
//
// Returns:
//   - nil on successful assignment
//   - ErrCraftsmanRejectedThisOrder if the craftsman is in the exclusion set
//   - error if the craftsman is invalid or the status transition is not allowed
//
// After successful assignment the order's status is Assigned, Craftsman()
// returns the assigned craftsman's ID, and RejectedBy() is cleared.
func (o *Order) AssignCraftsman(craftsman *craftsman.Craftsman, dueDate *time.Time) error {
	if err := craftsman.Validate(); err != nil {
		return err
	}

	if o.hasRejectionFrom(craftsman.ID()) || o.hasRejectionWithCode(craftsman.Code()) {
		return ErrCraftsmanRejectedThisOrder
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	craftsmanID := craftsman.ID()
	o.craftsmanID = &craftsmanID
	o.rejectedByID = nil
	if dueDate != nil {
		o.dueDate = dueDate
	}
	return nil
}

// AcceptAssignment records that the assigned craftsman took the order on.
//
// Business rules:
//   - Only the assigned craftsman may accept
//   - The order must be in Assigned status
//
// After acceptance the order is InProcessByCraftsman.
func (o *Order) AcceptAssignment(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	if err := o.validateAssignedCraftsman(actorID, "accept assignment"); err != nil {
		return err
	}

	newStatus, err := o.status.AcceptWork()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// RejectAssignment records that the assigned craftsman refused the order.
//
// This method enforces the following business rules:
//   - Only the assigned craftsman may reject
//   - The order must be in Assigned status
//   - The rejection is appended to the permanent rejection history together
//     with the craftsman's partner code, which joins the exclusion set
//
// Parameters:
//   - actorID: The rejecting craftsman (must be the assigned one)
//   - partnerCode: The rejecting craftsman's partner code
//   - rejectedAt: When the rejection happened
//
// After rejection the order is Rejected, the craftsman reference is cleared,
// and RejectedBy() reports who refused. Reassignment may later move the order
// back to Assigned, but never to a craftsman in the exclusion set.
func (o *Order) RejectAssignment(actorID kernel.UUID, partnerCode kernel.PartnerCode, rejectedAt time.Time) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	if err := o.validateAssignedCraftsman(actorID, "reject assignment"); err != nil {
		return err
	}

	rejection, err := NewRejection(*o.craftsmanID, partnerCode, rejectedAt)
	if err != nil {
		return err
	}

	newStatus, err := o.status.RejectWork()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.rejections = append(o.rejections, rejection)
	o.rejectedByID = o.craftsmanID
	o.craftsmanID = nil
	return nil
}

// MarkComplete records that the assigned craftsman reports the work done.
//
// Business rules:
//   - Only the assigned craftsman may report completion
//   - From InProcessByCraftsman the order becomes AwaitingApproval
//   - From Assigned, completion without prior acceptance, the order becomes
//     CompletedByCraftsman
//
// Both outcomes wait for the admin sign-off via ApproveCompletion.
func (o *Order) MarkComplete(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	if err := o.validateAssignedCraftsman(actorID, "mark complete"); err != nil {
		return err
	}

	newStatus, err := o.status.MarkComplete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ApproveCompletion records the admin sign-off on reported completion.
//
// Business rules:
//   - The order must be in AwaitingApproval or CompletedByCraftsman status
//   - The sign-off is stamped with actor, notes, and time
//
// Complete is the final state of a successful order; the craftsman reference
// is kept for the record.
func (o *Order) ApproveCompletion(by kernel.UUID, notes string, approvedAt time.Time) error {
	stamp, err := NewStamp(by, notes, approvedAt)
	if err != nil {
		return err
	}

	newStatus, err := o.status.ApproveCompletion()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.stamps.CompletionApproval = &stamp
	return nil
}

// BackfillPartnerCode fills in the partner code on a legacy order that was
// created without one.
//
// Business rules:
//   - The code must be a valid PartnerCode
//   - The order must not already carry a partner code
//
// Returns:
//   - nil on success
//   - ErrPartnerCodeAlreadySet if the order already has a partner code
func (o *Order) BackfillPartnerCode(partnerCode kernel.PartnerCode) error {
	if err := partnerCode.Validate(); err != nil {
		return err
	}

	if o.partnerCode != nil {
		return ErrPartnerCodeAlreadySet
	}

	o.partnerCode = &partnerCode
	return nil
}

// ExcludedPartnerCodes returns the distinct partner codes collected from the
// order's rejections, oldest first. Reassignment must never pick a craftsman
// carrying any of these codes.
func (o *Order) ExcludedPartnerCodes() []kernel.PartnerCode {
	var codes []kernel.PartnerCode
	for _, rejection := range o.rejections {
		duplicate := false
		for _, code := range codes {
			if code.IsEqual(rejection.PartnerCode()) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			codes = append(codes, rejection.PartnerCode())
		}
	}
	return codes
}

func (o *Order) hasRejectionFrom(craftsmanID kernel.UUID) bool {
	for _, rejection := range o.rejections {
		if rejection.CraftsmanID().IsEqual(craftsmanID) {
			return true
		}
	}
	return false
}

func (o *Order) hasRejectionWithCode(partnerCode kernel.PartnerCode) bool {
	for _, rejection := range o.rejections {
		if rejection.PartnerCode().IsEqual(partnerCode) {
			return true
		}
	}
	return false
}

// validateAssignedCraftsman checks that the acting craftsman is the one the
// order is assigned to. Craftsman operations are owner-only.
func (o *Order) validateAssignedCraftsman(actorID kernel.UUID, action string) error {
	if o.craftsmanID == nil {
		return errs.NewForbiddenErrorWithCause(
			actorID.String(),
			action,
			fmt.Errorf("order %s has no assigned craftsman", o.orderNo),
		)
	}

	if !o.craftsmanID.IsEqual(actorID) {
		return errs.NewForbiddenErrorWithCause(
			actorID.String(),
			action,
			fmt.Errorf("order %s is assigned to a different craftsman", o.orderNo),
		)
	}

	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setOrderNo validates and sets the order's sequential number.
// This is a private method used only during construction.
func (o *Order) setOrderNo(orderNo kernel.OrderNumber) error {
	if err := orderNo.Validate(); err != nil {
		return err
	}
	o.orderNo = orderNo
	return nil
}

func (o *Order) setDetails(details Details) error {
	if err := details.Validate(); err != nil {
		return err
	}
	o.details = details
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setCraftsmanID(craftsmanID *kernel.UUID) error {
	if craftsmanID != nil {
		if err := craftsmanID.Validate(); err != nil {
			return err
		}
	}
	o.craftsmanID = craftsmanID
	return nil
}

func (o *Order) setRejectedByID(rejectedByID *kernel.UUID) error {
	if rejectedByID != nil {
		if err := rejectedByID.Validate(); err != nil {
			return err
		}
	}
	o.rejectedByID = rejectedByID
	return nil
}

func (o *Order) setOrderDate(orderDate time.Time) error {
	if orderDate.IsZero() {
		return errs.NewValueIsRequiredError("orderDate")
	}
	o.orderDate = orderDate
	return nil
}

// setDueDate enforces the creation-time rule: a due date, when provided,
// must lie strictly after the order date. Called after setOrderDate.
func (o *Order) setDueDate(dueDate *time.Time) error {
	if dueDate != nil && !dueDate.After(o.orderDate) {
		return errs.NewValueIsInvalidErrorWithCause(
			"dueDate is invalid",
			fmt.Errorf("%s is not after order date %s",
				dueDate.Format(time.RFC3339), o.orderDate.Format(time.RFC3339)),
		)
	}
	o.dueDate = dueDate
	return nil
}

func (o *Order) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return err
	}
	o.createdBy = createdBy
	return nil
}

func (o *Order) setPartnerCode(partnerCode *kernel.PartnerCode) error {
	if partnerCode != nil {
		if err := partnerCode.Validate(); err != nil {
			return err
		}
	}
	o.partnerCode = partnerCode
	return nil
}

func (o *Order) setStamps(stamps Stamps) error {
	if err := stamps.Validate(); err != nil {
		return err
	}
	o.stamps = stamps
	return nil
}

func (o *Order) setRejections(rejections []Rejection) error {
	for _, rejection := range rejections {
		if err := rejection.Validate(); err != nil {
			return err
		}
	}
	o.rejections = rejections
	return nil
}
