// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by number, status, and craftsman assignment.
//
// Audit stamps live as embedded column groups on the order row itself; a NULL
// "by" column means the corresponding workflow step has not happened. Rejection
// history is a child table wired for cascade delete.
type OrderDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderNo      string     `gorm:"type:varchar(18);not null;uniqueIndex"`
	Status       int        `gorm:"index"`
	CraftsmanID  *uuid.UUID `gorm:"type:uuid;index"`
	RejectedByID *uuid.UUID `gorm:"type:uuid"`
	Details      DetailsDTO `gorm:"embedded"`
	DueDate      *time.Time
	OrderDate    time.Time `gorm:"not null"`
	CreatedBy    uuid.UUID `gorm:"type:uuid;not null;index"`
	PartnerCode  *string   `gorm:"type:varchar(64)"`

	Screening          StampDTO `gorm:"embedded;embeddedPrefix:screening_"`
	Approval           StampDTO `gorm:"embedded;embeddedPrefix:approval_"`
	Verification       StampDTO `gorm:"embedded;embeddedPrefix:verification_"`
	AdminRejection     StampDTO `gorm:"embedded;embeddedPrefix:admin_rejection_"`
	CompletionApproval StampDTO `gorm:"embedded;embeddedPrefix:completion_"`

	Rejections []OrderRejectionDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// DetailsDTO represents the embedded order details within the order table.
// Stores what the customer ordered without a column prefix.
type DetailsDTO struct {
	Product   string `gorm:"type:varchar(255);not null"`
	Design    string `gorm:"type:varchar(255)"`
	Purity    string `gorm:"type:varchar(64)"`
	Narration string `gorm:"type:text"`
	Quantity  int    `gorm:"type:int;not null"`
}

// StampDTO represents one embedded audit stamp column group within the order
// table. A stamp is present when By is non-NULL; absent stamps leave the whole
// group NULL or zero.
type StampDTO struct {
	By    *uuid.UUID `gorm:"type:uuid"`
	Notes string     `gorm:"type:varchar(512)"`
	At    *time.Time
}

// OrderRejectionDTO represents one row of an order's rejection history.
// The composite primary key (order, craftsman) matches the domain rule that a
// craftsman can reject a given order at most once, which lets association
// saves upsert instead of duplicating rows.
type OrderRejectionDTO struct {
	OrderID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	CraftsmanID uuid.UUID `gorm:"type:uuid;primaryKey"`
	PartnerCode string    `gorm:"type:varchar(64);not null"`
	RejectedAt  time.Time `gorm:"not null"`
}

// TableName specifies the database table name for rejection history entries.
// Overrides GORM's default naming convention to use "order_rejections".
func (OrderRejectionDTO) TableName() string {
	return "order_rejections"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including optional craftsman assignment, the five
// audit stamps, and the accumulated rejection history.
func fromDomain(aggregate *order.Order) OrderDTO {
	var craftsmanID *uuid.UUID
	if id := aggregate.Craftsman(); id != nil {
		raw := id.Bytes()
		craftsmanID = &raw
	}

	var rejectedByID *uuid.UUID
	if id := aggregate.RejectedBy(); id != nil {
		raw := id.Bytes()
		rejectedByID = &raw
	}

	var partnerCode *string
	if code := aggregate.PartnerCode(); code != nil {
		raw := code.String()
		partnerCode = &raw
	}

	orderID := aggregate.ID().Bytes()
	rejections := make([]OrderRejectionDTO, 0, len(aggregate.Rejections()))
	for _, rejection := range aggregate.Rejections() {
		rejections = append(rejections, OrderRejectionDTO{
			OrderID:     orderID,
			CraftsmanID: rejection.CraftsmanID().Bytes(),
			PartnerCode: rejection.PartnerCode().String(),
			RejectedAt:  rejection.At(),
		})
	}

	details := aggregate.Details()
	stamps := aggregate.Stamps()

	return OrderDTO{
		ID:           orderID,
		OrderNo:      aggregate.OrderNo().String(),
		Status:       int(aggregate.Status()),
		CraftsmanID:  craftsmanID,
		RejectedByID: rejectedByID,
		Details: DetailsDTO{
			Product:   details.Product(),
			Design:    details.Design(),
			Purity:    details.Purity(),
			Narration: details.Narration(),
			Quantity:  details.Quantity(),
		},
		DueDate:            aggregate.DueDate(),
		OrderDate:          aggregate.OrderDate(),
		CreatedBy:          aggregate.CreatedBy().Bytes(),
		PartnerCode:        partnerCode,
		Screening:          stampFromDomain(stamps.Screening),
		Approval:           stampFromDomain(stamps.Approval),
		Verification:       stampFromDomain(stamps.Verification),
		AdminRejection:     stampFromDomain(stamps.AdminRejection),
		CompletionApproval: stampFromDomain(stamps.CompletionApproval),
		Rejections:         rejections,
	}
}

// stampFromDomain converts an optional audit stamp to its embedded column group.
// A nil stamp maps to an all-NULL group.
func stampFromDomain(stamp *order.Stamp) StampDTO {
	if stamp == nil {
		return StampDTO{}
	}

	by := stamp.By().Bytes()
	at := stamp.At()
	return StampDTO{
		By:    &by,
		Notes: stamp.Notes(),
		At:    &at,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including stamps and rejection history
// using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderNo, err := kernel.NewOrderNumber(dto.OrderNo)
	if err != nil {
		return nil, err
	}

	details, err := order.NewDetails(
		dto.Details.Product,
		dto.Details.Design,
		dto.Details.Purity,
		dto.Details.Narration,
		dto.Details.Quantity,
	)
	if err != nil {
		return nil, err
	}

	var craftsmanID *kernel.UUID
	if dto.CraftsmanID != nil {
		cID, craftsmanErr := kernel.UUIDFromBytes((*dto.CraftsmanID)[:])
		if craftsmanErr != nil {
			return nil, craftsmanErr
		}

		craftsmanID = &cID
	}

	var rejectedByID *kernel.UUID
	if dto.RejectedByID != nil {
		rID, rejectedErr := kernel.UUIDFromBytes((*dto.RejectedByID)[:])
		if rejectedErr != nil {
			return nil, rejectedErr
		}

		rejectedByID = &rID
	}

	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}

	var partnerCode *kernel.PartnerCode
	if dto.PartnerCode != nil {
		code, codeErr := kernel.NewPartnerCode(*dto.PartnerCode)
		if codeErr != nil {
			return nil, codeErr
		}

		partnerCode = &code
	}

	screening, err := stampToDomain(dto.Screening)
	if err != nil {
		return nil, err
	}

	approval, err := stampToDomain(dto.Approval)
	if err != nil {
		return nil, err
	}

	verification, err := stampToDomain(dto.Verification)
	if err != nil {
		return nil, err
	}

	adminRejection, err := stampToDomain(dto.AdminRejection)
	if err != nil {
		return nil, err
	}

	completionApproval, err := stampToDomain(dto.CompletionApproval)
	if err != nil {
		return nil, err
	}

	// Convert rejection history DTOs to domain objects
	rejections := make([]order.Rejection, 0, len(dto.Rejections))
	for _, rejectionDto := range dto.Rejections {
		rejection, rejectionErr := rejectionToDomain(rejectionDto)
		if rejectionErr != nil {
			return nil, rejectionErr
		}
		rejections = append(rejections, rejection)
	}

	return order.RestoreOrder(
		id,
		orderNo,
		details,
		order.Status(dto.Status),
		craftsmanID,
		rejectedByID,
		dto.DueDate,
		dto.OrderDate,
		createdBy,
		partnerCode,
		order.Stamps{
			Screening:          screening,
			Approval:           approval,
			Verification:       verification,
			AdminRejection:     adminRejection,
			CompletionApproval: completionApproval,
		},
		rejections,
	)
}

// stampToDomain converts an embedded stamp column group to an optional audit stamp.
// An all-NULL group restores as nil, meaning the step has not happened.
func stampToDomain(dto StampDTO) (*order.Stamp, error) {
	if dto.By == nil || dto.At == nil {
		return nil, nil
	}

	by, err := kernel.UUIDFromBytes((*dto.By)[:])
	if err != nil {
		return nil, err
	}

	stamp, err := order.NewStamp(by, dto.Notes, *dto.At)
	if err != nil {
		return nil, err
	}

	return &stamp, nil
}

// rejectionToDomain converts a rejection history row to its domain value object.
func rejectionToDomain(dto OrderRejectionDTO) (order.Rejection, error) {
	craftsmanID, err := kernel.UUIDFromBytes(dto.CraftsmanID[:])
	if err != nil {
		return order.Rejection{}, err
	}

	code, err := kernel.NewPartnerCode(dto.PartnerCode)
	if err != nil {
		return order.Rejection{}, err
	}

	return order.NewRejection(craftsmanID, code, dto.RejectedAt)
}
