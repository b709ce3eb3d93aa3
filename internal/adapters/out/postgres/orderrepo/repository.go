package orderrepo

import (
	"context"
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/ports"
	"atelier/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
// A unique violation on the order number maps to ports.ErrOrderNumberConflict
// so callers can retry with a freshly derived number.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return ports.ErrOrderNumberConflict
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database.
// Save writes every column, so clearing the craftsman on rejection actually
// lands as NULL instead of being skipped as a zero value.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Use Session with FullSaveAssociations to properly update nested associations
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByNumber retrieves an order by its order number.
func (r *GormOrderRepository) GetByNumber(ctx context.Context, orderNo kernel.OrderNumber) (*order.Order, error) {
	if err := orderNo.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).
		Preload("Rejections", preloadRejections).
		First(&dto, "order_no = ?", orderNo.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", orderNo.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes an order from the database.
// Rejection history rows go with it through the cascade constraint.
func (r *GormOrderRepository) Delete(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", aggregate.ID().Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// NextOrderNumber derives the successor of the numerically greatest stored
// order number. Numbers are digit strings, so ordering by length first and
// value second yields numeric order without casting.
func (r *GormOrderRepository) NextOrderNumber(ctx context.Context) (kernel.OrderNumber, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Select("order_no").
		Order("length(order_no) DESC, order_no DESC").
		Take(&dto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return kernel.FirstOrderNumber(), nil
	}
	if err != nil {
		return kernel.OrderNumber{}, err
	}

	last, err := kernel.NewOrderNumber(dto.OrderNo)
	if err != nil {
		// Imported rows may carry numbers outside the current format; derive
		// the successor from the row count instead.
		var count int64
		if countErr := r.db.WithContext(ctx).Model(&OrderDTO{}).Count(&count).Error; countErr != nil {
			return kernel.OrderNumber{}, countErr
		}
		return kernel.OrderNumberFromCount(count), nil
	}

	return last.Next()
}

// GetAllByCreatorWithoutPartnerCode retrieves every order created by the given
// actor that has no partner code stamped yet.
func (r *GormOrderRepository) GetAllByCreatorWithoutPartnerCode(ctx context.Context, createdBy kernel.UUID) ([]*order.Order, error) {
	if err := createdBy.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Preload("Rejections", preloadRejections).
		Find(&dtos, "created_by = ? AND partner_code IS NULL", createdBy.Bytes()).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// preloadRejections loads rejection history oldest first so restored history
// keeps its accumulation order.
func preloadRejections(db *gorm.DB) *gorm.DB {
	return db.Order("rejected_at ASC")
}

// isUniqueViolation reports whether the error is a Postgres unique constraint
// violation, either translated by GORM or raw from the lib/pq driver.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
