package craftsmanrepo

import (
	"context"
	"errors"

	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/craftsman"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCraftsmanRepository implements CraftsmanRepository using GORM.
type GormCraftsmanRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCraftsmanRepository creates a new GORM craftsman repository.
func NewGormCraftsmanRepository(db *gorm.DB, tracker aggregateTracker) *GormCraftsmanRepository {
	return &GormCraftsmanRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new craftsman directory entry to the database.
func (r *GormCraftsmanRepository) Add(ctx context.Context, aggregate *craftsman.Craftsman) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a craftsman by directory entry ID.
func (r *GormCraftsmanRepository) Get(ctx context.Context, id kernel.UUID) (*craftsman.Craftsman, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CraftsmanDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("craftsman", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindByCodeAndName retrieves the craftsman with the given partner code and
// business name. The code comparison is exact; the name comparison is
// case-insensitive.
func (r *GormCraftsmanRepository) FindByCodeAndName(ctx context.Context, code kernel.PartnerCode, businessName string) (*craftsman.Craftsman, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	var dto CraftsmanDTO
	if err := r.db.WithContext(ctx).
		First(&dto, "code = ? AND LOWER(business_name) = LOWER(?)", code.String(), businessName).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("craftsman", code.String()+"-"+businessName)
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindFirstByRoleExcluding retrieves the first directory entry in registration
// order holding the given role and whose partner code is not in the excluded
// set. Exclusion works on codes rather than entry ids, so a record duplicated
// under the same code stays excluded.
//
// Example:
//
//	candidate, err := repo.FindFirstByRoleExcluding(ctx, actor.RoleCraftsman, rejectedCodes)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//		return nil // no eligible craftsman left
//	}
func (r *GormCraftsmanRepository) FindFirstByRoleExcluding(ctx context.Context, role actor.Role, excludedCodes []kernel.PartnerCode) (*craftsman.Craftsman, error) {
	if err := role.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Where("role = ?", role.String()).Order("seq ASC")
	if len(excludedCodes) > 0 {
		codes := make([]string, 0, len(excludedCodes))
		for _, code := range excludedCodes {
			codes = append(codes, code.String())
		}
		query = query.Where("code NOT IN ?", codes)
	}

	var dto CraftsmanDTO
	if err := query.First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("craftsman", role.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
