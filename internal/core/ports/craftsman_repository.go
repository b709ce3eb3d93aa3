// Package ports defines repository and unit-of-work interfaces for the
// atelier workflow. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/craftsman"
	"atelier/internal/core/domain/model/kernel"
)

// CraftsmanRepository defines the persistence contract for the craftsman
// directory. The directory is append-only: entries are registered once and
// looked up by id, by partner code and name, or scanned in insertion order.
type CraftsmanRepository interface {
	// Add persists a new craftsman directory entry.
	// The craftsman must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *craftsman.Craftsman) error

	// Get retrieves a craftsman by their directory entry id.
	Get(ctx context.Context, id kernel.UUID) (*craftsman.Craftsman, error)

	// FindByCodeAndName retrieves the craftsman with the given partner code
	// and business name. The name comparison is case-insensitive; the code
	// comparison is exact. Returns ObjectNotFound when no entry matches.
	FindByCodeAndName(ctx context.Context, code kernel.PartnerCode, businessName string) (*craftsman.Craftsman, error)

	// FindFirstByRoleExcluding retrieves the first directory entry, in
	// insertion order, holding the given role and whose partner code is not
	// in the excluded set. Exclusion is by code rather than entry id, so a
	// directory record duplicated under the same code stays excluded.
	//
	// Returns ObjectNotFound when every candidate is excluded; the
	// reassignment flow treats that as "leave the order rejected".
	//
	// Example:
	//
	//	candidate, err := repo.FindFirstByRoleExcluding(ctx, actor.RoleCraftsman, rejectedCodes)
	//	if errors.Is(err, errs.ErrObjectNotFound) {
	//	    return nil // no eligible craftsman, order stays rejected
	//	}
	FindFirstByRoleExcluding(ctx context.Context, role actor.Role, excludedCodes []kernel.PartnerCode) (*craftsman.Craftsman, error)
}
