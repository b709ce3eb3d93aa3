// Package craftsmanrepo provides data transfer objects and mapping functions for craftsman persistence.
// This package implements the repository pattern for the craftsman directory, handling
// the conversion between domain entities and database representations.
package craftsmanrepo

import (
	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/craftsman"
	"atelier/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CraftsmanDTO represents the database structure for persisting craftsman
// directory entries. Seq is a database-assigned sequence that preserves
// registration order; reassignment scans candidates in that order. The
// directory is append-only, so Seq is written once at insert and never
// touched again.
type CraftsmanDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq          int64     `gorm:"autoIncrement;uniqueIndex"`
	Code         string    `gorm:"type:varchar(64);not null;index"`
	BusinessName string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(32);not null;index"`
}

// TableName specifies the database table name for craftsman entities.
// Overrides GORM's default naming convention to use "craftsmen".
func (CraftsmanDTO) TableName() string {
	return "craftsmen"
}

// fromDomain converts a craftsman directory entry to its database representation.
// Seq stays zero so the database assigns the next sequence value on insert.
func fromDomain(craftsman *craftsman.Craftsman) CraftsmanDTO {
	return CraftsmanDTO{
		ID:           craftsman.ID().Bytes(),
		Code:         craftsman.Code().String(),
		BusinessName: craftsman.BusinessName(),
		Role:         craftsman.Role().String(),
	}
}

// toDomain converts a database DTO to a craftsman directory entry using
// RestoreCraftsman.
func toDomain(dto CraftsmanDTO) (*craftsman.Craftsman, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	code, err := kernel.NewPartnerCode(dto.Code)
	if err != nil {
		return nil, err
	}

	role, err := actor.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return craftsman.RestoreCraftsman(id, code, dto.BusinessName, role)
}
