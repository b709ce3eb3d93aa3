// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var (
	ErrGetCraftsmenQueryIsNotConstructed = errors.New(
		"GetCraftsmenQuery must be created via NewGetCraftsmenQuery constructor",
	)
)

// GetCraftsmenQuery retrieves the craftsman directory for assignment screens.
// Returns entries holding the craftsman role in registration order.
//
// Example:
//
//	query := NewGetCraftsmenQuery()
//	handler := NewGetCraftsmenQueryHandler(db)
//
//	craftsmen, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve craftsmen: %w", err)
//	}
//
//	for _, entry := range craftsmen {
//	    fmt.Printf("Craftsman %s (%s)\n", entry.BusinessName, entry.Code)
//	}
type GetCraftsmenQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCraftsmenQuery creates a query to retrieve the craftsman directory.
// This is a parameterless query that fetches every craftsman entry.
func NewGetCraftsmenQuery() GetCraftsmenQuery {
	return GetCraftsmenQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCraftsmenQueryIsNotConstructed if validation fails.
func (q GetCraftsmenQuery) Validate() error {
	return q.guard.Validate(ErrGetCraftsmenQueryIsNotConstructed)
}

// GetCraftsmenQueryResponse represents a craftsman directory entry in the read
// model. DisplayName carries the combined "CODE-BusinessName" form that the
// assignment request accepts as input.
type GetCraftsmenQueryResponse struct {
	ID           kernel.UUID
	Code         kernel.PartnerCode
	BusinessName string
	DisplayName  string
}
