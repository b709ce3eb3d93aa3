package queries

import (
	"context"
	"fmt"

	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCraftsmenQueryHandler retrieves the craftsman directory from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetCraftsmenQueryHandler(db)
//	query := NewGetCraftsmenQuery()
//
//	craftsmen, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get craftsmen: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d craftsmen\n", len(craftsmen))
type GetCraftsmenQueryHandler struct {
	db *gorm.DB
}

// NewGetCraftsmenQueryHandler creates a handler for craftsman directory queries.
// Requires a GORM database connection for query execution.
func NewGetCraftsmenQueryHandler(db *gorm.DB) GetCraftsmenQueryHandler {
	return GetCraftsmenQueryHandler{db: db}
}

// Handle executes the query to retrieve all craftsman directory entries.
// Returns entries holding the craftsman role in registration order, which is
// also the order the reassignment policy scans them in.
// Converts database types to domain types for consistency.
func (h GetCraftsmenQueryHandler) Handle(
	ctx context.Context,
	query GetCraftsmenQuery,
) ([]GetCraftsmenQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	craftsmen := make([]GetCraftsmenQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			code,
			business_name
		FROM craftsmen
		WHERE role = ?
		ORDER BY seq
	`, actor.RoleCraftsman.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetCraftsmenQueryResponse
		var id uuid.UUID
		var code string

		err = rows.Scan(
			&id,
			&code,
			&entry.BusinessName,
		)
		if err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.ID = entryID

		partnerCode, codeErr := kernel.NewPartnerCode(code)
		if codeErr != nil {
			return nil, codeErr
		}
		entry.Code = partnerCode

		entry.DisplayName = fmt.Sprintf("%s-%s", entry.Code, entry.BusinessName)
		craftsmen = append(craftsmen, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return craftsmen, nil
}
