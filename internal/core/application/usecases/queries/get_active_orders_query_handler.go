package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler reads the non-archived orders from the database.
//
// Example:
//
//	handler := NewGetActiveOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, NewGetActiveOrdersQuery())
//	if err != nil {
//	    return err
//	}
//	for _, o := range orders {
//	    fmt.Printf("table %d: %s\n", o.TableID, o.ItemsSummary())
//	}
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for the active order list.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle returns every order with archived = false.
func (h GetActiveOrdersQueryHandler) Handle(ctx context.Context, query GetActiveOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return scanOrderRows(h.db.WithContext(ctx),
		"SELECT "+orderColumns+" FROM orders WHERE archived = false")
}
