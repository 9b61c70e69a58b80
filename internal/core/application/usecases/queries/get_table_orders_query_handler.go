package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetTableOrdersQueryHandler reads one table's open orders, newest first.
type GetTableOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetTableOrdersQueryHandler creates a handler for the per-table view.
func NewGetTableOrdersQueryHandler(db *gorm.DB) GetTableOrdersQueryHandler {
	return GetTableOrdersQueryHandler{db: db}
}

// Handle returns the table's non-archived orders ordered by order date
// descending.
func (h GetTableOrdersQueryHandler) Handle(ctx context.Context, query GetTableOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return scanOrderRows(h.db.WithContext(ctx),
		"SELECT "+orderColumns+" FROM orders WHERE table_id = ? AND archived = false ORDER BY order_date DESC",
		query.TableID().Int())
}
