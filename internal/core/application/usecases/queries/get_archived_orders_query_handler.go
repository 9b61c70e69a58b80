package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetArchivedOrdersQueryHandler reads archived orders from the database.
type GetArchivedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetArchivedOrdersQueryHandler creates a handler for the archive view.
func NewGetArchivedOrdersQueryHandler(db *gorm.DB) GetArchivedOrdersQueryHandler {
	return GetArchivedOrdersQueryHandler{db: db}
}

// Handle returns every order with archived = true.
func (h GetArchivedOrdersQueryHandler) Handle(ctx context.Context, query GetArchivedOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return scanOrderRows(h.db.WithContext(ctx),
		"SELECT "+orderColumns+" FROM orders WHERE archived = true")
}
