package queries

import (
	"errors"

	"tableside/internal/pkg/guard"
)

var ErrGetArchivedOrdersQueryIsNotConstructed = errors.New(
	"GetArchivedOrdersQuery must be created via NewGetArchivedOrdersQuery constructor",
)

// GetArchivedOrdersQuery retrieves all archived orders for the history view.
type GetArchivedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetArchivedOrdersQuery creates a query for the archived order list.
func NewGetArchivedOrdersQuery() GetArchivedOrdersQuery {
	return GetArchivedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetArchivedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetArchivedOrdersQueryIsNotConstructed)
}
