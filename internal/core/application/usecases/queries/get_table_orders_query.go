package queries

import (
	"errors"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/guard"
)

var ErrGetTableOrdersQueryIsNotConstructed = errors.New(
	"GetTableOrdersQuery must be created via NewGetTableOrdersQuery constructor",
)

// GetTableOrdersQuery retrieves one table's non-archived orders for the
// diner-facing view. Most recent orders come first; that ordering is part of
// the contract.
type GetTableOrdersQuery struct { //nolint:recvcheck //using for validation
	tableID kernel.TableID

	guard guard.ConstructorGuard
}

// NewGetTableOrdersQuery creates a query for one table's open orders.
func NewGetTableOrdersQuery(tableID kernel.TableID) (GetTableOrdersQuery, error) {
	query := GetTableOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setTableID(tableID); err != nil {
		return GetTableOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetTableOrdersQueryIsNotConstructed)
}

// TableID returns the table being queried.
func (q GetTableOrdersQuery) TableID() kernel.TableID {
	return q.tableID
}

func (q *GetTableOrdersQuery) setTableID(tableID kernel.TableID) error {
	if err := tableID.Validate(); err != nil {
		return err
	}

	q.tableID = tableID
	return nil
}
