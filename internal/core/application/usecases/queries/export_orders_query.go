package queries

import (
	"errors"

	"tableside/internal/pkg/errs"
	"tableside/internal/pkg/guard"
)

var ErrExportOrdersQueryIsNotConstructed = errors.New(
	"ExportOrdersQuery must be created via NewExportOrdersQuery constructor",
)

// ExportScope selects which slice of the order book an export covers.
type ExportScope string

const (
	// ExportScopeActive exports orders that have not been archived.
	ExportScopeActive ExportScope = "active"

	// ExportScopeArchived exports orders already moved to the archive.
	ExportScopeArchived ExportScope = "archived"
)

// ExportOrdersQuery asks for a CSV dump of either the active board or the
// archive.
type ExportOrdersQuery struct { //nolint:recvcheck //using for validation
	scope ExportScope

	guard guard.ConstructorGuard
}

// NewExportOrdersQuery creates a validated export query.
func NewExportOrdersQuery(scope ExportScope) (ExportOrdersQuery, error) {
	query := ExportOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setScope(scope); err != nil {
		return ExportOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ExportOrdersQuery) Validate() error {
	return q.guard.Validate(ErrExportOrdersQueryIsNotConstructed)
}

// Scope returns the requested export scope.
func (q ExportOrdersQuery) Scope() ExportScope {
	return q.scope
}

func (q *ExportOrdersQuery) setScope(scope ExportScope) error {
	switch scope {
	case ExportScopeActive, ExportScopeArchived:
		q.scope = scope
		return nil
	default:
		return errs.NewValueIsInvalidError("scope")
	}
}
