package queries

import (
	"errors"

	"tableside/internal/pkg/guard"
)

var ErrGetCodeSheetPageQueryIsNotConstructed = errors.New(
	"GetCodeSheetPageQuery must be created via NewGetCodeSheetPageQuery constructor",
)

// GetCodeSheetPageQuery asks which table identifiers belong on one page of
// the code-sheet index. Any page number is accepted here; the handler clamps
// it into the valid range.
type GetCodeSheetPageQuery struct {
	page int

	guard guard.ConstructorGuard
}

// NewGetCodeSheetPageQuery creates a query for the requested page number.
func NewGetCodeSheetPageQuery(page int) GetCodeSheetPageQuery {
	return GetCodeSheetPageQuery{
		page:  page,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetCodeSheetPageQuery) Validate() error {
	return q.guard.Validate(ErrGetCodeSheetPageQueryIsNotConstructed)
}

// Page returns the requested page number as given, before clamping.
func (q GetCodeSheetPageQuery) Page() int {
	return q.page
}
