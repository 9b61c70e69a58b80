package queries

import (
	"errors"

	"tableside/internal/pkg/guard"
)

var ErrRenderCodeSheetQueryIsNotConstructed = errors.New(
	"RenderCodeSheetQuery must be created via NewRenderCodeSheetQuery constructor",
)

// RenderCodeSheetQuery asks for the printable document of one code-sheet
// page. Page clamping follows the same rules as the index view.
type RenderCodeSheetQuery struct {
	page int

	guard guard.ConstructorGuard
}

// NewRenderCodeSheetQuery creates a query for the requested page number.
func NewRenderCodeSheetQuery(page int) RenderCodeSheetQuery {
	return RenderCodeSheetQuery{
		page:  page,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q RenderCodeSheetQuery) Validate() error {
	return q.guard.Validate(ErrRenderCodeSheetQueryIsNotConstructed)
}

// Page returns the requested page number as given, before clamping.
func (q RenderCodeSheetQuery) Page() int {
	return q.page
}
