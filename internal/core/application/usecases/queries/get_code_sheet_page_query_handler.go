package queries

import (
	"context"

	"tableside/internal/core/domain/model/codesheet"
)

// CodeSheetPageResponse is the read model for one page of the code-sheet
// index: which tables it covers and where it sits in the pagination.
type CodeSheetPageResponse struct {
	TableIDs   []int
	Page       int
	TotalPages int
}

// GetCodeSheetPageQueryHandler resolves code-sheet index pages. It shares its
// Config with the printable renderer so both views paginate identically.
type GetCodeSheetPageQueryHandler struct {
	config codesheet.Config
}

// NewGetCodeSheetPageQueryHandler creates a handler over the given sheet
// configuration.
func NewGetCodeSheetPageQueryHandler(config codesheet.Config) (GetCodeSheetPageQueryHandler, error) {
	if err := config.Validate(); err != nil {
		return GetCodeSheetPageQueryHandler{}, err
	}
	return GetCodeSheetPageQueryHandler{config: config}, nil
}

// Handle returns the identifiers of the requested page. The page number is
// clamped into the valid range, so the response always holds a real page.
func (h GetCodeSheetPageQueryHandler) Handle(_ context.Context, query GetCodeSheetPageQuery) (CodeSheetPageResponse, error) {
	if err := query.Validate(); err != nil {
		return CodeSheetPageResponse{}, err
	}

	page := h.config.Page(query.Page())
	return CodeSheetPageResponse{
		TableIDs:   page.TableIDs(),
		Page:       page.Number,
		TotalPages: page.TotalPages,
	}, nil
}
