package queries

import (
	"context"
	"errors"

	"tableside/internal/core/domain/model/codesheet"
	"tableside/internal/core/ports"
)

// sheetMargin is the page margin of the printed sheet, in page units.
const sheetMargin = 15.0

// codeImagePx is the raster size of each generated code image. The images
// are scaled down on the page, so this only needs to stay comfortably above
// print resolution for a cell-sized code.
const codeImagePx = 256

// RenderCodeSheetQueryHandler produces the printable code sheet for one
// page of tables. Layout geometry comes from the shared Config; image
// generation and document drawing stay behind ports.
type RenderCodeSheetQueryHandler struct {
	config    codesheet.Config
	links     ports.TableLinkResolver
	generator ports.CodeImageGenerator
	renderer  ports.DocumentRenderer
}

// NewRenderCodeSheetQueryHandler creates a handler wiring the sheet
// configuration to its rendering collaborators.
func NewRenderCodeSheetQueryHandler(
	config codesheet.Config,
	links ports.TableLinkResolver,
	generator ports.CodeImageGenerator,
	renderer ports.DocumentRenderer,
) (RenderCodeSheetQueryHandler, error) {
	if err := config.Validate(); err != nil {
		return RenderCodeSheetQueryHandler{}, err
	}
	if links == nil || generator == nil || renderer == nil {
		return RenderCodeSheetQueryHandler{}, errors.New("all rendering collaborators are required")
	}

	return RenderCodeSheetQueryHandler{
		config:    config,
		links:     links,
		generator: generator,
		renderer:  renderer,
	}, nil
}

// Handle renders the requested page as a printable document and returns its
// bytes. The page number is clamped the same way the index view clamps it.
func (h RenderCodeSheetQueryHandler) Handle(_ context.Context, query RenderCodeSheetQuery) ([]byte, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	page := h.config.Page(query.Page())

	return h.renderer.RenderPage(func(canvas ports.PageCanvas) error {
		pageW, pageH := canvas.Size()
		for _, cell := range h.config.Grid(page, pageW, pageH, sheetMargin) {
			png, err := h.generator.Generate(h.links.TableURL(cell.TableID), codeImagePx)
			if err != nil {
				return err
			}
			if err = canvas.DrawImage(png, cell.Image.X, cell.Image.Y, cell.Image.W, cell.Image.H); err != nil {
				return err
			}
			canvas.DrawCenteredText(cell.Label, cell.LabelX, cell.LabelY)
		}
		return nil
	})
}
