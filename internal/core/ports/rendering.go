package ports

// CodeImageGenerator produces a scannable image (PNG bytes) for an opaque
// string payload. The core never inspects the payload beyond passing it
// through.
type CodeImageGenerator interface {
	Generate(payload string, sizePx int) ([]byte, error)
}

// TableLinkResolver builds the external-facing URL a table's code points at.
// URL construction (scheme, host, path shape) belongs to the presentation
// layer; the core only forwards the result as a code payload.
type TableLinkResolver interface {
	TableURL(tableID int) string
}

// PageCanvas is one page of a printable document. Coordinates are in page
// units with the origin at the top-left corner. The core only computes
// geometry; pixel work stays behind this interface.
type PageCanvas interface {
	// Size returns the page dimensions in page units.
	Size() (w, h float64)

	// DrawImage places PNG image bytes into the given rectangle.
	DrawImage(png []byte, x, y, w, h float64) error

	// DrawCenteredText draws text horizontally centered on x at baseline y.
	DrawCenteredText(text string, x, y float64)
}

// DocumentRenderer produces a single-page printable document by handing the
// caller a canvas to draw on.
type DocumentRenderer interface {
	RenderPage(draw func(PageCanvas) error) ([]byte, error)
}
