// Package pdf renders printable documents with gofpdf. Pages are A4 in
// millimetre units, matching the geometry the layout engine computes.
package pdf

import (
	"bytes"
	"fmt"

	"tableside/internal/core/ports"

	"github.com/jung-kurt/gofpdf"
)

const (
	fontFamily = "Helvetica"
	fontSizePt = 10
)

// Renderer implements ports.DocumentRenderer producing single-page A4 PDFs.
type Renderer struct{}

// NewRenderer creates an A4 PDF renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderPage creates one A4 page, lets the caller draw on it and returns the
// finished PDF bytes.
func (r *Renderer) RenderPage(draw func(ports.PageCanvas) error) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetFont(fontFamily, "", fontSizePt)
	doc.AddPage()

	canvas := &pageCanvas{doc: doc, translate: doc.UnicodeTranslatorFromDescriptor("")}
	if err := draw(canvas); err != nil {
		return nil, err
	}
	if doc.Err() {
		return nil, doc.Error()
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// pageCanvas adapts one gofpdf page to the PageCanvas interface.
type pageCanvas struct {
	doc       *gofpdf.Fpdf
	translate func(string) string
	images    int
}

func (c *pageCanvas) Size() (float64, float64) {
	return c.doc.GetPageSize()
}

func (c *pageCanvas) DrawImage(png []byte, x, y, w, h float64) error {
	// Each image needs a distinct name in the PDF resource dictionary.
	c.images++
	name := fmt.Sprintf("img-%d", c.images)

	options := gofpdf.ImageOptions{ImageType: "PNG"}
	c.doc.RegisterImageOptionsReader(name, options, bytes.NewReader(png))
	c.doc.ImageOptions(name, x, y, w, h, false, options, 0, "")

	if c.doc.Err() {
		return c.doc.Error()
	}
	return nil
}

func (c *pageCanvas) DrawCenteredText(text string, x, y float64) {
	translated := c.translate(text)
	c.doc.Text(x-c.doc.GetStringWidth(translated)/2, y, translated)
}
