// Package codesheet computes how the universe of table identifiers is split
// into printable sheets of scannable table codes.
//
// The same pagination math backs both the browsable index view (identifiers
// only) and the printable document (identifiers plus code images and labels),
// so the two surfaces can never disagree about which tables a page holds.
package codesheet

import (
	"fmt"

	"tableside/internal/pkg/errs"
	"tableside/internal/pkg/guard"
)

// Defaults for the sheet layout: 25 codes per page arranged in a 5×5 grid,
// over a universe of 1000 tables.
const (
	DefaultTotalTables = 1000
	DefaultPerPage     = 25
	DefaultCols        = 5
	DefaultRows        = 5
)

// imageFraction is the share of a cell's width the code image occupies.
const imageFraction = 0.8

// labelInset is the distance of the label baseline from the cell bottom,
// in page units.
const labelInset = 5.0

// ErrConfigIsNotConstructed is returned when a Config was not created through
// NewConfig or DefaultConfig.
var ErrConfigIsNotConstructed = fmt.Errorf("Config must be created via NewConfig constructor")

// Config describes a code-sheet universe: how many tables exist and how each
// page is gridded. The per-page count must equal cols × rows.
type Config struct {
	totalTables int
	perPage     int
	cols        int
	rows        int

	guard guard.ConstructorGuard
}

// NewConfig creates a validated sheet configuration.
func NewConfig(totalTables, perPage, cols, rows int) (Config, error) {
	if totalTables <= 0 {
		return Config{}, errs.NewValueIsInvalidErrorWithCause("totalTables",
			fmt.Errorf("%d is not greater than 0", totalTables))
	}
	if cols <= 0 || rows <= 0 {
		return Config{}, errs.NewValueIsInvalidError("grid dimensions")
	}
	if perPage != cols*rows {
		return Config{}, errs.NewValueIsInvalidErrorWithCause("perPage",
			fmt.Errorf("%d does not equal %d×%d", perPage, cols, rows))
	}

	return Config{
		totalTables: totalTables,
		perPage:     perPage,
		cols:        cols,
		rows:        rows,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// DefaultConfig returns the standard 1000-table, 5×5 configuration.
func DefaultConfig() Config {
	cfg, _ := NewConfig(DefaultTotalTables, DefaultPerPage, DefaultCols, DefaultRows)
	return cfg
}

// Validate ensures the Config was created through a constructor.
func (c Config) Validate() error {
	return c.guard.Validate(ErrConfigIsNotConstructed)
}

// TotalTables returns the size of the table-identifier universe.
func (c Config) TotalTables() int {
	return c.totalTables
}

// PerPage returns the number of codes on a full page.
func (c Config) PerPage() int {
	return c.perPage
}

// TotalPages returns the number of pages needed to cover all tables.
func (c Config) TotalPages() int {
	return (c.totalTables + c.perPage - 1) / c.perPage
}

// Page resolves a requested page number into the identifier range it covers.
// Any integer is accepted: out-of-range and non-positive requests are clamped
// into [1, TotalPages].
func (c Config) Page(requested int) Page {
	totalPages := c.TotalPages()

	number := requested
	if number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}

	start := (number-1)*c.perPage + 1
	end := number * c.perPage
	if end > c.totalTables {
		end = c.totalTables
	}

	return Page{Number: number, TotalPages: totalPages, Start: start, End: end}
}

// Page is the identifier range [Start, End] covered by one sheet.
// The range is shorter than a full page only on the final page when the
// universe is not a multiple of the per-page count.
type Page struct {
	Number     int
	TotalPages int
	Start      int
	End        int
}

// TableIDs lists the identifiers on this page in ascending order.
func (p Page) TableIDs() []int {
	ids := make([]int, 0, p.End-p.Start+1)
	for id := p.Start; id <= p.End; id++ {
		ids = append(ids, id)
	}
	return ids
}

// Rect is an axis-aligned rectangle in page units, origin at the top-left of
// the page.
type Rect struct {
	X, Y, W, H float64
}

// Cell is one slot of the printable grid: the code image rectangle and the
// anchor point of the centered label beneath it.
type Cell struct {
	TableID int
	Label   string
	Image   Rect
	LabelX  float64
	LabelY  float64
}

// Grid lays out a page's identifiers on a canvas of the given size. The
// printable area inside the margins is divided into cols × rows cells; cells
// fill in row-major order, top row first. Each code image takes 80% of the
// cell width and is centered; the label sits near the cell bottom, centered
// horizontally.
func (c Config) Grid(page Page, pageW, pageH, margin float64) []Cell {
	cellW := (pageW - 2*margin) / float64(c.cols)
	cellH := (pageH - 2*margin) / float64(c.rows)
	imageSize := cellW * imageFraction

	ids := page.TableIDs()
	cells := make([]Cell, 0, len(ids))
	for idx, tableID := range ids {
		col := idx % c.cols
		row := idx / c.cols

		x := margin + float64(col)*cellW
		top := margin + float64(row)*cellH

		cells = append(cells, Cell{
			TableID: tableID,
			Label:   fmt.Sprintf("Masa %d", tableID),
			Image: Rect{
				X: x + (cellW-imageSize)/2,
				Y: top + (cellH-imageSize)/2,
				W: imageSize,
				H: imageSize,
			},
			LabelX: x + cellW/2,
			LabelY: top + cellH - labelInset,
		})
	}
	return cells
}
