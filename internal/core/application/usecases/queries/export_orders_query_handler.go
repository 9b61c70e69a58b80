package queries

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"

	"gorm.io/gorm"
)

// csvDateLayout is the timestamp format used in exported rows.
const csvDateLayout = "2006-01-02 15:04:05"

// csvHeader is the column header row of every export.
var csvHeader = []string{"ID", "Table", "Order Date", "Items", "Status", "Notes"}

// ExportOrdersQueryHandler renders a scope of the order book as CSV.
type ExportOrdersQueryHandler struct {
	db *gorm.DB
}

// NewExportOrdersQueryHandler creates a handler producing CSV exports.
func NewExportOrdersQueryHandler(db *gorm.DB) ExportOrdersQueryHandler {
	return ExportOrdersQueryHandler{db: db}
}

// Handle returns the CSV document for the requested scope. Items are exported
// in their raw stored form, not the collapsed display summary.
func (h ExportOrdersQueryHandler) Handle(ctx context.Context, query ExportOrdersQuery) ([]byte, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	archived := query.Scope() == ExportScopeArchived
	orders, err := scanOrderRows(h.db.WithContext(ctx),
		"SELECT "+orderColumns+" FROM orders WHERE archived = ? ORDER BY order_date DESC", archived)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err = w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, o := range orders {
		record := []string{
			strconv.FormatInt(o.ID, 10),
			strconv.Itoa(o.TableID),
			o.OrderDate.Format(csvDateLayout),
			o.Items,
			o.Status,
			o.SpecialNotes,
		}
		if err = w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err = w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
