// Package queries contains read-side operations for the ordering system.
// Query handlers read through the database connection directly and return
// plain response structs shaped for the presentation layer.
package queries

import (
	"time"

	"tableside/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// OrderResponse is the read model for one order row. Items stays in raw
// stored form: exports carry the raw blob, and the interactive view asks for
// the collapsed summary explicitly via ItemsSummary.
type OrderResponse struct {
	ID           int64
	TableID      int
	OrderDate    time.Time
	Items        string
	Status       string
	SpecialNotes string
}

// ItemsSummary renders the raw items blob as a quantity-collapsed display
// string. Malformed blobs come back unchanged, so the view never breaks on
// corrupted historical data.
func (r OrderResponse) ItemsSummary() string {
	return order.Summarize(r.Items)
}

// orderColumns is the selected column list shared by the list queries, in
// the tuple order the presentation layer exposes.
const orderColumns = "id, table_id, order_date, items, status, special_notes"

// scanOrderRows drains a result set of orderColumns rows into responses.
func scanOrderRows(db *gorm.DB, query string, args ...any) ([]OrderResponse, error) {
	rows, err := db.Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		var resp OrderResponse
		if err = rows.Scan(
			&resp.ID,
			&resp.TableID,
			&resp.OrderDate,
			&resp.Items,
			&resp.Status,
			&resp.SpecialNotes,
		); err != nil {
			return nil, err
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
