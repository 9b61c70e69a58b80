package http

import (
	"fmt"
	"strings"
)

// TableLinkResolver builds the public URL a table's QR code points at.
// Implements ports.TableLinkResolver.
type TableLinkResolver struct {
	baseURL string
}

// NewTableLinkResolver creates a resolver rooted at the service's public
// base URL, e.g. "https://menu.example.com".
func NewTableLinkResolver(baseURL string) *TableLinkResolver {
	return &TableLinkResolver{baseURL: strings.TrimRight(baseURL, "/")}
}

// TableURL returns the diner-facing URL for one table.
func (r *TableLinkResolver) TableURL(tableID int) string {
	return fmt.Sprintf("%s/table/%d", r.baseURL, tableID)
}
