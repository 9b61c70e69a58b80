package order

import (
	"fmt"
	"strings"
)

// Summarize turns a stored items blob into a human-readable, quantity-collapsed
// summary: quantities of identical names are added up, names keep their
// first-seen order, and each entry renders as "{qty}× {name}" joined by ", ".
//
// This is a display-layer tool and never fails: a blob that does not parse as
// an item sequence is returned unchanged, so list views stay usable even with
// corrupted historical data. Empty input yields empty output.
func Summarize(raw string) string {
	if raw == "" {
		return ""
	}

	items, err := ParseItems(raw)
	if err != nil {
		return raw
	}

	return summarizeLines(items)
}

func summarizeLines(items []Item) string {
	type entry struct {
		name string
		qty  int
	}

	var entries []entry
	index := make(map[string]int, len(items))

	for _, item := range items {
		if i, ok := index[item.Name()]; ok {
			entries[i].qty += item.Qty()
			continue
		}
		index[item.Name()] = len(entries)
		entries = append(entries, entry{name: item.Name(), qty: item.Qty()})
	}

	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = fmt.Sprintf("%d× %s", e.qty, e.name)
	}
	return strings.Join(parts, ", ")
}
