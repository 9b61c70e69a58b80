package order

import (
	"encoding/json"
	"fmt"

	"tableside/internal/pkg/errs"
)

// Item is one line of an order. It is a union of two shapes: a bare label
// (serialized as a JSON string, quantity 1) or a labeled quantity (serialized
// as an object with "name" and "qty"). The shape is preserved across
// marshal/unmarshal so the stored blob round-trips losslessly.
type Item struct {
	name string
	qty  int
	bare bool
}

// NewItem creates a bare-label item line with an implicit quantity of 1.
func NewItem(name string) (Item, error) {
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("item name")
	}
	return Item{name: name, qty: 1, bare: true}, nil
}

// NewItemWithQty creates an item line with an explicit quantity.
// Quantity must be at least 1.
func NewItemWithQty(name string, qty int) (Item, error) {
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("item name")
	}
	if qty < 1 {
		return Item{}, errs.NewValueIsOutOfRangeError("qty", qty, 1, maxItemQty)
	}
	return Item{name: name, qty: qty}, nil
}

// maxItemQty bounds a single line's quantity; it exists only to give the
// out-of-range error a meaningful upper bound.
const maxItemQty = 1000

// Name returns the item's menu label.
func (i Item) Name() string {
	return i.name
}

// Qty returns the line quantity (1 for bare labels).
func (i Item) Qty() int {
	return i.qty
}

// Validate checks that the item was not created as a zero value.
func (i Item) Validate() error {
	if i.name == "" || i.qty < 1 {
		return errs.NewValueIsInvalidError("item")
	}
	return nil
}

// itemDTO is the object shape of a serialized item line.
type itemDTO struct {
	Name string          `json:"name"`
	Qty  json.RawMessage `json:"qty,omitempty"`
}

// MarshalJSON writes the item back in the shape it was created with:
// a plain string for bare labels, an object otherwise.
func (i Item) MarshalJSON() ([]byte, error) {
	if i.bare {
		return json.Marshal(i.name)
	}
	return json.Marshal(struct {
		Name string `json:"name"`
		Qty  int    `json:"qty"`
	}{Name: i.name, Qty: i.qty})
}

// UnmarshalJSON accepts either a bare string or a {name, qty} object.
// A missing or non-numeric qty defaults to 1.
func (i *Item) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err == nil {
		i.name = label
		i.qty = 1
		i.bare = true
		return nil
	}

	var dto itemDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return fmt.Errorf("item line is neither a label nor an object: %w", err)
	}

	i.name = dto.Name
	i.qty = coerceQty(dto.Qty)
	i.bare = false
	return nil
}

// coerceQty turns the raw qty field into an integer quantity.
// Absent, malformed, or sub-1 values all collapse to 1.
func coerceQty(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 1
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err != nil {
		// qty may be a numeric string ("2"); anything else defaults to 1
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 1
		}
		var f float64
		if _, err := fmt.Sscanf(s, "%g", &f); err != nil {
			return 1
		}
		n = f
	}

	if n < 1 {
		return 1
	}
	return int(n)
}

// ParseItems decodes the stored items blob into item lines.
func ParseItems(raw string) ([]Item, error) {
	var items []Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("items", err)
	}
	return items, nil
}

// EncodeItems serializes item lines into the stored blob form.
func EncodeItems(items []Item) (string, error) {
	data, err := json.Marshal(items)
	if err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause("items", err)
	}
	return string(data), nil
}
