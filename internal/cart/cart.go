package cart

import (
	"github.com/shopspring/decimal"
)

// Line is one cart entry. Its identity is the (SKU, SelectedOptions) pair:
// the same SKU in a different size or color is a different line.
type Line struct {
	SKU             string            `json:"sku"`
	Name            string            `json:"name"`
	Photo           string            `json:"photo,omitempty"`
	SelectedOptions map[string]string `json:"selected_options"`
	Quantity        int               `json:"quantity"`
	// UnitPrice is locked at add time; later catalog price changes do not
	// retroactively alter existing lines.
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Matches reports whether the line has the given identity. Option maps must
// match exactly, key for key.
func (l Line) Matches(sku string, opts map[string]string) bool {
	if l.SKU != sku {
		return false
	}
	if len(l.SelectedOptions) != len(opts) {
		return false
	}
	for k, v := range opts {
		if l.SelectedOptions[k] != v {
			return false
		}
	}
	return true
}

// Subtotal is the line's locked price times its quantity.
func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is the full set of a shopper's lines.
type Cart struct {
	Lines []Line `json:"lines"`
}

// Total sums unit price times quantity across all lines.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// ItemCount sums quantities across all lines.
func (c Cart) ItemCount() int {
	count := 0
	for _, l := range c.Lines {
		count += l.Quantity
	}
	return count
}

// IsEmpty reports whether the cart has no lines.
func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func (c *Cart) findLine(sku string, opts map[string]string) int {
	for i, l := range c.Lines {
		if l.Matches(sku, opts) {
			return i
		}
	}
	return -1
}

func (c *Cart) clone() *Cart {
	out := &Cart{Lines: make([]Line, len(c.Lines))}
	copy(out.Lines, c.Lines)
	return out
}
