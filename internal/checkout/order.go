package checkout

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/luxemoda/storefront-backend/internal/cart"
)

// Customer is the contact form as submitted by the shopper.
type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

func (c Customer) asFieldValues() map[string]string {
	return map[string]string{
		"name":    c.Name,
		"phone":   c.Phone,
		"email":   c.Email,
		"address": c.Address,
	}
}

// OrderLine is a cart line frozen into the order, with its locked unit price
// and computed subtotal.
type OrderLine struct {
	SKU             string            `json:"sku"`
	Name            string            `json:"name"`
	SelectedOptions map[string]string `json:"selected_options,omitempty"`
	Quantity        int               `json:"quantity"`
	UnitPrice       decimal.Decimal   `json:"unit_price"`
	Subtotal        decimal.Decimal   `json:"subtotal"`
}

// OrderPayload is the hand-off document sent to the fulfillment webhook and
// summarized in the WhatsApp link.
type OrderPayload struct {
	OrderID       string          `json:"order_id"`
	CreatedAt     time.Time       `json:"created_at"`
	Customer      Customer        `json:"customer"`
	Lines         []OrderLine     `json:"lines"`
	LineCount     int             `json:"line_count"`
	TotalQuantity int             `json:"total_quantity"`
	Total         decimal.Decimal `json:"total"`
}

// buildOrder freezes the cart and customer into an order payload.
func buildOrder(current *cart.Cart, customer Customer, now time.Time) OrderPayload {
	lines := make([]OrderLine, 0, len(current.Lines))
	for _, l := range current.Lines {
		lines = append(lines, OrderLine{
			SKU:             l.SKU,
			Name:            l.Name,
			SelectedOptions: l.SelectedOptions,
			Quantity:        l.Quantity,
			UnitPrice:       l.UnitPrice,
			Subtotal:        l.Subtotal(),
		})
	}
	return OrderPayload{
		OrderID:       uuid.NewString(),
		CreatedAt:     now.UTC(),
		Customer:      customer,
		Lines:         lines,
		LineCount:     len(lines),
		TotalQuantity: current.ItemCount(),
		Total:         current.Total(),
	}
}
