package catalog

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Color pairs a display name with its hex swatch.
type Color struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// Details holds the per-variant attributes a product can carry. The set is
// closed so consumers can match on it instead of probing an open dictionary.
type Details struct {
	Sizes    []string `json:"available_sizes"`
	Colors   []Color  `json:"available_colors"`
	Material string   `json:"material,omitempty"`
	Care     string   `json:"care,omitempty"`
}

// Product is one catalog entry. Products are immutable after load; the
// storefront never mutates them.
type Product struct {
	SKU              string           `json:"sku"`
	Name             string           `json:"name"`
	Brand            string           `json:"brand"`
	Category         string           `json:"category"`
	Gender           string           `json:"gender,omitempty"`
	ShortDescription string           `json:"short_description"`
	LongDescription  string           `json:"long_description"`
	OriginalPrice    decimal.Decimal  `json:"original_price"`
	OfferPrice       *decimal.Decimal `json:"offer_price,omitempty"`
	OnOffer          bool             `json:"on_offer"`
	DiscountPercent  int              `json:"discount_percent,omitempty"`
	Photos           []string         `json:"photos"`
	Available        bool             `json:"available"`
	StockQuantity    int              `json:"stock_quantity"`
	Details          Details          `json:"details"`
	Tags             []string         `json:"tags"`
	Slug             string           `json:"slug"`
	DateAdded        time.Time        `json:"date_added"`
}

// EffectivePrice returns the offer price when the product is flagged on offer
// and an offer price exists, else the original price.
func (p Product) EffectivePrice() decimal.Decimal {
	if p.OnOffer && p.OfferPrice != nil {
		return *p.OfferPrice
	}
	return p.OriginalPrice
}

// HasTag reports whether the product carries the given tag.
func (p Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
