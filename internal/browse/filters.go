package browse

import (
	"strings"

	"github.com/luxemoda/storefront-backend/internal/catalog"
	"github.com/shopspring/decimal"
)

// Filters describes the active criteria. A product is retained iff it
// satisfies every non-empty criterion; within a single criterion's selected
// values any match suffices.
type Filters struct {
	Categories []string
	Brands     []string
	Sizes      []string
	Colors     []string
	Tags       []string
	Gender     string
	PriceMin   *decimal.Decimal
	PriceMax   *decimal.Decimal
	Search     string
}

// IsZero reports whether no criterion is active.
func (f Filters) IsZero() bool {
	return len(f.Categories) == 0 && len(f.Brands) == 0 && len(f.Sizes) == 0 &&
		len(f.Colors) == 0 && len(f.Tags) == 0 && f.Gender == "" &&
		f.PriceMin == nil && f.PriceMax == nil && strings.TrimSpace(f.Search) == ""
}

// Apply returns the ordered subset of products matching the filters. Input
// order is preserved; the input slice is never mutated.
func Apply(products []catalog.Product, f Filters) []catalog.Product {
	if f.IsZero() {
		out := make([]catalog.Product, len(products))
		copy(out, products)
		return out
	}

	out := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if matches(p, f) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p catalog.Product, f Filters) bool {
	if len(f.Categories) > 0 && !containsFold(f.Categories, p.Category) {
		return false
	}
	if f.Gender != "" && !strings.EqualFold(p.Gender, f.Gender) {
		return false
	}
	if len(f.Brands) > 0 && !containsFold(f.Brands, p.Brand) {
		return false
	}
	if len(f.Sizes) > 0 && !anyFold(p.Details.Sizes, f.Sizes) {
		return false
	}
	if len(f.Colors) > 0 && !anyColor(p.Details.Colors, f.Colors) {
		return false
	}
	if len(f.Tags) > 0 && !anyFold(p.Tags, f.Tags) {
		return false
	}

	price := p.EffectivePrice()
	if f.PriceMin != nil && price.LessThan(*f.PriceMin) {
		return false
	}
	if f.PriceMax != nil && price.GreaterThan(*f.PriceMax) {
		return false
	}

	if term := strings.TrimSpace(f.Search); term != "" && !matchesSearch(p, term) {
		return false
	}
	return true
}

// matchesSearch does a case-insensitive substring scan across the product's
// searchable text fields.
func matchesSearch(p catalog.Product, term string) bool {
	term = strings.ToLower(term)
	fields := []string{p.Name, p.ShortDescription, p.LongDescription, p.Brand}
	fields = append(fields, p.Tags...)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func containsFold(haystack []string, needle string) bool {
	for _, v := range haystack {
		if strings.EqualFold(v, needle) {
			return true
		}
	}
	return false
}

// anyFold reports whether any of the product's values appears in the selection.
func anyFold(values, selected []string) bool {
	for _, v := range values {
		if containsFold(selected, v) {
			return true
		}
	}
	return false
}

func anyColor(colors []catalog.Color, selected []string) bool {
	for _, c := range colors {
		if containsFold(selected, c.Name) {
			return true
		}
	}
	return false
}
