package browse

import (
	"strings"

	"github.com/luxemoda/storefront-backend/internal/catalog"
	"github.com/shopspring/decimal"
)

// Facets are the distinct filterable values present in a product list, in
// first-seen order. They are derived from the full catalog only — never from
// a filtered subset — so the filter panel always shows every option.
type Facets struct {
	Categories []string        `json:"categories"`
	Brands     []string        `json:"brands"`
	Sizes      []string        `json:"sizes"`
	Colors     []catalog.Color `json:"colors"`
	Genders    []string        `json:"genders"`
	Tags       []string        `json:"tags"`
	PriceMin   decimal.Decimal `json:"price_min"`
	PriceMax   decimal.Decimal `json:"price_max"`
}

// DeriveFacets computes the facet sets for the given product list.
func DeriveFacets(products []catalog.Product) Facets {
	var facets Facets
	categories := newDistinct()
	brands := newDistinct()
	sizes := newDistinct()
	genders := newDistinct()
	tags := newDistinct()
	colorSeen := map[string]struct{}{}

	for i, p := range products {
		categories.add(p.Category)
		brands.add(p.Brand)
		genders.add(p.Gender)
		for _, s := range p.Details.Sizes {
			sizes.add(s)
		}
		for _, t := range p.Tags {
			tags.add(t)
		}
		for _, c := range p.Details.Colors {
			key := strings.ToLower(c.Name)
			if _, ok := colorSeen[key]; ok {
				continue
			}
			colorSeen[key] = struct{}{}
			facets.Colors = append(facets.Colors, c)
		}

		price := p.EffectivePrice()
		if i == 0 {
			facets.PriceMin = price
			facets.PriceMax = price
			continue
		}
		if price.LessThan(facets.PriceMin) {
			facets.PriceMin = price
		}
		if price.GreaterThan(facets.PriceMax) {
			facets.PriceMax = price
		}
	}

	facets.Categories = categories.values
	facets.Brands = brands.values
	facets.Sizes = sizes.values
	facets.Genders = genders.values
	facets.Tags = tags.values
	return facets
}

// distinct accumulates values in first-seen order, skipping blanks and
// case-insensitive duplicates.
type distinct struct {
	seen   map[string]struct{}
	values []string
}

func newDistinct() *distinct {
	return &distinct{seen: map[string]struct{}{}}
}

func (d *distinct) add(value string) {
	if value == "" {
		return
	}
	key := strings.ToLower(value)
	if _, ok := d.seen[key]; ok {
		return
	}
	d.seen[key] = struct{}{}
	d.values = append(d.values, value)
}
