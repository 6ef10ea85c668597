package browse

import (
	"sort"

	"github.com/luxemoda/storefront-backend/internal/catalog"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey names the supported orderings.
type SortKey string

const (
	SortUnset     SortKey = ""
	SortNameAsc   SortKey = "name-asc"
	SortNameDesc  SortKey = "name-desc"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortNewest    SortKey = "newest"
)

// ParseSortKey maps a query value onto a known key, defaulting to unset.
func ParseSortKey(value string) SortKey {
	switch SortKey(value) {
	case SortNameAsc, SortNameDesc, SortPriceAsc, SortPriceDesc, SortNewest:
		return SortKey(value)
	}
	return SortUnset
}

// Sort returns a sorted copy of products. The sort is stable: equal keys keep
// their relative input order. An unset key preserves catalog order.
func Sort(products []catalog.Product, key SortKey) []catalog.Product {
	out := make([]catalog.Product, len(products))
	copy(out, products)
	if key == SortUnset {
		return out
	}

	less := lessFunc(key)
	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j])
	})
	return out
}

func lessFunc(key SortKey) func(a, b catalog.Product) bool {
	switch key {
	case SortNameAsc, SortNameDesc:
		collator := collate.New(language.Spanish)
		asc := key == SortNameAsc
		return func(a, b catalog.Product) bool {
			cmp := collator.CompareString(a.Name, b.Name)
			if asc {
				return cmp < 0
			}
			return cmp > 0
		}
	case SortPriceAsc:
		return func(a, b catalog.Product) bool {
			return a.EffectivePrice().LessThan(b.EffectivePrice())
		}
	case SortPriceDesc:
		return func(a, b catalog.Product) bool {
			return a.EffectivePrice().GreaterThan(b.EffectivePrice())
		}
	case SortNewest:
		return func(a, b catalog.Product) bool {
			return a.DateAdded.After(b.DateAdded)
		}
	}
	return func(a, b catalog.Product) bool { return false }
}
