package browse

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/luxemoda/storefront-backend/internal/catalog"
	"github.com/luxemoda/storefront-backend/pkg/pagination"
	"github.com/shopspring/decimal"
)

// Query is the transient browse state: filters, sort and page. It round-trips
// through the URL query string so a filtered view is shareable. A query
// without an explicit page starts at page 1, which is how changing criteria
// resets pagination.
type Query struct {
	Filters Filters
	Sort    SortKey
	Page    pagination.Params
}

// ParseQuery reconstructs a Query from URL values.
func ParseQuery(values url.Values, defaultPageSize int) Query {
	q := Query{
		Filters: Filters{
			Categories: splitMulti(values, "category"),
			Brands:     splitMulti(values, "brand"),
			Sizes:      splitMulti(values, "size"),
			Colors:     splitMulti(values, "color"),
			Tags:       splitMulti(values, "tag"),
			Gender:     strings.TrimSpace(values.Get("gender")),
			Search:     strings.TrimSpace(values.Get("q")),
		},
		Sort: ParseSortKey(values.Get("sort")),
	}
	q.Filters.PriceMin = parsePrice(values.Get("price_min"))
	q.Filters.PriceMax = parsePrice(values.Get("price_max"))

	q.Page.Page, _ = strconv.Atoi(values.Get("page"))
	q.Page.PageSize, _ = strconv.Atoi(values.Get("page_size"))
	if q.Page.PageSize <= 0 {
		q.Page.PageSize = defaultPageSize
	}
	q.Page = q.Page.Normalize()
	return q
}

// Encode renders the query back into URL values, omitting inactive criteria.
func (q Query) Encode() url.Values {
	values := url.Values{}
	joinMulti(values, "category", q.Filters.Categories)
	joinMulti(values, "brand", q.Filters.Brands)
	joinMulti(values, "size", q.Filters.Sizes)
	joinMulti(values, "color", q.Filters.Colors)
	joinMulti(values, "tag", q.Filters.Tags)
	if q.Filters.Gender != "" {
		values.Set("gender", q.Filters.Gender)
	}
	if q.Filters.Search != "" {
		values.Set("q", q.Filters.Search)
	}
	if q.Filters.PriceMin != nil {
		values.Set("price_min", q.Filters.PriceMin.String())
	}
	if q.Filters.PriceMax != nil {
		values.Set("price_max", q.Filters.PriceMax.String())
	}
	if q.Sort != SortUnset {
		values.Set("sort", string(q.Sort))
	}
	if q.Page.Page > 1 {
		values.Set("page", strconv.Itoa(q.Page.Page))
	}
	return values
}

// Result is one display-ready page of the browse pipeline.
type Result struct {
	Items []catalog.Product `json:"items"`
	Page  pagination.Page   `json:"page"`
}

// Run applies filter, sort and pagination in that order. An empty item list
// is a valid result, not an error.
func Run(products []catalog.Product, q Query) Result {
	filtered := Apply(products, q.Filters)
	sorted := Sort(filtered, q.Sort)
	start, end := q.Page.Bounds(len(sorted))
	return Result{
		Items: sorted[start:end],
		Page:  q.Page.Describe(len(sorted)),
	}
}

func splitMulti(values url.Values, key string) []string {
	var out []string
	for _, raw := range values[key] {
		for _, part := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}
	return out
}

func joinMulti(values url.Values, key string, items []string) {
	if len(items) > 0 {
		values.Set(key, strings.Join(items, ","))
	}
}

func parsePrice(raw string) *decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil || value.IsNegative() {
		return nil
	}
	return &value
}
