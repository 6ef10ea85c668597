package browse

import (
	"testing"
	"time"

	"github.com/luxemoda/storefront-backend/internal/catalog"
	"github.com/shopspring/decimal"
)

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func fixtureProducts() []catalog.Product {
	day := func(d int) time.Time {
		return time.Date(2025, 5, d, 0, 0, 0, 0, time.UTC)
	}
	return []catalog.Product{
		{
			SKU: "A1", Name: "Vestido Midi", Brand: "Luxe", Category: "vestidos", Gender: "mujer",
			OriginalPrice: dec(1200), Photos: []string{"a1.jpg"}, Available: true, StockQuantity: 5,
			Details:   catalog.Details{Sizes: []string{"S", "M"}, Colors: []catalog.Color{{Name: "Rojo", Hex: "#ff0000"}}},
			Tags:      []string{"popular"},
			Slug:      "vestido-midi", DateAdded: day(1),
		},
		{
			SKU: "B2", Name: "Blusa Seda", Brand: "Aria", Category: "blusas", Gender: "mujer",
			OriginalPrice: dec(800), OfferPrice: decPtr(600), OnOffer: true,
			Photos: []string{"b2.jpg"}, Available: true, StockQuantity: 3,
			Details:   catalog.Details{Sizes: []string{"M"}, Colors: []catalog.Color{{Name: "Blanco", Hex: "#ffffff"}}},
			Tags:      []string{"offer"},
			Slug:      "blusa-seda", DateAdded: day(3),
		},
		{
			SKU: "C3", Name: "Chamarra Denim", Brand: "Urbano", Category: "chamarras", Gender: "hombre",
			OriginalPrice: dec(1500), Photos: []string{"c3.jpg"}, Available: true, StockQuantity: 2,
			Details:   catalog.Details{Sizes: []string{"L", "XL"}, Colors: []catalog.Color{{Name: "Azul", Hex: "#0000ff"}}},
			Tags:      []string{"popular", "nuevo"},
			Slug:      "chamarra-denim", DateAdded: day(5),
		},
		{
			SKU: "D4", Name: "Falda Plisada", Brand: "Aria", Category: "faldas", Gender: "mujer",
			OriginalPrice: dec(950), OfferPrice: decPtr(700), OnOffer: true,
			Photos: []string{"d4.jpg"}, Available: false, StockQuantity: 0,
			Details:   catalog.Details{Sizes: []string{"S"}, Colors: []catalog.Color{{Name: "Rojo", Hex: "#cc0000"}}},
			Tags:      []string{"offer"},
			Slug:      "falda-plisada", DateAdded: day(2),
		},
		{
			SKU: "E5", Name: "Pantalón Lino", Brand: "Luxe", Category: "pantalones", Gender: "hombre",
			OriginalPrice: dec(1100), Photos: []string{"e5.jpg"}, Available: true, StockQuantity: 8,
			Details:   catalog.Details{Sizes: []string{"M", "L"}, Colors: []catalog.Color{{Name: "Beige", Hex: "#f5f5dc"}}},
			Tags:      []string{"nuevo"},
			Slug:      "pantalon-lino", DateAdded: day(4),
		},
	}
}

func skus(products []catalog.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.SKU
	}
	return out
}

func assertSKUs(t *testing.T, got []catalog.Product, want ...string) {
	t.Helper()
	gotSKUs := skus(got)
	if len(gotSKUs) != len(want) {
		t.Fatalf("expected %v, got %v", want, gotSKUs)
	}
	for i := range want {
		if gotSKUs[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, gotSKUs)
		}
	}
}

func TestFilterByOfferTagKeepsCatalogOrder(t *testing.T) {
	// two of five products carry the "offer" tag; the subset preserves
	// relative input order when no sort is set
	result := Apply(fixtureProducts(), Filters{Tags: []string{"offer"}})
	assertSKUs(t, result, "B2", "D4")
}

func TestFilterANDsAcrossFacetsORsWithin(t *testing.T) {
	products := fixtureProducts()

	result := Apply(products, Filters{Brands: []string{"Aria", "Urbano"}})
	assertSKUs(t, result, "B2", "C3", "D4")

	result = Apply(products, Filters{Brands: []string{"Aria"}, Sizes: []string{"S"}})
	assertSKUs(t, result, "D4")

	result = Apply(products, Filters{Gender: "hombre", Colors: []string{"Azul"}})
	assertSKUs(t, result, "C3")
}

func TestFilterPriceRangeUsesEffectivePrice(t *testing.T) {
	// B2 sells at 600 on offer, original 800: a max of 700 must include it
	result := Apply(fixtureProducts(), Filters{PriceMax: decPtr(700)})
	assertSKUs(t, result, "B2", "D4")

	result = Apply(fixtureProducts(), Filters{PriceMin: decPtr(1100), PriceMax: decPtr(1300)})
	assertSKUs(t, result, "A1", "E5")
}

func TestFilterSearchScansTextFieldsCaseInsensitive(t *testing.T) {
	result := Apply(fixtureProducts(), Filters{Search: "DENIM"})
	assertSKUs(t, result, "C3")

	// brand text is searchable too
	result = Apply(fixtureProducts(), Filters{Search: "aria"})
	assertSKUs(t, result, "B2", "D4")

	result = Apply(fixtureProducts(), Filters{Search: "no-such-thing"})
	assertSKUs(t, result)
}

func TestFilterIsIdempotent(t *testing.T) {
	f := Filters{Tags: []string{"popular"}, Gender: "mujer"}
	once := Apply(fixtureProducts(), f)
	twice := Apply(once, f)

	if len(once) != len(twice) {
		t.Fatalf("expected identical results, got %d then %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].SKU != twice[i].SKU {
			t.Fatalf("expected identical order, got %v vs %v", skus(once), skus(twice))
		}
	}
}

func TestSortByPrice(t *testing.T) {
	result := Sort(fixtureProducts(), SortPriceAsc)
	assertSKUs(t, result, "B2", "D4", "E5", "A1", "C3")

	result = Sort(fixtureProducts(), SortPriceDesc)
	assertSKUs(t, result, "C3", "A1", "E5", "D4", "B2")
}

func TestSortByNewest(t *testing.T) {
	result := Sort(fixtureProducts(), SortNewest)
	assertSKUs(t, result, "C3", "E5", "B2", "D4", "A1")
}

func TestSortByNameIsLocaleAware(t *testing.T) {
	result := Sort(fixtureProducts(), SortNameAsc)
	assertSKUs(t, result, "B2", "C3", "D4", "E5", "A1")
}

func TestSortIsStable(t *testing.T) {
	products := fixtureProducts()
	// give two products the same effective price; their input order must hold
	products[2].OriginalPrice = dec(1200)
	products[2].OfferPrice = nil

	result := Sort(products, SortPriceAsc)
	assertSKUs(t, result, "B2", "D4", "E5", "A1", "C3")
}

func TestSortUnsetPreservesCatalogOrder(t *testing.T) {
	result := Sort(fixtureProducts(), SortUnset)
	assertSKUs(t, result, "A1", "B2", "C3", "D4", "E5")
}

func TestSortDoesNotMutateInput(t *testing.T) {
	products := fixtureProducts()
	Sort(products, SortPriceAsc)
	assertSKUs(t, products, "A1", "B2", "C3", "D4", "E5")
}
