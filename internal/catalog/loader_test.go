package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/luxemoda/storefront-backend/pkg/config"
	pkgerrors "github.com/luxemoda/storefront-backend/pkg/errors"
)

const validConfigJSON = `{
	"store_name": "Luxe Moda",
	"currency_symbol": "$",
	"whatsapp_number": "+5215512345678",
	"nav_menu": [{"text": "Mujer", "url": "/productos?category=mujer"}]
}`

const validProductsJSON = `[
	{
		"sku": "A1",
		"name": "Vestido Midi",
		"brand": "Luxe",
		"category": "vestidos",
		"original_price": "1200",
		"photos": ["https://cdn.example.com/a1.jpg"],
		"available": true,
		"stock_quantity": 5,
		"details": {"available_sizes": ["S", "M"], "available_colors": [{"name": "Rojo", "hex": "#ff0000"}]},
		"tags": ["popular"],
		"slug": "vestido-midi",
		"date_added": "2025-05-01T00:00:00Z"
	}
]`

func newHTTPServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func newCatalogServer(t *testing.T, productsBody, configBody string, status int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/data/products.json", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(productsBody))
	})
	mux.HandleFunc("/data/config.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(configBody))
	})
	return newHTTPServer(t, mux)
}

func newTestLoader(server *httptest.Server) *Loader {
	return NewLoader(config.CatalogConfig{
		ProductsURL:  server.URL + "/data/products.json",
		ConfigURL:    server.URL + "/data/config.json",
		FetchTimeout: 2 * time.Second,
	})
}

func TestLoadSuccess(t *testing.T) {
	server := newCatalogServer(t, validProductsJSON, validConfigJSON, http.StatusOK)

	snap, err := newTestLoader(server).Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned unexpected error: %v", err)
	}

	if len(snap.Products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(snap.Products))
	}
	if snap.Products[0].SKU != "A1" {
		t.Fatalf("unexpected sku %q", snap.Products[0].SKU)
	}
	if snap.Config.StoreName != "Luxe Moda" {
		t.Fatalf("unexpected store name %q", snap.Config.StoreName)
	}
	if snap.LoadedAt.IsZero() {
		t.Fatal("expected LoadedAt to be set")
	}
}

func TestLoadHTTPFailureIsLoadFailure(t *testing.T) {
	server := newCatalogServer(t, "", validConfigJSON, http.StatusInternalServerError)

	_, err := newTestLoader(server).Load(context.Background())
	if !pkgerrors.HasCode(err, pkgerrors.CodeLoadFailure) {
		t.Fatalf("expected load failure, got %v", err)
	}
}

func TestLoadRejectsInvalidProductsAndReportsAll(t *testing.T) {
	invalid := `[
		{"sku": "", "name": "Sin SKU", "photos": ["x"], "original_price": "10"},
		{"sku": "B2", "name": "", "photos": ["x"], "original_price": "10"},
		{"sku": "C3", "name": "Caro", "photos": ["x"], "original_price": "10", "offer_price": "20", "on_offer": true}
	]`
	server := newCatalogServer(t, invalid, validConfigJSON, http.StatusOK)

	_, err := newTestLoader(server).Load(context.Background())
	if !pkgerrors.HasCode(err, pkgerrors.CodeLoadFailure) {
		t.Fatalf("expected load failure, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"sku is required", "name is required", "offer price exceeds original price"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected combined error to mention %q, got %s", fragment, msg)
		}
	}
}

func TestLoadRejectsDuplicateSKUs(t *testing.T) {
	dup := `[
		{"sku": "A1", "name": "Uno", "photos": ["x"], "original_price": "10"},
		{"sku": "A1", "name": "Dos", "photos": ["x"], "original_price": "10"}
	]`
	server := newCatalogServer(t, dup, validConfigJSON, http.StatusOK)

	_, err := newTestLoader(server).Load(context.Background())
	if err == nil || !strings.Contains(err.Error(), "duplicate sku") {
		t.Fatalf("expected duplicate sku error, got %v", err)
	}
}

func TestEffectivePrice(t *testing.T) {
	p := Product{OriginalPrice: dec(100)}
	if !p.EffectivePrice().Equal(dec(100)) {
		t.Fatalf("expected original price, got %s", p.EffectivePrice())
	}

	offer := dec(80)
	p.OfferPrice = &offer
	if !p.EffectivePrice().Equal(dec(100)) {
		t.Fatal("offer price must not apply unless the product is on offer")
	}

	p.OnOffer = true
	if !p.EffectivePrice().Equal(dec(80)) {
		t.Fatalf("expected offer price, got %s", p.EffectivePrice())
	}
}
