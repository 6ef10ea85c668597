package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"github.com/luxemoda/storefront-backend/internal/cart"
	"github.com/luxemoda/storefront-backend/internal/catalog"
	checkoutsvc "github.com/luxemoda/storefront-backend/internal/checkout"
	"github.com/luxemoda/storefront-backend/pkg/config"
	"github.com/luxemoda/storefront-backend/pkg/types"
)

const testProductsJSON = `[
  {
    "sku": "A1",
    "name": "Camiseta Basica",
    "brand": "LuxeModa",
    "category": "camisetas",
    "gender": "mujer",
    "short_description": "Camiseta de algodon",
    "long_description": "Camiseta de algodon peinado",
    "original_price": "100",
    "on_offer": false,
    "photos": ["https://cdn.example.com/a1.jpg"],
    "available": true,
    "stock_quantity": 10,
    "details": {"available_sizes": ["S", "M", "L"], "available_colors": [{"name": "Rojo", "hex": "#ff0000"}]},
    "tags": ["popular"],
    "slug": "camiseta-basica",
    "date_added": "2026-01-10T00:00:00Z"
  },
  {
    "sku": "B2",
    "name": "Vestido Largo",
    "brand": "Atelier",
    "category": "vestidos",
    "gender": "mujer",
    "short_description": "Vestido de noche",
    "long_description": "Vestido largo de noche",
    "original_price": "1000",
    "offer_price": "750",
    "on_offer": true,
    "discount_percent": 25,
    "photos": ["https://cdn.example.com/b2.jpg"],
    "available": true,
    "stock_quantity": 3,
    "details": {"available_sizes": ["M"], "available_colors": [{"name": "Negro", "hex": "#000000"}]},
    "tags": ["offer"],
    "slug": "vestido-largo",
    "date_added": "2026-02-01T00:00:00Z"
  }
]`

const testConfigJSON = `{
  "store_name": "LuxeModa",
  "currency_symbol": "$",
  "whatsapp_number": "+52 55 0000 0000"
}`

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	docs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/products.json":
			fmt.Fprint(w, testProductsJSON)
		case "/config.json":
			fmt.Fprint(w, testConfigJSON)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(docs.Close)

	cfg := &config.Config{
		App:    config.AppConfig{Env: "dev", Port: "8080"},
		Browse: config.BrowseConfig{PageSize: 12, MaxPageSize: 48},
		Cart: config.CartConfig{
			Backend:       config.CartBackendMemory,
			SessionCookie: "sf_session",
		},
	}

	loader := catalog.NewLoader(config.CatalogConfig{
		ProductsURL: docs.URL + "/products.json",
		ConfigURL:   docs.URL + "/config.json",
	})
	catalogSvc, err := catalog.NewService(loader, nil)
	if err != nil {
		t.Fatalf("catalog service: %v", err)
	}
	if err := catalogSvc.Load(context.Background()); err != nil {
		t.Fatalf("catalog load: %v", err)
	}

	cartStore, err := cart.NewStore(cart.NewMemoryPersistence(), catalogSvc, nil, nil, nil)
	if err != nil {
		t.Fatalf("cart store: %v", err)
	}

	return NewRouter(Deps{
		Config:   cfg,
		Catalog:  catalogSvc,
		Carts:    cartStore,
		Checkout: checkoutsvc.NewService(cartStore, nil, "+5215500000000", nil, nil),
	})
}

func newTestClient(t *testing.T, handler http.Handler) (*http.Client, string) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	return &http.Client{Jar: jar}, server.URL
}

func getJSON(t *testing.T, client *http.Client, url string, wantStatus int) map[string]any {
	t.Helper()
	resp, err := client.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	return decodeEnvelope(t, resp, wantStatus)
}

func sendJSON(t *testing.T, client *http.Client, method, url string, body any, wantStatus int) map[string]any {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req, err := http.NewRequest(method, url, bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	return decodeEnvelope(t, resp, wantStatus)
}

func decodeEnvelope(t *testing.T, resp *http.Response, wantStatus int) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		t.Fatalf("expected status %d, got %d", wantStatus, resp.StatusCode)
	}

	var envelope types.SuccessEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decoding envelope: %v", err)
	}
	data, ok := envelope.Data.(map[string]any)
	if !ok {
		t.Fatalf("expected object payload, got %T", envelope.Data)
	}
	return data
}

func TestHealthEndpoints(t *testing.T) {
	client, base := newTestClient(t, newTestHandler(t))

	live := getJSON(t, client, base+"/health/live", http.StatusOK)
	if live["status"] != "live" {
		t.Fatalf("unexpected live payload: %v", live)
	}

	ready := getJSON(t, client, base+"/health/ready", http.StatusOK)
	if ready["status"] != "ready" {
		t.Fatalf("unexpected ready payload: %v", ready)
	}
}

func TestStorefrontConfigEndpoint(t *testing.T) {
	client, base := newTestClient(t, newTestHandler(t))

	data := getJSON(t, client, base+"/api/v1/storefront/config", http.StatusOK)
	if data["store_name"] != "LuxeModa" {
		t.Fatalf("unexpected store config: %v", data)
	}
}

func TestProductsListAndFilter(t *testing.T) {
	client, base := newTestClient(t, newTestHandler(t))

	all := getJSON(t, client, base+"/api/v1/products", http.StatusOK)
	if items := all["items"].([]any); len(items) != 2 {
		t.Fatalf("expected 2 products, got %d", len(items))
	}

	filtered := getJSON(t, client, base+"/api/v1/products?category=vestidos", http.StatusOK)
	items := filtered["items"].([]any)
	if len(items) != 1 {
		t.Fatalf("expected 1 filtered product, got %d", len(items))
	}
	if sku := items[0].(map[string]any)["sku"]; sku != "B2" {
		t.Fatalf("expected B2, got %v", sku)
	}

	page := filtered["page"].(map[string]any)
	if page["page"].(float64) != 1 || page["total_items"].(float64) != 1 {
		t.Fatalf("unexpected page metadata: %v", page)
	}
}

func TestProductsListRejectsUnknownSort(t *testing.T) {
	client, base := newTestClient(t, newTestHandler(t))

	resp, err := client.Get(base + "/api/v1/products?sort=bogus")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown sort, got %d", resp.StatusCode)
	}
}

func TestProductFacetsEndpoint(t *testing.T) {
	client, base := newTestClient(t, newTestHandler(t))

	data := getJSON(t, client, base+"/api/v1/products/facets", http.StatusOK)
	categories := data["categories"].([]any)
	if len(categories) != 2 {
		t.Fatalf("expected 2 category facets, got %v", categories)
	}
}

func TestProductDetailBySlugAndSKU(t *testing.T) {
	client, base := newTestClient(t, newTestHandler(t))

	bySlug := getJSON(t, client, base+"/api/v1/products/vestido-largo", http.StatusOK)
	if bySlug["sku"] != "B2" {
		t.Fatalf("expected B2 by slug, got %v", bySlug["sku"])
	}

	bySKU := getJSON(t, client, base+"/api/v1/products/A1", http.StatusOK)
	if bySKU["slug"] != "camiseta-basica" {
		t.Fatalf("expected slug lookup fallback by sku, got %v", bySKU["slug"])
	}

	resp, err := client.Get(base + "/api/v1/products/nope")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown product, got %d", resp.StatusCode)
	}
}

func TestCartFlowAcrossRequests(t *testing.T) {
	client, base := newTestClient(t, newTestHandler(t))

	added := sendJSON(t, client, http.MethodPost, base+"/api/v1/cart/items", map[string]any{
		"sku":              "A1",
		"quantity":         2,
		"selected_options": map[string]string{"size": "M", "color": "Rojo"},
	}, http.StatusOK)
	if added["item_count"].(float64) != 2 {
		t.Fatalf("expected item count 2, got %v", added["item_count"])
	}

	// same identity merges on the session carried by the cookie
	merged := sendJSON(t, client, http.MethodPost, base+"/api/v1/cart/items", map[string]any{
		"sku":              "A1",
		"quantity":         1,
		"selected_options": map[string]string{"size": "M", "color": "Rojo"},
	}, http.StatusOK)
	lines := merged["lines"].([]any)
	if len(lines) != 1 {
		t.Fatalf("expected one merged line, got %d", len(lines))
	}
	if merged["total"] != "300" {
		t.Fatalf("expected total 300, got %v", merged["total"])
	}

	fetched := getJSON(t, client, base+"/api/v1/cart", http.StatusOK)
	if fetched["item_count"].(float64) != 3 {
		t.Fatalf("expected persisted count 3, got %v", fetched["item_count"])
	}

	updated := sendJSON(t, client, http.MethodPatch, base+"/api/v1/cart/items", map[string]any{
		"sku":              "A1",
		"quantity":         1,
		"selected_options": map[string]string{"size": "M", "color": "Rojo"},
	}, http.StatusOK)
	if updated["item_count"].(float64) != 1 {
		t.Fatalf("expected count 1 after update, got %v", updated["item_count"])
	}

	cleared := sendJSON(t, client, http.MethodDelete, base+"/api/v1/cart", nil, http.StatusOK)
	if cleared["item_count"].(float64) != 0 {
		t.Fatalf("expected empty cart after clear, got %v", cleared["item_count"])
	}
}

func TestCartRejectsOverStock(t *testing.T) {
	client, base := newTestClient(t, newTestHandler(t))

	resp := postRaw(t, client, base+"/api/v1/cart/items", `{"sku":"B2","quantity":5}`)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 for over-stock add, got %d", resp.StatusCode)
	}

	var envelope types.ErrorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decoding error envelope: %v", err)
	}
	if envelope.Error.Code != "INSUFFICIENT_STOCK" {
		t.Fatalf("unexpected error code %s", envelope.Error.Code)
	}
}

func TestCheckoutSubmitClearsCart(t *testing.T) {
	client, base := newTestClient(t, newTestHandler(t))

	sendJSON(t, client, http.MethodPost, base+"/api/v1/cart/items", map[string]any{
		"sku":      "B2",
		"quantity": 1,
	}, http.StatusOK)

	confirmation := sendJSON(t, client, http.MethodPost, base+"/api/v1/checkout", map[string]any{
		"name":  "Maria Lopez",
		"phone": "+52 55 1234 5678",
		"email": "maria@example.com",
	}, http.StatusCreated)

	order := confirmation["order"].(map[string]any)
	if order["total"] != "750" {
		t.Fatalf("expected offer-locked total 750, got %v", order["total"])
	}
	if confirmation["whatsapp_link"] == "" {
		t.Fatalf("expected whatsapp hand-off link")
	}

	emptied := getJSON(t, client, base+"/api/v1/cart", http.StatusOK)
	if emptied["item_count"].(float64) != 0 {
		t.Fatalf("expected cart cleared after checkout, got %v", emptied["item_count"])
	}
}

func TestCheckoutSubmitBlocksInvalidForm(t *testing.T) {
	client, base := newTestClient(t, newTestHandler(t))

	sendJSON(t, client, http.MethodPost, base+"/api/v1/cart/items", map[string]any{
		"sku":      "A1",
		"quantity": 1,
	}, http.StatusOK)

	resp := postRaw(t, client, base+"/api/v1/checkout", `{"name":"Maria Lopez","phone":""}`)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing phone, got %d", resp.StatusCode)
	}

	kept := getJSON(t, client, base+"/api/v1/cart", http.StatusOK)
	if kept["item_count"].(float64) != 1 {
		t.Fatalf("blocked checkout must keep cart, got %v", kept["item_count"])
	}
}

func TestCheckoutValidateField(t *testing.T) {
	client, base := newTestClient(t, newTestHandler(t))

	result := sendJSON(t, client, http.MethodPost, base+"/api/v1/checkout/validate", map[string]any{
		"field": "phone",
		"value": "abc",
	}, http.StatusOK)
	if result["valid"].(bool) {
		t.Fatalf("expected invalid phone, got %v", result)
	}
	if result["message"] == "" {
		t.Fatalf("expected inline message")
	}
}

func postRaw(t *testing.T, client *http.Client, url, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader([]byte(body)))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}
