package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/luxemoda/storefront-backend/pkg/config"
	pkgerrors "github.com/luxemoda/storefront-backend/pkg/errors"
	"go.uber.org/multierr"
)

// Snapshot bundles one consistent load of the catalog documents.
type Snapshot struct {
	Products []Product
	Config   *StoreConfig
	LoadedAt time.Time
}

// Loader fetches the static product list and store configuration documents.
type Loader struct {
	client      *http.Client
	productsURL string
	configURL   string
}

// NewLoader builds a loader for the configured document URLs.
func NewLoader(cfg config.CatalogConfig) *Loader {
	return &Loader{
		client:      &http.Client{Timeout: cfg.FetchTimeout},
		productsURL: cfg.ProductsURL,
		configURL:   cfg.ConfigURL,
	}
}

// Load fetches and validates both documents. There is no retry: a failed
// fetch surfaces as a load failure and a reload is the only recovery.
func (l *Loader) Load(ctx context.Context) (*Snapshot, error) {
	var storeConfig StoreConfig
	if err := l.fetchJSON(ctx, l.configURL, &storeConfig); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeLoadFailure, err, "loading store configuration")
	}

	var products []Product
	if err := l.fetchJSON(ctx, l.productsURL, &products); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeLoadFailure, err, "loading product list")
	}

	if err := validateProducts(products); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeLoadFailure, err, "invalid product data")
	}

	return &Snapshot{
		Products: products,
		Config:   &storeConfig,
		LoadedAt: time.Now().UTC(),
	}, nil
}

func (l *Loader) fetchJSON(ctx context.Context, url string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", url, err)
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetching %s: unexpected status %d", url, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decoding %s: %w", url, err)
	}
	return nil
}

// validateProducts checks every product and reports all failures at once, so
// a bad feed names each offending entry instead of only the first.
func validateProducts(products []Product) error {
	var errs []error
	seen := make(map[string]struct{}, len(products))
	for i, p := range products {
		if err := validateProduct(i, p); err != nil {
			errs = append(errs, err)
			continue
		}
		if _, dup := seen[p.SKU]; dup {
			errs = append(errs, fmt.Errorf("product %d (%s): duplicate sku", i, p.SKU))
			continue
		}
		seen[p.SKU] = struct{}{}
	}
	return multierr.Combine(errs...)
}

func validateProduct(index int, p Product) error {
	switch {
	case p.SKU == "":
		return fmt.Errorf("product %d: sku is required", index)
	case p.Name == "":
		return fmt.Errorf("product %d (%s): name is required", index, p.SKU)
	case len(p.Photos) == 0:
		return fmt.Errorf("product %d (%s): at least one photo is required", index, p.SKU)
	case p.OriginalPrice.IsNegative():
		return fmt.Errorf("product %d (%s): original price must be non-negative", index, p.SKU)
	case p.OfferPrice != nil && p.OfferPrice.IsNegative():
		return fmt.Errorf("product %d (%s): offer price must be non-negative", index, p.SKU)
	case p.OfferPrice != nil && p.OfferPrice.GreaterThan(p.OriginalPrice):
		return fmt.Errorf("product %d (%s): offer price exceeds original price", index, p.SKU)
	case p.StockQuantity < 0:
		return fmt.Errorf("product %d (%s): stock quantity must be non-negative", index, p.SKU)
	}
	return nil
}
