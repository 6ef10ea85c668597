package catalog

import (
	"context"
	"strings"
	"sync"

	pkgerrors "github.com/luxemoda/storefront-backend/pkg/errors"
	"github.com/luxemoda/storefront-backend/pkg/logger"
)

// Service owns the loaded catalog snapshot and shares it read-only with all
// consumers. A failed load leaves the service in an error state until the
// next successful Refresh.
type Service struct {
	loader *Loader
	logg   *logger.Logger

	mu      sync.RWMutex
	snap    *Snapshot
	loadErr error
}

// NewService wires the catalog service to its loader.
func NewService(loader *Loader, logg *logger.Logger) (*Service, error) {
	if loader == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "catalog loader required")
	}
	return &Service{loader: loader, logg: logg}, nil
}

// Load performs the initial fetch. The error state is retained so consumers
// see a load failure instead of an empty catalog.
func (s *Service) Load(ctx context.Context) error {
	return s.Refresh(ctx)
}

// Refresh re-fetches both documents. On failure the previous snapshot, if
// any, stays in place.
func (s *Service) Refresh(ctx context.Context) error {
	snap, err := s.loader.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.loadErr = err
		if s.logg != nil {
			s.logg.Error(ctx, "catalog load failed", err)
		}
		return err
	}
	s.snap = snap
	s.loadErr = nil
	if s.logg != nil {
		ctx = s.logg.WithField(ctx, "product_count", len(snap.Products))
		s.logg.Info(ctx, "catalog loaded")
	}
	return nil
}

// Products returns the full product list from the current snapshot.
func (s *Service) Products() ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snap == nil {
		return nil, s.notLoadedErr()
	}
	return s.snap.Products, nil
}

// Config returns the store configuration document.
func (s *Service) Config() (*StoreConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snap == nil {
		return nil, s.notLoadedErr()
	}
	return s.snap.Config, nil
}

// ProductBySlug resolves a product by its slug, falling back to SKU match.
func (s *Service) ProductBySlug(slug string) (*Product, error) {
	products, err := s.Products()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].Slug == slug || strings.EqualFold(products[i].SKU, slug) {
			return &products[i], nil
		}
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found").WithDetails(map[string]any{"slug": slug})
}

// ProductBySKU resolves a product by exact SKU.
func (s *Service) ProductBySKU(sku string) (*Product, error) {
	products, err := s.Products()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].SKU == sku {
			return &products[i], nil
		}
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found").WithDetails(map[string]any{"sku": sku})
}

// Ready reports whether a snapshot is available, for readiness checks.
func (s *Service) Ready(_ context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snap == nil {
		return s.notLoadedErr()
	}
	return nil
}

func (s *Service) notLoadedErr() error {
	if s.loadErr != nil {
		return s.loadErr
	}
	return pkgerrors.New(pkgerrors.CodeLoadFailure, "catalog not loaded")
}
