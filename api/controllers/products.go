package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/luxemoda/storefront-backend/api/responses"
	"github.com/luxemoda/storefront-backend/api/validators"
	"github.com/luxemoda/storefront-backend/internal/browse"
	"github.com/luxemoda/storefront-backend/internal/catalog"
	"github.com/luxemoda/storefront-backend/pkg/config"
	pkgerrors "github.com/luxemoda/storefront-backend/pkg/errors"
	"github.com/luxemoda/storefront-backend/pkg/logger"
)

// ProductsList serves one filtered, sorted page of the catalog. The query
// string carries the whole browse state so filtered views are shareable.
func ProductsList(svc *catalog.Service, cfg config.BrowseConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := svc.Products()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		query, err := validators.ParseBrowseQuery(r, cfg.PageSize)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, browse.Run(products, query))
	}
}

// ProductFacets serves the filter options derived from the full catalog.
// Facets never shrink as filters are applied.
func ProductFacets(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := svc.Products()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, browse.DeriveFacets(products))
	}
}

// ProductDetail resolves a single product by slug, falling back to SKU.
func ProductDetail(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := strings.TrimSpace(chi.URLParam(r, "slug"))
		if slug == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "product slug is required"))
			return
		}

		product, err := svc.ProductBySlug(slug)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}
