package controllers

import (
	"net/http"

	"github.com/luxemoda/storefront-backend/api/responses"
	"github.com/luxemoda/storefront-backend/internal/catalog"
	"github.com/luxemoda/storefront-backend/pkg/logger"
)

// CatalogRefresh re-fetches the catalog documents. A failed refresh keeps the
// previous snapshot serving.
func CatalogRefresh(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Refresh(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		products, err := svc.Products()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{
			"status":   "refreshed",
			"products": len(products),
		})
	}
}
