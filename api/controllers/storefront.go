package controllers

import (
	"net/http"

	"github.com/luxemoda/storefront-backend/api/responses"
	"github.com/luxemoda/storefront-backend/internal/catalog"
	"github.com/luxemoda/storefront-backend/pkg/logger"
)

// StorefrontConfig serves the load-once store configuration: branding,
// banners, navigation, contact info.
func StorefrontConfig(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, err := svc.Config()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, cfg)
	}
}
