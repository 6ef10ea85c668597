package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/luxemoda/storefront-backend/api/controllers"
	"github.com/luxemoda/storefront-backend/api/middleware"
	"github.com/luxemoda/storefront-backend/internal/cart"
	"github.com/luxemoda/storefront-backend/internal/catalog"
	checkoutsvc "github.com/luxemoda/storefront-backend/internal/checkout"
	"github.com/luxemoda/storefront-backend/pkg/config"
	"github.com/luxemoda/storefront-backend/pkg/logger"
	"github.com/luxemoda/storefront-backend/pkg/metrics"
)

// Deps carries everything the router mounts.
type Deps struct {
	Config          *config.Config
	Logger          *logger.Logger
	DBPinger        controllers.Pinger
	RedisPinger     controllers.Pinger
	Catalog         *catalog.Service
	Carts           *cart.Store
	Checkout        *checkoutsvc.Service
	HTTPMetrics     *metrics.HTTPMetrics
	MetricsRegistry *prometheus.Registry
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.CORS(cfg.CORS),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.DBPinger, deps.RedisPinger, deps.Catalog))
	})

	if deps.MetricsRegistry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.MetricsRegistry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/storefront/config", controllers.StorefrontConfig(deps.Catalog, logg))

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductsList(deps.Catalog, cfg.Browse, logg))
			r.Get("/facets", controllers.ProductFacets(deps.Catalog, logg))
			r.Get("/{slug}", controllers.ProductDetail(deps.Catalog, logg))
		})

		r.Post("/catalog/refresh", controllers.CatalogRefresh(deps.Catalog, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Session(cfg.Cart, cfg.App, logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.CartFetch(deps.Carts, logg))
				r.Delete("/", controllers.CartClear(deps.Carts, logg))
				r.Route("/items", func(r chi.Router) {
					r.Post("/", controllers.CartAddItem(deps.Carts, deps.Catalog, logg))
					r.Patch("/", controllers.CartUpdateItem(deps.Carts, logg))
					r.Delete("/", controllers.CartRemoveItem(deps.Carts, logg))
				})
			})

			r.Route("/checkout", func(r chi.Router) {
				r.Post("/", controllers.CheckoutSubmit(deps.Checkout, logg))
				r.Post("/validate", controllers.CheckoutValidate(deps.Checkout, logg))
			})
		})
	})

	return r
}
