package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/luxemoda/storefront-backend/pkg/config"
)

// CORS returns middleware that applies the configured allowed origin policy.
// The storefront runs as a browser client on a separate origin, so cookies
// must survive cross-origin requests.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Requested-With"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler
}
