package controllers

import (
	"context"
	"net/http"

	"github.com/luxemoda/storefront-backend/api/responses"
	"github.com/luxemoda/storefront-backend/pkg/config"
	"github.com/luxemoda/storefront-backend/pkg/logger"
)

const envHeader = "X-Storefront-Env"

// Pinger is any dependency that can report reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ReadyChecker reports whether the catalog is loaded and servable.
type ReadyChecker interface {
	Ready(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports per-dependency readiness. Nil dependencies are skipped
// so the check matches whichever backends are actually configured.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP Pinger, redisP Pinger, catalog ReadyChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		checks := map[string]string{}
		healthy := true

		record := func(name string, err error) {
			if err != nil {
				checks[name] = err.Error()
				healthy = false
				if logg != nil {
					ctx := logg.WithField(r.Context(), "check", name)
					logg.Warn(ctx, "readiness check failed")
				}
				return
			}
			checks[name] = "ok"
		}

		if dbP != nil {
			record("db", dbP.Ping(r.Context()))
		}
		if redisP != nil {
			record("redis", redisP.Ping(r.Context()))
		}
		if catalog != nil {
			record("catalog", catalog.Ready(r.Context()))
		}

		status := http.StatusOK
		state := "ready"
		if !healthy {
			status = http.StatusServiceUnavailable
			state = "degraded"
		}

		responses.WriteSuccessStatus(w, status, map[string]any{
			"status": state,
			"checks": checks,
		})
	}
}
