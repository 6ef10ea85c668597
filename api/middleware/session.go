package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/luxemoda/storefront-backend/pkg/config"
	"github.com/luxemoda/storefront-backend/pkg/logger"
)

type contextKey string

const ctxSessionID contextKey = "session_id"

// SessionIDFromContext returns the shopper's session identifier, empty when
// the session middleware did not run.
func SessionIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxSessionID).(string); ok {
		return v
	}
	return ""
}

// WithSessionID injects a session identifier, used by handler tests.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxSessionID, sessionID)
}

// Session ties the anonymous shopper to a cart. It reads the session cookie,
// minting a fresh uuid cookie when absent or unusable, and attaches the
// session ID to the request context and log fields.
func Session(cfg config.CartConfig, appCfg config.AppConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := ""
			if cookie, err := r.Cookie(cfg.SessionCookie); err == nil {
				if _, parseErr := uuid.Parse(cookie.Value); parseErr == nil {
					sessionID = cookie.Value
				}
			}

			if sessionID == "" {
				sessionID = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     cfg.SessionCookie,
					Value:    sessionID,
					Path:     "/",
					MaxAge:   int(cfg.SessionTTL.Seconds()),
					HttpOnly: true,
					Secure:   appCfg.IsProd(),
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), ctxSessionID, sessionID)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, sessionID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
