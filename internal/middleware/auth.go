package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
)

// APIKey guards the admin surface. The device surface stays open; only
// management routes sit behind the key.
func APIKey(key string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			got := r.Header.Get("X-API-Key")
			if subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				logger.Warn("API key rejected", slog.String("path", r.URL.Path))
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
