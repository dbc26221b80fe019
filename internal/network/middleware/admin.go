package middleware

import (
	"net/http"

	"github.com/fitlife/loyalty/internal/helpers"
	"github.com/fitlife/loyalty/internal/logger"
)

// AdminOnly — middleware админского контура.
// Пускает дальше только токены с клеймом is_admin.
func AdminOnly(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !helpers.IsAdmin(r.Context()) {
			username, _ := helpers.GetUsername(r.Context())
			logger.Warn("Admin access denied", username)
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		h.ServeHTTP(w, r)
	})
}
