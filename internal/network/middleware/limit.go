package middleware

import (
	"net/http"

	"golang.org/x/time/rate"
)

// RateLimit — ограничитель частоты запросов для пишущих ручек пользователя.
// Лимит общий на процесс: защита от шквала заявок, а не квота на клиента.
func RateLimit(limit rate.Limit, burst int) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(limit, burst)
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
				return
			}
			h.ServeHTTP(w, r)
		})
	}
}
