package transport

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// authMiddleware rejects requests without the expected bearer token.
func authMiddleware(token string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer "+token {
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// loggingMiddleware logs method, path and latency for every request.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s duration_ms=%d", r.Method, r.URL.Path, time.Since(start).Milliseconds())
	})
}
