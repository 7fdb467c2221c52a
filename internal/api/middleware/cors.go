package middleware

import (
	"net/http"

	"github.com/tractis/proposal-engine/internal/pkg/response"
)

// CORS allows cross-origin requests from the proposal web frontend.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Authorization, X-Request-ID")

		if r.Method == http.MethodOptions {
			response.NoContent(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}
