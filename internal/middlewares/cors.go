package middlewares

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS allows the configured frontend origins. An empty whitelist allows none.
func (m Middleware) CORS(next http.Handler) http.Handler {
	origins := m.config.CorsOrigins()
	if len(origins) == 0 {
		// rs/cors treats an empty list as "*"
		return next
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "Accept", "Cache-Control", "X-Requested-With"},
		ExposedHeaders:   []string{"Content-Range"},
		AllowCredentials: true,
	})
	return c.Handler(next)
}
