package middlewares

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/mlefevre/quizzlab/internal/config"
)

// CORS allows the SPA origin configured in CLIENT_URL.
func CORS(next http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{config.Getenv("CLIENT_URL", "http://localhost:5173")},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "Origin", "X-Requested-With", "Accept"},
		AllowCredentials: true,
		MaxAge:           300,
	})
	return c.Handler(next)
}
