package trivia

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mlefevre/quizzlab/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(auth.Middleware)

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Replace)
	r.Patch("/{id}/public", h.SetVisibility)
	r.Delete("/{id}", h.Delete)

	return r
}
