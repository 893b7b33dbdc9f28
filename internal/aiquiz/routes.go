package aiquiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mlefevre/quizzlab/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(auth.Middleware)

	r.Post("/", h.Generate)
	return r
}
