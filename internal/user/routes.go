package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mlefevre/quizzlab/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Get("/{id}", h.GetByID)

	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})

	return r
}
