package aiquiz

import (
	"encoding/json"
	"net/http"

	"github.com/mlefevre/quizzlab/internal/apperror"
	"github.com/mlefevre/quizzlab/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("invalid generate body")
		config.Error(w, r.Context(), &apperror.ValidationError{Message: "invalid request body"})
		return
	}

	draft, err := h.service.GenerateQuestion(r.Context(), req)
	if err != nil {
		config.Error(w, r.Context(), err)
		return
	}

	config.JSON(w, http.StatusOK, draft)
}
