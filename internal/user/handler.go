package user

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mlefevre/quizzlab/internal/apperror"
	"github.com/mlefevre/quizzlab/internal/auth"
	"github.com/mlefevre/quizzlab/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("invalid register body")
		config.Error(w, r.Context(), &apperror.ValidationError{Message: "invalid request body"})
		return
	}

	profile, err := h.service.Register(r.Context(), dto)
	if err != nil {
		config.Error(w, r.Context(), err)
		return
	}

	config.JSON(w, http.StatusCreated, profile)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("invalid login body")
		config.Error(w, r.Context(), &apperror.ValidationError{Message: "invalid request body"})
		return
	}

	resp, err := h.service.Login(r.Context(), dto)
	if err != nil {
		config.Error(w, r.Context(), err)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		config.Error(w, r.Context(), err)
		return
	}

	profile, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		config.Error(w, r.Context(), err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{"user": profile})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, r.Context(), err)
		return
	}

	id, err := parseID(r)
	if err != nil {
		config.Error(w, r.Context(), err)
		return
	}

	var dto UpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("invalid update body")
		config.Error(w, r.Context(), &apperror.ValidationError{Message: "invalid request body"})
		return
	}

	profile, err := h.service.Update(r.Context(), id, claims.UserID, dto)
	if err != nil {
		config.Error(w, r.Context(), err)
		return
	}

	config.JSON(w, http.StatusOK, profile)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, r.Context(), err)
		return
	}

	id, err := parseID(r)
	if err != nil {
		config.Error(w, r.Context(), err)
		return
	}

	if err := h.service.Delete(r.Context(), id, claims.UserID); err != nil {
		config.Error(w, r.Context(), err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func parseID(r *http.Request) (uint, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, &apperror.ValidationError{Message: "invalid user id"}
	}
	return uint(id), nil
}
