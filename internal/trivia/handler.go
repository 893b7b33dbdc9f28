package trivia

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

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var payload TriviaPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.WithError(err).Warn("invalid quiz body")
		config.Error(w, r.Context(), &apperror.ValidationError{Message: "invalid request body"})
		return
	}

	// Claims are normally guaranteed by the route middleware; the payload owner
	// is a fallback for unauthenticated deployments.
	var ownerID uint
	if claims, err := auth.GetUserClaimsFromContext(r.Context()); err == nil {
		ownerID = claims.UserID
	}

	created, err := h.service.Create(r.Context(), &payload, ownerID)
	if err != nil {
		config.Error(w, r.Context(), err)
		return
	}

	config.JSON(w, http.StatusCreated, created)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		config.Error(w, r.Context(), err)
		return
	}

	t, err := h.service.Get(r.Context(), id)
	if err != nil {
		config.Error(w, r.Context(), err)
		return
	}

	config.JSON(w, http.StatusOK, t)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var userID uint
	if claims, err := auth.GetUserClaimsFromContext(r.Context()); err == nil {
		userID = claims.UserID
	}

	scope := r.URL.Query().Get("scope")
	summaries, err := h.service.List(r.Context(), scope, userID)
	if err != nil {
		config.Error(w, r.Context(), err)
		return
	}

	config.JSON(w, http.StatusOK, summaries)
}

func (h *Handler) Replace(w http.ResponseWriter, r *http.Request) {
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

	var payload TriviaPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.WithError(err).Warn("invalid quiz body")
		config.Error(w, r.Context(), &apperror.ValidationError{Message: "invalid request body"})
		return
	}

	updated, err := h.service.Replace(r.Context(), id, &payload, claims.UserID)
	if err != nil {
		config.Error(w, r.Context(), err)
		return
	}

	config.JSON(w, http.StatusOK, updated)
}

func (h *Handler) SetVisibility(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		config.Error(w, r.Context(), err)
		return
	}

	var body struct {
		IsPublic bool `json:"is_public"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		config.Error(w, r.Context(), &apperror.ValidationError{Message: "invalid request body"})
		return
	}

	resp, err := h.service.SetVisibility(r.Context(), id, body.IsPublic)
	if err != nil {
		config.Error(w, r.Context(), err)
		return
	}

	config.JSON(w, http.StatusOK, resp)
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
		return 0, &apperror.ValidationError{Message: "invalid trivia id"}
	}
	return uint(id), nil
}
