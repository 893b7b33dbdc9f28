package config

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mlefevre/quizzlab/internal/apperror"
)

func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.WithError(err).Error("failed to encode response body")
	}
}

// Error writes the JSON error body for err. Internal detail never reaches the
// client: unclassified errors become a generic 500 message.
func Error(w http.ResponseWriter, ctx context.Context, err error) {
	status := apperror.Status(err)

	body := map[string]interface{}{"error": err.Error()}
	if status == http.StatusInternalServerError {
		WithContext(ctx).WithError(err).Error("internal server error")
		body["error"] = "internal server error"
	}

	var aiErr *apperror.InvalidAIOutputError
	if errors.As(err, &aiErr) {
		body["raw"] = aiErr.Raw
	}

	JSON(w, status, body)
}
