package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"quotemint/go_backend/internal/domain/apperr"
)

type errorBody struct {
	Kind    apperr.Kind `json:"kind"`
	Message string      `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Log.WithError(err).Error("write response")
	}
}

// writeError maps the taxonomy onto HTTP. Internal failures are logged with
// full detail and reported with the generic message only.
func (h *Handlers) writeError(w http.ResponseWriter, err error) {
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		ae = apperr.Internal("internal error", err)
	}
	if ae.Kind == apperr.KindInternal || ae.Kind == apperr.KindDataLoss {
		h.Log.WithError(err).Error("handler failed")
	}
	h.writeJSON(w, apperr.HTTPStatus(ae.Kind), errorResponse{
		Error: errorBody{Kind: ae.Kind, Message: ae.Message},
	})
}
