package handlers

import (
	"encoding/json"
	"net/http"

	"quotemint/go_backend/internal/domain/apperr"
	"quotemint/go_backend/internal/domain/org"
)

type JoinRequestRequest struct {
	OrgName    string `json:"orgName" validate:"required"`
	UserEmail  string `json:"userEmail" validate:"required"`
	AdminEmail string `json:"adminEmail" validate:"required"`
}

type JoinRequestResponse struct {
	Success bool `json:"success"`
}

func (h *Handlers) SendJoinRequest(w http.ResponseWriter, r *http.Request) {
	var req JoinRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, apperr.InvalidArgument("orgName, userEmail and adminEmail are required"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.writeError(w, apperr.InvalidArgument("orgName, userEmail and adminEmail are required"))
		return
	}

	err := h.Org.SendJoinRequest(r.Context(), org.JoinRequest{
		OrgName:    req.OrgName,
		UserEmail:  req.UserEmail,
		AdminEmail: req.AdminEmail,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, JoinRequestResponse{Success: true})
}
