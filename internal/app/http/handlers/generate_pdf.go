package handlers

import (
	"encoding/json"
	"net/http"

	"quotemint/go_backend/internal/domain/apperr"
)

type GeneratePDFRequest struct {
	DocID string `json:"docId" validate:"required"`
	OrgID string `json:"orgId" validate:"required"`
}

type GeneratePDFResponse struct {
	Success bool   `json:"success"`
	PDFURL  string `json:"pdfUrl"`
	QuoteID string `json:"quoteId"`
}

func (h *Handlers) GenerateQuotePDF(w http.ResponseWriter, r *http.Request) {
	var req GeneratePDFRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, apperr.InvalidArgument("docId and orgId are required"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.writeError(w, apperr.InvalidArgument("docId and orgId are required"))
		return
	}

	res, err := h.Quotes.GeneratePDF(r.Context(), req.DocID, req.OrgID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, GeneratePDFResponse{
		Success: true,
		PDFURL:  res.PDFURL,
		QuoteID: res.QuoteID,
	})
}
