package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"fenix_office/internal/models"
)

type clientRequest struct {
	Name            string          `json:"name"`
	TaxID           string          `json:"tax_id"`
	InterestPercent decimal.Decimal `json:"interest_percent"`
	FinePercent     decimal.Decimal `json:"fine_percent"`
	Notes           string          `json:"notes"`
}

func (req clientRequest) toModel(id string) models.Client {
	return models.Client{
		ID:              id,
		Name:            req.Name,
		TaxID:           req.TaxID,
		InterestPercent: req.InterestPercent,
		FinePercent:     req.FinePercent,
		Notes:           req.Notes,
	}
}

func (h *Handlers) ListClients(w http.ResponseWriter, r *http.Request) {
	h.JSON(w, http.StatusOK, h.State.Snapshot().Clients)
}

func (h *Handlers) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if !h.decode(w, r, &req) {
		return
	}

	created, err := h.Ledger.CreateClient(r.Context(), req.toModel(""), userID(r))
	if err != nil {
		h.Fail(w, err)
		return
	}
	h.JSON(w, http.StatusCreated, created)
}

func (h *Handlers) UpdateClient(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if !h.decode(w, r, &req) {
		return
	}

	updated, err := h.Ledger.UpdateClient(r.Context(), req.toModel(mux.Vars(r)["id"]), userID(r))
	if err != nil {
		h.Fail(w, err)
		return
	}
	h.JSON(w, http.StatusOK, updated)
}

func (h *Handlers) DeleteClient(w http.ResponseWriter, r *http.Request) {
	if err := h.Ledger.DeleteClient(r.Context(), mux.Vars(r)["id"], userID(r)); err != nil {
		h.Fail(w, err)
		return
	}
	h.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
