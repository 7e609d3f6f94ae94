package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"fenix_office/internal/models"
)

type payableRequest struct {
	Description string          `json:"description"`
	Value       decimal.Decimal `json:"value"`
	DueDate     string          `json:"due_date"`
	Status      string          `json:"status,omitempty"`
}

func (h *Handlers) payableFromRequest(w http.ResponseWriter, req payableRequest, id string) (models.Payable, bool) {
	due, err := parseDate(req.DueDate)
	if err != nil {
		h.JSON(w, http.StatusBadRequest, map[string]string{"error": "due_date must be YYYY-MM-DD"})
		return models.Payable{}, false
	}
	return models.Payable{
		ID:          id,
		Description: req.Description,
		Value:       req.Value,
		DueDate:     due,
		Status:      models.Status(req.Status),
	}, true
}

func (h *Handlers) ListPayables(w http.ResponseWriter, r *http.Request) {
	snap := h.State.Snapshot()
	h.JSON(w, http.StatusOK, map[string]any{
		"payables": snap.Payables,
		"degraded": snap.PayablesDegraded,
	})
}

func (h *Handlers) CreatePayable(w http.ResponseWriter, r *http.Request) {
	var req payableRequest
	if !h.decode(w, r, &req) {
		return
	}
	p, ok := h.payableFromRequest(w, req, "")
	if !ok {
		return
	}

	created, err := h.Ledger.CreatePayable(r.Context(), p, userID(r))
	if err != nil {
		h.Fail(w, err)
		return
	}
	h.JSON(w, http.StatusCreated, created)
}

func (h *Handlers) UpdatePayable(w http.ResponseWriter, r *http.Request) {
	var req payableRequest
	if !h.decode(w, r, &req) {
		return
	}
	p, ok := h.payableFromRequest(w, req, mux.Vars(r)["id"])
	if !ok {
		return
	}

	updated, err := h.Ledger.UpdatePayable(r.Context(), p, userID(r))
	if err != nil {
		h.Fail(w, err)
		return
	}
	h.JSON(w, http.StatusOK, updated)
}

func (h *Handlers) DeletePayable(w http.ResponseWriter, r *http.Request) {
	if err := h.Ledger.DeletePayable(r.Context(), mux.Vars(r)["id"], userID(r)); err != nil {
		h.Fail(w, err)
		return
	}
	h.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
