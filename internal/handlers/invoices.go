package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"fenix_office/internal/models"
)

type invoiceRequest struct {
	Number    string          `json:"number"`
	Category  string          `json:"category,omitempty"`
	ClientID  *string         `json:"client_id,omitempty"`
	PayerName *string         `json:"payer_name,omitempty"`
	Value     decimal.Decimal `json:"value"`
	DueDate   string          `json:"due_date"`
	Status    string          `json:"status,omitempty"`
}

func (h *Handlers) invoiceFromRequest(w http.ResponseWriter, req invoiceRequest, id string) (models.Invoice, bool) {
	due, err := parseDate(req.DueDate)
	if err != nil {
		h.JSON(w, http.StatusBadRequest, map[string]string{"error": "due_date must be YYYY-MM-DD"})
		return models.Invoice{}, false
	}
	return models.Invoice{
		ID:        id,
		Number:    req.Number,
		Category:  models.Category(req.Category),
		ClientID:  req.ClientID,
		PayerName: req.PayerName,
		Value:     req.Value,
		DueDate:   due,
		Status:    models.Status(req.Status),
	}, true
}

func (h *Handlers) ListInvoices(w http.ResponseWriter, r *http.Request) {
	h.JSON(w, http.StatusOK, h.State.Snapshot().Invoices)
}

func (h *Handlers) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var req invoiceRequest
	if !h.decode(w, r, &req) {
		return
	}
	inv, ok := h.invoiceFromRequest(w, req, "")
	if !ok {
		return
	}

	created, err := h.Ledger.CreateInvoice(r.Context(), inv, userID(r))
	if err != nil {
		h.Fail(w, err)
		return
	}
	h.JSON(w, http.StatusCreated, created)
}

func (h *Handlers) UpdateInvoice(w http.ResponseWriter, r *http.Request) {
	var req invoiceRequest
	if !h.decode(w, r, &req) {
		return
	}
	inv, ok := h.invoiceFromRequest(w, req, mux.Vars(r)["id"])
	if !ok {
		return
	}

	updated, err := h.Ledger.UpdateInvoice(r.Context(), inv, userID(r))
	if err != nil {
		h.Fail(w, err)
		return
	}
	h.JSON(w, http.StatusOK, updated)
}

// PayInvoice is the terminal transition: no body, the server stamps the
// payment date and freezes the derived values.
func (h *Handlers) PayInvoice(w http.ResponseWriter, r *http.Request) {
	paid, err := h.Ledger.PayInvoice(r.Context(), mux.Vars(r)["id"], userID(r))
	if err != nil {
		h.Fail(w, err)
		return
	}
	h.JSON(w, http.StatusOK, paid)
}

func (h *Handlers) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	if err := h.Ledger.DeleteInvoice(r.Context(), mux.Vars(r)["id"], userID(r)); err != nil {
		h.Fail(w, err)
		return
	}
	h.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
