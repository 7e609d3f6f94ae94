package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"fenix_office/internal/models"
)

// dailyRequest carries the eleven category fields; the total is computed
// server-side and ignored if sent.
type dailyRequest struct {
	Date           string          `json:"date"`
	Fees           decimal.Decimal `json:"fees"`
	CompanyOpening decimal.Decimal `json:"company_opening"`
	CompanyClosing decimal.Decimal `json:"company_closing"`
	Payroll        decimal.Decimal `json:"payroll"`
	TaxForms       decimal.Decimal `json:"tax_forms"`
	Certificates   decimal.Decimal `json:"certificates"`
	Declarations   decimal.Decimal `json:"declarations"`
	Registrations  decimal.Decimal `json:"registrations"`
	Copies         decimal.Decimal `json:"copies"`
	Notary         decimal.Decimal `json:"notary"`
	Other          decimal.Decimal `json:"other"`
}

func (h *Handlers) dailyFromRequest(w http.ResponseWriter, req dailyRequest, id string) (models.DailyPayment, bool) {
	date, err := parseDate(req.Date)
	if err != nil {
		h.JSON(w, http.StatusBadRequest, map[string]string{"error": "date must be YYYY-MM-DD"})
		return models.DailyPayment{}, false
	}
	return models.DailyPayment{
		ID:             id,
		Date:           date,
		Fees:           req.Fees,
		CompanyOpening: req.CompanyOpening,
		CompanyClosing: req.CompanyClosing,
		Payroll:        req.Payroll,
		TaxForms:       req.TaxForms,
		Certificates:   req.Certificates,
		Declarations:   req.Declarations,
		Registrations:  req.Registrations,
		Copies:         req.Copies,
		Notary:         req.Notary,
		Other:          req.Other,
	}, true
}

func (h *Handlers) ListDailyPayments(w http.ResponseWriter, r *http.Request) {
	h.JSON(w, http.StatusOK, h.State.Snapshot().DailyPayments)
}

func (h *Handlers) CreateDailyPayment(w http.ResponseWriter, r *http.Request) {
	var req dailyRequest
	if !h.decode(w, r, &req) {
		return
	}
	d, ok := h.dailyFromRequest(w, req, "")
	if !ok {
		return
	}

	created, err := h.Ledger.CreateDailyPayment(r.Context(), d, userID(r))
	if err != nil {
		h.Fail(w, err)
		return
	}
	h.JSON(w, http.StatusCreated, created)
}

func (h *Handlers) UpdateDailyPayment(w http.ResponseWriter, r *http.Request) {
	var req dailyRequest
	if !h.decode(w, r, &req) {
		return
	}
	d, ok := h.dailyFromRequest(w, req, mux.Vars(r)["id"])
	if !ok {
		return
	}

	updated, err := h.Ledger.UpdateDailyPayment(r.Context(), d, userID(r))
	if err != nil {
		h.Fail(w, err)
		return
	}
	h.JSON(w, http.StatusOK, updated)
}

func (h *Handlers) DeleteDailyPayment(w http.ResponseWriter, r *http.Request) {
	if err := h.Ledger.DeleteDailyPayment(r.Context(), mux.Vars(r)["id"], userID(r)); err != nil {
		h.Fail(w, err)
		return
	}
	h.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
