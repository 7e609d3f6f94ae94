package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"fenix_office/internal/derive"
	"fenix_office/internal/models"
)

type cardExpenseRequest struct {
	Card         string          `json:"card"`
	Description  string          `json:"description"`
	PurchaseDate string          `json:"purchase_date"`
	TotalValue   decimal.Decimal `json:"total_value"`
	Installments int             `json:"installments"`
}

func (h *Handlers) ListCardExpenses(w http.ResponseWriter, r *http.Request) {
	h.JSON(w, http.StatusOK, h.State.Snapshot().CardExpenses)
}

func (h *Handlers) CreateCardExpense(w http.ResponseWriter, r *http.Request) {
	var req cardExpenseRequest
	if !h.decode(w, r, &req) {
		return
	}
	purchased, err := parseDate(req.PurchaseDate)
	if err != nil {
		h.JSON(w, http.StatusBadRequest, map[string]string{"error": "purchase_date must be YYYY-MM-DD"})
		return
	}

	created, err := h.Ledger.CreateCardExpense(r.Context(), models.CreditCardExpense{
		Card:         req.Card,
		Description:  req.Description,
		PurchaseDate: purchased,
		TotalValue:   req.TotalValue,
		Installments: req.Installments,
	}, userID(r))
	if err != nil {
		h.Fail(w, err)
		return
	}
	h.JSON(w, http.StatusCreated, created)
}

func (h *Handlers) DeleteCardExpense(w http.ResponseWriter, r *http.Request) {
	if err := h.Ledger.DeleteCardExpense(r.Context(), mux.Vars(r)["id"], userID(r)); err != nil {
		h.Fail(w, err)
		return
	}
	h.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

type cardPaymentRequest struct {
	Paid bool `json:"paid"`
}

func (h *Handlers) SetCardPayment(w http.ResponseWriter, r *http.Request) {
	var req cardPaymentRequest
	if !h.decode(w, r, &req) {
		return
	}
	vars := mux.Vars(r)

	marker, err := h.Ledger.SetCardPayment(r.Context(), vars["card"], vars["month"], req.Paid, userID(r))
	if err != nil {
		h.Fail(w, err)
		return
	}
	h.JSON(w, http.StatusOK, marker)
}

// CardMonth returns the derived installment lines for one reporting month:
// ?year=2026&month=3, defaulting to the current month.
func (h *Handlers) CardMonth(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	year, month := now.Year(), now.Month()
	if y := r.URL.Query().Get("year"); y != "" {
		v, err := strconv.Atoi(y)
		if err != nil {
			h.JSON(w, http.StatusBadRequest, map[string]string{"error": "year must be numeric"})
			return
		}
		year = v
	}
	if m := r.URL.Query().Get("month"); m != "" {
		v, err := strconv.Atoi(m)
		if err != nil || v < 1 || v > 12 {
			h.JSON(w, http.StatusBadRequest, map[string]string{"error": "month must be 1-12"})
			return
		}
		month = time.Month(v)
	}

	snap := h.State.Snapshot()
	lines := derive.MonthInstallments(snap.CardExpenses, snap.CardPayments, year, month)

	type lineResp struct {
		Expense   models.CreditCardExpense `json:"expense"`
		Number    int                      `json:"number"`
		Value     decimal.Decimal          `json:"value"`
		Remaining decimal.Decimal          `json:"remaining"`
		Paid      bool                     `json:"paid"`
	}
	out := make([]lineResp, 0, len(lines))
	for _, l := range lines {
		out = append(out, lineResp{
			Expense:   l.Expense,
			Number:    l.Number,
			Value:     l.Value,
			Remaining: derive.RemainingBalance(l.Expense, snap.CardPayments),
			Paid:      l.Paid,
		})
	}
	h.JSON(w, http.StatusOK, map[string]any{
		"month": models.MonthKey(year, month),
		"lines": out,
	})
}
