package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreditCardExpense is an installment purchase. The row itself is never
// mutated per installment; payment state lives in CreditCardPayment,
// keyed by (card, month).
type CreditCardExpense struct {
	ID           string          `json:"id"`
	Card         string          `json:"card"`
	Description  string          `json:"description"`
	PurchaseDate time.Time       `json:"purchase_date"`
	TotalValue   decimal.Decimal `json:"total_value"`
	Installments int             `json:"installments"`
}

// CreditCardPayment marks a card's bill for one month as paid. It settles
// every installment active that month on that card at once.
type CreditCardPayment struct {
	ID     string     `json:"id"`
	Card   string     `json:"card"`
	Month  string     `json:"month"` // YYYY-MM
	Paid   bool       `json:"paid"`
	PaidAt *time.Time `json:"paid_at,omitempty"`
}

// MonthKey renders a reporting month in the YYYY-MM form used by
// CreditCardPayment rows.
func MonthKey(year int, month time.Month) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}
