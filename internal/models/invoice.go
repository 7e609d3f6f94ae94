package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Category classifies how an invoice was registered. It is set once at
// creation (from the typed number when the caller does not pick one) and
// never re-derived from the number afterwards, so a standard invoice whose
// number happens to read "S/N" stays standard.
type Category string

const (
	CategoryStandard     Category = "standard"
	CategoryAwaitingNote Category = "awaiting_note" // AGU- prefix: waiting on the client's official note
	CategoryInternet     Category = "internet"      // ad-hoc billing, no client record
	CategoryNoNote       Category = "no_note"       // no note issued
)

func (c Category) Valid() bool {
	switch c {
	case CategoryStandard, CategoryAwaitingNote, CategoryInternet, CategoryNoNote:
		return true
	}
	return false
}

// ClassifyNumber maps the legacy sentinel prefixes of a typed invoice
// number onto a Category. Used only when creating an invoice without an
// explicit category.
func ClassifyNumber(number string) Category {
	n := strings.ToUpper(strings.TrimSpace(number))
	switch {
	case strings.HasPrefix(n, "AGU-"):
		return CategoryAwaitingNote
	case strings.HasPrefix(n, "INT-"):
		return CategoryInternet
	case n == "" || n == "S/N" || n == "S/AN":
		return CategoryNoNote
	}
	return CategoryStandard
}

// Invoice is a billable obligation ("boleto"). Exactly one of ClientID and
// PayerName identifies who owes: ad-hoc internet billing has a free-text
// payer and no client record, and therefore never accrues interest.
type Invoice struct {
	ID          string          `json:"id"`
	Number      string          `json:"number"`
	Category    Category        `json:"category"`
	ClientID    *string         `json:"client_id,omitempty"`
	PayerName   *string         `json:"payer_name,omitempty"`
	Value       decimal.Decimal `json:"value"`       // original value, never mutated after creation
	FinalValue  decimal.Decimal `json:"final_value"` // derived: value plus accrued interest
	DueDate     time.Time       `json:"due_date"`
	Status      Status          `json:"status"`
	DaysOverdue int             `json:"days_overdue"`
	PaymentDate *time.Time      `json:"payment_date,omitempty"`
	CreatedAt   *time.Time      `json:"created_at,omitempty"`
}
