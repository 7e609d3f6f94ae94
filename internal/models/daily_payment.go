package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyPayment is one day's ledger row for the office. The categories are
// a fixed set; Total is always the recomputed sum of the eleven fields and
// is never accepted from input.
type DailyPayment struct {
	ID             string          `json:"id"`
	Date           time.Time       `json:"date"`
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
	Total          decimal.Decimal `json:"total"`
}

// Sum returns the total across all eleven categories.
func (d DailyPayment) Sum() decimal.Decimal {
	return decimal.Sum(
		d.Fees,
		d.CompanyOpening,
		d.CompanyClosing,
		d.Payroll,
		d.TaxForms,
		d.Certificates,
		d.Declarations,
		d.Registrations,
		d.Copies,
		d.Notary,
		d.Other,
	)
}

// Recalc fixes Total to the category sum. Called on every write path.
func (d *DailyPayment) Recalc() {
	d.Total = d.Sum()
}
