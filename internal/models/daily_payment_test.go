package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDailyPaymentRecalc(t *testing.T) {
	d := DailyPayment{
		Fees:           decimal.NewFromInt(100),
		CompanyOpening: decimal.NewFromInt(50),
		CompanyClosing: decimal.NewFromInt(25),
		Payroll:        decimal.NewFromInt(10),
		TaxForms:       decimal.NewFromInt(5),
		Certificates:   decimal.NewFromInt(4),
		Declarations:   decimal.NewFromInt(3),
		Registrations:  decimal.NewFromInt(2),
		Copies:         decimal.NewFromInt(1),
		Notary:         decimal.RequireFromString("0.50"),
		Other:          decimal.RequireFromString("0.25"),
		Total:          decimal.NewFromInt(9999), // stale, must be overwritten
	}

	d.Recalc()
	if !d.Total.Equal(decimal.RequireFromString("200.75")) {
		t.Fatalf("total = %s, want 200.75", d.Total)
	}

	// Editing any category and recomputing keeps the invariant.
	d.Fees = decimal.NewFromInt(0)
	d.Recalc()
	if !d.Total.Equal(decimal.RequireFromString("100.75")) {
		t.Fatalf("total after edit = %s, want 100.75", d.Total)
	}
}
