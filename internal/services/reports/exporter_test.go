package reports

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"fenix_office/internal/models"
	"fenix_office/internal/services/sync"
)

func TestBuildMonthlyWorkbook(t *testing.T) {
	cid := "c1"
	payer := "web customer"
	snap := &sync.Snapshot{
		Clients: []models.Client{{ID: "c1", Name: "Acme Ltda"}},
		Invoices: []models.Invoice{
			{
				Number:      "2026-001",
				Category:    models.CategoryStandard,
				ClientID:    &cid,
				Value:       decimal.NewFromInt(1000),
				FinalValue:  decimal.NewFromInt(1100),
				DueDate:     time.Date(2026, time.March, 5, 0, 0, 0, 0, time.Local),
				Status:      models.StatusOverdue,
				DaysOverdue: 10,
			},
			{
				Number:     "INT-9",
				Category:   models.CategoryInternet,
				PayerName:  &payer,
				Value:      decimal.NewFromInt(50),
				FinalValue: decimal.NewFromInt(50),
				// Different month: must not appear in the March sheet.
				DueDate: time.Date(2026, time.April, 2, 0, 0, 0, 0, time.Local),
				Status:  models.StatusNotPaid,
			},
		},
		Payables: []models.Payable{
			{Description: "rent", Value: decimal.NewFromInt(1500), DueDate: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.Local), Status: models.StatusOverdue, DaysOverdue: 14},
		},
		CardExpenses: []models.CreditCardExpense{
			{Card: "visa", Description: "printer", PurchaseDate: time.Date(2026, time.February, 10, 0, 0, 0, 0, time.Local), TotalValue: decimal.NewFromInt(600), Installments: 3},
		},
	}

	f, err := BuildMonthlyWorkbook(snap, 2026, time.March)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	defer f.Close()

	for _, sheet := range []string{"Invoices", "Payables", "Daily", "Cards"} {
		if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
			t.Fatalf("missing sheet %q (idx=%d err=%v)", sheet, idx, err)
		}
	}

	invRows, err := f.GetRows("Invoices")
	if err != nil {
		t.Fatalf("read invoices sheet: %v", err)
	}
	if len(invRows) != 2 {
		t.Fatalf("invoices sheet has %d rows, want header + 1 March invoice", len(invRows))
	}
	if invRows[1][2] != "Acme Ltda" {
		t.Fatalf("who-owes column = %q, want resolved client name", invRows[1][2])
	}
	if invRows[1][7] != "1100.00" {
		t.Fatalf("final value column = %q, want 1100.00", invRows[1][7])
	}

	cardRows, err := f.GetRows("Cards")
	if err != nil {
		t.Fatalf("read cards sheet: %v", err)
	}
	if len(cardRows) != 2 {
		t.Fatalf("cards sheet has %d rows, want header + 1 installment line", len(cardRows))
	}
	// March is the second of three installments for a February purchase.
	if cardRows[1][2] != "2" || cardRows[1][4] != "200.00" {
		t.Fatalf("installment line = %v, want index 2 at 200.00", cardRows[1])
	}
}
