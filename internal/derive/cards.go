package derive

import (
	"time"

	"github.com/shopspring/decimal"

	"fenix_office/internal/models"
)

// InstallmentLine is one expense's derived line item for a reporting month.
type InstallmentLine struct {
	Expense models.CreditCardExpense
	Number  int // 1-based installment index within the plan
	Value   decimal.Decimal
	Paid    bool
}

// InstallmentValue is the per-month share of an expense, rounded to cents.
func InstallmentValue(e models.CreditCardExpense) decimal.Decimal {
	if e.Installments <= 0 {
		return e.TotalValue
	}
	return e.TotalValue.Div(decimal.NewFromInt(int64(e.Installments))).Round(2)
}

// installmentIndex returns which installment of e falls in (year, month),
// 1-based with the first installment in the purchase month, or 0 when the
// expense has no active installment that month.
func installmentIndex(e models.CreditCardExpense, year int, month time.Month) int {
	py, pm, _ := e.PurchaseDate.Date()
	idx := (year-py)*12 + int(month) - int(pm) + 1
	if idx < 1 || idx > e.Installments {
		return 0
	}
	return idx
}

// MonthInstallments derives the credit-card line items for one reporting
// month: every expense with an active installment that month, its index,
// its per-installment value, and whether the (card, month) marker says the
// bill is settled. Expenses are never mutated; the payment markers are the
// only unit of payment.
func MonthInstallments(
	expenses []models.CreditCardExpense,
	payments []models.CreditCardPayment,
	year int, month time.Month,
) []InstallmentLine {
	key := models.MonthKey(year, month)

	paid := make(map[string]bool, len(payments))
	for _, p := range payments {
		if p.Month == key {
			paid[p.Card] = p.Paid
		}
	}

	var lines []InstallmentLine
	for _, e := range expenses {
		idx := installmentIndex(e, year, month)
		if idx == 0 {
			continue
		}
		lines = append(lines, InstallmentLine{
			Expense: e,
			Number:  idx,
			Value:   InstallmentValue(e),
			Paid:    paid[e.Card],
		})
	}
	return lines
}

// RemainingBalance is the expense total minus the value of installments
// whose (card, month) bill is already marked paid.
func RemainingBalance(e models.CreditCardExpense, payments []models.CreditCardPayment) decimal.Decimal {
	paidMonths := make(map[string]bool, len(payments))
	for _, p := range payments {
		if p.Card == e.Card && p.Paid {
			paidMonths[p.Month] = true
		}
	}

	per := InstallmentValue(e)
	py, pm, _ := e.PurchaseDate.Date()

	settled := 0
	for i := 0; i < e.Installments; i++ {
		m := time.Date(py, pm, 1, 0, 0, 0, 0, time.UTC).AddDate(0, i, 0)
		if paidMonths[m.Format("2006-01")] {
			settled++
		}
	}
	return e.TotalValue.Sub(per.Mul(decimal.NewFromInt(int64(settled))))
}
