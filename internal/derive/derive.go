// Package derive holds the pure financial derivation rules: given a stored
// record and "today", compute the status, overdue count and final value the
// UI should show. No I/O, no error conditions, safe to re-run on every cycle.
package derive

import (
	"time"

	"github.com/shopspring/decimal"

	"fenix_office/internal/models"
)

var hundred = decimal.NewFromInt(100)

// midnight truncates a timestamp to its calendar day. The day is rebuilt in
// UTC so the later subtraction is always an exact multiple of 24h, no matter
// what zone or DST offset the stored timestamp carried.
func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysLate returns how many whole calendar days due lies behind today,
// never negative. Due today or in the future is 0.
func DaysLate(due, today time.Time) int {
	diff := midnight(today).Sub(midnight(due))
	if diff <= 0 {
		return 0
	}
	return int(diff / (24 * time.Hour))
}

// Invoice recomputes an invoice's current truth relative to today.
//
// PAID is absorbing: a paid invoice comes back unchanged for any today.
// Overdue invoices accrue simple interest on the original value at the
// client's daily rate, linear in days with no compounding. With no client
// attached (ad-hoc internet billing) there is no rate to apply, so the
// final value stays the original value and only the status moves.
func Invoice(inv models.Invoice, client *models.Client, today time.Time) models.Invoice {
	if inv.Status == models.StatusPaid {
		return inv
	}

	late := DaysLate(inv.DueDate, today)
	if late == 0 {
		inv.Status = models.StatusNotPaid
		inv.DaysOverdue = 0
		inv.FinalValue = inv.Value
		return inv
	}

	inv.Status = models.StatusOverdue
	inv.DaysOverdue = late
	inv.FinalValue = inv.Value
	if client != nil {
		interest := inv.Value.
			Mul(client.InterestPercent).
			Div(hundred).
			Mul(decimal.NewFromInt(int64(late)))
		inv.FinalValue = inv.Value.Add(interest)
	}
	return inv
}

// Payable recomputes a payable's status from its due date. Payables do not
// accrue interest: the value is invariant, only NOT_PAID/OVERDUE toggles
// while the payable is unpaid.
func Payable(p models.Payable, today time.Time) models.Payable {
	if p.Status == models.StatusPaid {
		return p
	}

	late := DaysLate(p.DueDate, today)
	if late > 0 {
		p.Status = models.StatusOverdue
		p.DaysOverdue = late
	} else {
		p.Status = models.StatusNotPaid
		p.DaysOverdue = 0
	}
	return p
}
