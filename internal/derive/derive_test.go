package derive

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"fenix_office/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestDaysLate(t *testing.T) {
	today := day(2026, time.March, 15)

	cases := []struct {
		name string
		due  time.Time
		want int
	}{
		{"due today", day(2026, time.March, 15), 0},
		{"due tomorrow", day(2026, time.March, 16), 0},
		{"due far in the future", day(2027, time.January, 1), 0},
		{"due yesterday", day(2026, time.March, 14), 1},
		{"due ten days ago", day(2026, time.March, 5), 10},
		{"due across a month boundary", day(2026, time.February, 28), 15},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := DaysLate(c.due, today); got != c.want {
				t.Fatalf("DaysLate(%s) = %d, want %d", c.due.Format("2006-01-02"), got, c.want)
			}
		})
	}
}

func TestDaysLateIgnoresTimeOfDay(t *testing.T) {
	due := time.Date(2026, time.March, 14, 23, 59, 0, 0, time.Local)
	today := time.Date(2026, time.March, 15, 0, 1, 0, 0, time.Local)
	if got := DaysLate(due, today); got != 1 {
		t.Fatalf("expected 1 day late after midnight truncation, got %d", got)
	}
}

func TestInvoiceOverdueAccruesLinearInterest(t *testing.T) {
	client := &models.Client{ID: "c1", InterestPercent: dec("1.0")}
	cid := "c1"
	inv := models.Invoice{
		ID:       "i1",
		ClientID: &cid,
		Value:    dec("1000"),
		DueDate:  day(2026, time.March, 5),
		Status:   models.StatusNotPaid,
	}

	got := Invoice(inv, client, day(2026, time.March, 15))

	if got.Status != models.StatusOverdue {
		t.Fatalf("status = %s, want OVERDUE", got.Status)
	}
	if got.DaysOverdue != 10 {
		t.Fatalf("days overdue = %d, want 10", got.DaysOverdue)
	}
	if !got.FinalValue.Equal(dec("1100")) {
		t.Fatalf("final value = %s, want 1100", got.FinalValue)
	}
	if !got.Value.Equal(dec("1000")) {
		t.Fatalf("original value was mutated: %s", got.Value)
	}
}

func TestInvoiceInterestIsOnOriginalNotCompounding(t *testing.T) {
	client := &models.Client{ID: "c1", InterestPercent: dec("2.5")}
	inv := models.Invoice{
		Value:   dec("200"),
		DueDate: day(2026, time.January, 1),
		Status:  models.StatusNotPaid,
	}

	// 40 days at 2.5%/day on the original 200: 200 + 200*0.025*40 = 400.
	got := Invoice(inv, client, day(2026, time.February, 10))
	if !got.FinalValue.Equal(dec("400")) {
		t.Fatalf("final value = %s, want 400 (linear interest)", got.FinalValue)
	}
}

func TestInvoiceWithoutClientAccruesNoInterest(t *testing.T) {
	payer := "Ad-hoc customer"
	inv := models.Invoice{
		PayerName: &payer,
		Value:     dec("1000"),
		DueDate:   day(2026, time.March, 5),
		Status:    models.StatusNotPaid,
	}

	got := Invoice(inv, nil, day(2026, time.March, 15))

	if got.Status != models.StatusOverdue {
		t.Fatalf("status = %s, want OVERDUE", got.Status)
	}
	if got.DaysOverdue != 10 {
		t.Fatalf("days overdue = %d, want 10", got.DaysOverdue)
	}
	if !got.FinalValue.Equal(dec("1000")) {
		t.Fatalf("final value = %s, want 1000 (no rate without a client)", got.FinalValue)
	}
}

func TestInvoiceNotYetDue(t *testing.T) {
	client := &models.Client{InterestPercent: dec("5")}
	inv := models.Invoice{
		Value:       dec("300"),
		FinalValue:  dec("999"), // stale derived value from an earlier cycle
		DueDate:     day(2026, time.April, 1),
		Status:      models.StatusOverdue,
		DaysOverdue: 7,
	}

	got := Invoice(inv, client, day(2026, time.March, 15))

	if got.Status != models.StatusNotPaid {
		t.Fatalf("status = %s, want NOT_PAID", got.Status)
	}
	if got.DaysOverdue != 0 {
		t.Fatalf("days overdue = %d, want 0", got.DaysOverdue)
	}
	if !got.FinalValue.Equal(dec("300")) {
		t.Fatalf("final value = %s, want 300", got.FinalValue)
	}
}

func TestPaidInvoiceIsAbsorbing(t *testing.T) {
	client := &models.Client{InterestPercent: dec("1")}
	paidAt := day(2026, time.March, 1)
	inv := models.Invoice{
		Value:       dec("500"),
		FinalValue:  dec("515"),
		DueDate:     day(2026, time.February, 1),
		Status:      models.StatusPaid,
		DaysOverdue: 3,
		PaymentDate: &paidAt,
	}

	// Advance today by 30 days past payment: nothing may move.
	got := Invoice(inv, client, day(2026, time.March, 31))
	if got.Status != models.StatusPaid {
		t.Fatalf("paid invoice re-derived to %s", got.Status)
	}
	if !got.FinalValue.Equal(dec("515")) || got.DaysOverdue != 3 {
		t.Fatalf("paid invoice values moved: final=%s days=%d", got.FinalValue, got.DaysOverdue)
	}
}

func TestInvoiceIdempotent(t *testing.T) {
	client := &models.Client{InterestPercent: dec("1.5")}
	inv := models.Invoice{
		Value:   dec("750"),
		DueDate: day(2026, time.March, 1),
		Status:  models.StatusNotPaid,
	}
	today := day(2026, time.March, 20)

	once := Invoice(inv, client, today)
	twice := Invoice(once, client, today)

	if twice.Status != once.Status || twice.DaysOverdue != once.DaysOverdue || !twice.FinalValue.Equal(once.FinalValue) {
		t.Fatalf("second application changed the result: %+v vs %+v", once, twice)
	}
}

func TestPayableStatusOnlyToggles(t *testing.T) {
	today := day(2026, time.March, 15)

	p := models.Payable{Value: dec("1200"), DueDate: day(2026, time.March, 16), Status: models.StatusNotPaid}
	if got := Payable(p, today); got.Status != models.StatusNotPaid {
		t.Fatalf("due tomorrow should stay NOT_PAID, got %s", got.Status)
	}

	p.DueDate = day(2026, time.March, 14)
	got := Payable(p, today)
	if got.Status != models.StatusOverdue || got.DaysOverdue != 1 {
		t.Fatalf("due yesterday should be OVERDUE/1, got %s/%d", got.Status, got.DaysOverdue)
	}
	if !got.Value.Equal(dec("1200")) {
		t.Fatalf("payable value moved under derivation: %s", got.Value)
	}

	// Date pushed forward again flips it back, because the status is
	// recomputed from scratch each cycle.
	got.DueDate = day(2026, time.April, 1)
	back := Payable(got, today)
	if back.Status != models.StatusNotPaid || back.DaysOverdue != 0 {
		t.Fatalf("expected NOT_PAID/0 after due date moved, got %s/%d", back.Status, back.DaysOverdue)
	}
}

func TestPaidPayableIgnoresDueDate(t *testing.T) {
	p := models.Payable{
		Value:   dec("80"),
		DueDate: day(2026, time.January, 1),
		Status:  models.StatusPaid,
	}
	if got := Payable(p, day(2026, time.June, 1)); got.Status != models.StatusPaid {
		t.Fatalf("paid payable re-derived to %s", got.Status)
	}
}
