package sync

import (
	"time"

	"fenix_office/internal/models"
)

// Snapshot is one consistent view of the whole working set. It is built in
// full by a sync cycle (or by a reconciled write) and swapped in atomically,
// so readers never observe a half-applied refresh. Treat the contents as
// immutable: mutate through Service.Mutate, which clones first.
type Snapshot struct {
	Clients        []models.Client            `json:"clients"`
	Invoices       []models.Invoice           `json:"invoices"`
	Payables       []models.Payable           `json:"payables"`
	DailyPayments  []models.DailyPayment      `json:"daily_payments"`
	CardExpenses   []models.CreditCardExpense `json:"card_expenses"`
	CardPayments   []models.CreditCardPayment `json:"card_payments"`
	CalendarEvents []models.CalendarEvent     `json:"calendar_events"`

	FetchedAt time.Time `json:"fetched_at"`
	// PayablesDegraded marks that the payables came from the local cache
	// because the backend table was unreachable.
	PayablesDegraded bool `json:"payables_degraded"`
}

func (s *Snapshot) clone() *Snapshot {
	if s == nil {
		return &Snapshot{}
	}
	cp := *s
	cp.Clients = append([]models.Client(nil), s.Clients...)
	cp.Invoices = append([]models.Invoice(nil), s.Invoices...)
	cp.Payables = append([]models.Payable(nil), s.Payables...)
	cp.DailyPayments = append([]models.DailyPayment(nil), s.DailyPayments...)
	cp.CardExpenses = append([]models.CreditCardExpense(nil), s.CardExpenses...)
	cp.CardPayments = append([]models.CreditCardPayment(nil), s.CardPayments...)
	cp.CalendarEvents = append([]models.CalendarEvent(nil), s.CalendarEvents...)
	return &cp
}

// ClientByID resolves a client reference, nil when absent. Invoices with a
// dangling or missing reference derive without interest.
func (s *Snapshot) ClientByID(id *string) *models.Client {
	if s == nil || id == nil {
		return nil
	}
	for i := range s.Clients {
		if s.Clients[i].ID == *id {
			return &s.Clients[i]
		}
	}
	return nil
}
