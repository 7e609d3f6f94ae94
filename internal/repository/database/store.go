package database

import (
	"context"

	"fenix_office/internal/config/connections/postgres"
	"fenix_office/internal/models"
)

// Store groups the table repos behind the ports.Store interface consumed
// by the sync loop and the write path.
type Store struct {
	Clients       *ClientsRepo
	Invoices      *InvoicesRepo
	Payables      *PayablesRepo
	DailyPayments *DailyPaymentsRepo
	CardExpenses  *CardExpensesRepo
	CardPayments  *CardPaymentsRepo
	Calendar      *CalendarRepo
}

func NewStore(pg *postgres.Postgres) *Store {
	return &Store{
		Clients:       NewClientsRepo(pg),
		Invoices:      NewInvoicesRepo(pg),
		Payables:      NewPayablesRepo(pg),
		DailyPayments: NewDailyPaymentsRepo(pg),
		CardExpenses:  NewCardExpensesRepo(pg),
		CardPayments:  NewCardPaymentsRepo(pg),
		Calendar:      NewCalendarRepo(pg),
	}
}

func (s *Store) RefreshInvoiceStatuses(ctx context.Context) error {
	return s.Invoices.RefreshStatuses(ctx)
}

func (s *Store) ListClients(ctx context.Context) ([]models.Client, error) {
	return s.Clients.List(ctx)
}

func (s *Store) InsertClient(ctx context.Context, c models.Client) (models.Client, error) {
	return s.Clients.Insert(ctx, c)
}

func (s *Store) UpdateClient(ctx context.Context, c models.Client) (models.Client, error) {
	return s.Clients.Update(ctx, c)
}

func (s *Store) DeleteClient(ctx context.Context, id string) error {
	return s.Clients.Delete(ctx, id)
}

func (s *Store) ListInvoices(ctx context.Context) ([]models.Invoice, error) {
	return s.Invoices.List(ctx)
}

func (s *Store) InsertInvoice(ctx context.Context, inv models.Invoice) (models.Invoice, error) {
	return s.Invoices.Insert(ctx, inv)
}

func (s *Store) UpdateInvoice(ctx context.Context, inv models.Invoice) (models.Invoice, error) {
	return s.Invoices.Update(ctx, inv)
}

func (s *Store) DeleteInvoice(ctx context.Context, id string) error {
	return s.Invoices.Delete(ctx, id)
}

func (s *Store) ListPayables(ctx context.Context) ([]models.Payable, error) {
	return s.Payables.List(ctx)
}

func (s *Store) InsertPayable(ctx context.Context, p models.Payable) (models.Payable, error) {
	return s.Payables.Insert(ctx, p)
}

func (s *Store) UpdatePayable(ctx context.Context, p models.Payable) (models.Payable, error) {
	return s.Payables.Update(ctx, p)
}

func (s *Store) DeletePayable(ctx context.Context, id string) error {
	return s.Payables.Delete(ctx, id)
}

func (s *Store) ListDailyPayments(ctx context.Context) ([]models.DailyPayment, error) {
	return s.DailyPayments.List(ctx)
}

func (s *Store) InsertDailyPayment(ctx context.Context, d models.DailyPayment) (models.DailyPayment, error) {
	return s.DailyPayments.Insert(ctx, d)
}

func (s *Store) UpdateDailyPayment(ctx context.Context, d models.DailyPayment) (models.DailyPayment, error) {
	return s.DailyPayments.Update(ctx, d)
}

func (s *Store) DeleteDailyPayment(ctx context.Context, id string) error {
	return s.DailyPayments.Delete(ctx, id)
}

func (s *Store) ListCardExpenses(ctx context.Context) ([]models.CreditCardExpense, error) {
	return s.CardExpenses.List(ctx)
}

func (s *Store) InsertCardExpense(ctx context.Context, e models.CreditCardExpense) (models.CreditCardExpense, error) {
	return s.CardExpenses.Insert(ctx, e)
}

func (s *Store) DeleteCardExpense(ctx context.Context, id string) error {
	return s.CardExpenses.Delete(ctx, id)
}

func (s *Store) ListCardPayments(ctx context.Context) ([]models.CreditCardPayment, error) {
	return s.CardPayments.List(ctx)
}

func (s *Store) UpsertCardPayment(ctx context.Context, p models.CreditCardPayment) (models.CreditCardPayment, error) {
	return s.CardPayments.Upsert(ctx, p)
}

func (s *Store) ListCalendarEvents(ctx context.Context) ([]models.CalendarEvent, error) {
	return s.Calendar.List(ctx)
}

func (s *Store) InsertCalendarEvent(ctx context.Context, e models.CalendarEvent) (models.CalendarEvent, error) {
	return s.Calendar.Insert(ctx, e)
}

func (s *Store) DeleteCalendarEvent(ctx context.Context, id string) error {
	return s.Calendar.Delete(ctx, id)
}
