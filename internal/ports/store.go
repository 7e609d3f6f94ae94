package ports

import (
	"context"
	"errors"

	"fenix_office/internal/models"
)

// ErrNotFound is returned by stores when a row does not exist.
var ErrNotFound = errors.New("record not found")

// Store is the persistence collaborator the sync loop and the write path
// depend on. Reads return full collections; writes return the canonical
// stored row so callers can merge server-assigned fields.
type Store interface {
	// RefreshInvoiceStatuses runs the server-side bulk recomputation of
	// all invoice status fields. Fire-and-forget from the caller's view.
	RefreshInvoiceStatuses(ctx context.Context) error

	ListClients(ctx context.Context) ([]models.Client, error)
	InsertClient(ctx context.Context, c models.Client) (models.Client, error)
	UpdateClient(ctx context.Context, c models.Client) (models.Client, error)
	DeleteClient(ctx context.Context, id string) error

	ListInvoices(ctx context.Context) ([]models.Invoice, error)
	InsertInvoice(ctx context.Context, inv models.Invoice) (models.Invoice, error)
	UpdateInvoice(ctx context.Context, inv models.Invoice) (models.Invoice, error)
	DeleteInvoice(ctx context.Context, id string) error

	ListPayables(ctx context.Context) ([]models.Payable, error)
	InsertPayable(ctx context.Context, p models.Payable) (models.Payable, error)
	UpdatePayable(ctx context.Context, p models.Payable) (models.Payable, error)
	DeletePayable(ctx context.Context, id string) error

	ListDailyPayments(ctx context.Context) ([]models.DailyPayment, error)
	InsertDailyPayment(ctx context.Context, d models.DailyPayment) (models.DailyPayment, error)
	UpdateDailyPayment(ctx context.Context, d models.DailyPayment) (models.DailyPayment, error)
	DeleteDailyPayment(ctx context.Context, id string) error

	ListCardExpenses(ctx context.Context) ([]models.CreditCardExpense, error)
	InsertCardExpense(ctx context.Context, e models.CreditCardExpense) (models.CreditCardExpense, error)
	DeleteCardExpense(ctx context.Context, id string) error

	ListCardPayments(ctx context.Context) ([]models.CreditCardPayment, error)
	UpsertCardPayment(ctx context.Context, p models.CreditCardPayment) (models.CreditCardPayment, error)

	ListCalendarEvents(ctx context.Context) ([]models.CalendarEvent, error)
	InsertCalendarEvent(ctx context.Context, e models.CalendarEvent) (models.CalendarEvent, error)
	DeleteCalendarEvent(ctx context.Context, id string) error
}
