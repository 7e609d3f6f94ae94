package sync

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"fenix_office/internal/models"
)

type fakeStore struct {
	clients      []models.Client
	invoices     []models.Invoice
	payables     []models.Payable
	payablesErr  error
	invoicesErr  error
	refreshErr   error
	refreshCalls int
}

func (f *fakeStore) RefreshInvoiceStatuses(ctx context.Context) error {
	f.refreshCalls++
	return f.refreshErr
}

func (f *fakeStore) ListClients(ctx context.Context) ([]models.Client, error) {
	return f.clients, nil
}

func (f *fakeStore) ListInvoices(ctx context.Context) ([]models.Invoice, error) {
	return f.invoices, f.invoicesErr
}

func (f *fakeStore) ListPayables(ctx context.Context) ([]models.Payable, error) {
	return f.payables, f.payablesErr
}

func (f *fakeStore) ListDailyPayments(ctx context.Context) ([]models.DailyPayment, error) {
	return nil, nil
}

func (f *fakeStore) ListCardExpenses(ctx context.Context) ([]models.CreditCardExpense, error) {
	return nil, nil
}

func (f *fakeStore) ListCardPayments(ctx context.Context) ([]models.CreditCardPayment, error) {
	return nil, nil
}

func (f *fakeStore) ListCalendarEvents(ctx context.Context) ([]models.CalendarEvent, error) {
	return nil, nil
}

func (f *fakeStore) InsertClient(ctx context.Context, c models.Client) (models.Client, error) {
	return c, nil
}
func (f *fakeStore) UpdateClient(ctx context.Context, c models.Client) (models.Client, error) {
	return c, nil
}
func (f *fakeStore) DeleteClient(ctx context.Context, id string) error { return nil }
func (f *fakeStore) InsertInvoice(ctx context.Context, i models.Invoice) (models.Invoice, error) {
	return i, nil
}
func (f *fakeStore) UpdateInvoice(ctx context.Context, i models.Invoice) (models.Invoice, error) {
	return i, nil
}
func (f *fakeStore) DeleteInvoice(ctx context.Context, id string) error { return nil }
func (f *fakeStore) InsertPayable(ctx context.Context, p models.Payable) (models.Payable, error) {
	return p, nil
}
func (f *fakeStore) UpdatePayable(ctx context.Context, p models.Payable) (models.Payable, error) {
	return p, nil
}
func (f *fakeStore) DeletePayable(ctx context.Context, id string) error { return nil }
func (f *fakeStore) InsertDailyPayment(ctx context.Context, d models.DailyPayment) (models.DailyPayment, error) {
	return d, nil
}
func (f *fakeStore) UpdateDailyPayment(ctx context.Context, d models.DailyPayment) (models.DailyPayment, error) {
	return d, nil
}
func (f *fakeStore) DeleteDailyPayment(ctx context.Context, id string) error { return nil }
func (f *fakeStore) InsertCardExpense(ctx context.Context, e models.CreditCardExpense) (models.CreditCardExpense, error) {
	return e, nil
}
func (f *fakeStore) DeleteCardExpense(ctx context.Context, id string) error { return nil }
func (f *fakeStore) UpsertCardPayment(ctx context.Context, p models.CreditCardPayment) (models.CreditCardPayment, error) {
	return p, nil
}
func (f *fakeStore) InsertCalendarEvent(ctx context.Context, e models.CalendarEvent) (models.CalendarEvent, error) {
	return e, nil
}
func (f *fakeStore) DeleteCalendarEvent(ctx context.Context, id string) error { return nil }

type fakeCache struct {
	payables []models.Payable
	loadErr  error
	saves    int
}

func (f *fakeCache) Load() ([]models.Payable, error) {
	return f.payables, f.loadErr
}

func (f *fakeCache) Save(payables []models.Payable) error {
	f.payables = append([]models.Payable(nil), payables...)
	f.saves++
	return nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func newTestService(store *fakeStore, cache *fakeCache, today time.Time) *Service {
	s := New(store, cache, DefaultInterval)
	s.now = func() time.Time { return today }
	return s
}

func TestRunCycleDerivesInvoicesAgainstClients(t *testing.T) {
	cid := "c1"
	store := &fakeStore{
		clients: []models.Client{{ID: "c1", Name: "Acme", InterestPercent: dec("1.0")}},
		invoices: []models.Invoice{
			{ID: "i1", ClientID: &cid, Value: dec("1000"), DueDate: day(2026, time.March, 5), Status: models.StatusNotPaid},
			{ID: "i2", Value: dec("1000"), DueDate: day(2026, time.March, 5), Status: models.StatusNotPaid},
		},
	}
	svc := newTestService(store, &fakeCache{}, day(2026, time.March, 15))

	if err := svc.RunCycle(context.Background()); err != nil {
		t.Fatalf("cycle: %v", err)
	}
	if store.refreshCalls != 1 {
		t.Fatalf("expected one backend recomputation call, got %d", store.refreshCalls)
	}

	snap := svc.Snapshot()
	if len(snap.Invoices) != 2 {
		t.Fatalf("expected 2 invoices, got %d", len(snap.Invoices))
	}

	withClient := snap.Invoices[0]
	if withClient.Status != models.StatusOverdue || withClient.DaysOverdue != 10 {
		t.Fatalf("invoice with client: %s/%d", withClient.Status, withClient.DaysOverdue)
	}
	if !withClient.FinalValue.Equal(dec("1100")) {
		t.Fatalf("invoice with client final = %s, want 1100", withClient.FinalValue)
	}

	adHoc := snap.Invoices[1]
	if adHoc.Status != models.StatusOverdue || !adHoc.FinalValue.Equal(dec("1000")) {
		t.Fatalf("ad-hoc invoice: %s final=%s, want OVERDUE/1000", adHoc.Status, adHoc.FinalValue)
	}
}

func TestRunCycleBestEffortRefresh(t *testing.T) {
	store := &fakeStore{refreshErr: errors.New("procedure timeout")}
	svc := newTestService(store, &fakeCache{}, day(2026, time.March, 15))

	if err := svc.RunCycle(context.Background()); err != nil {
		t.Fatalf("refresh failure must not abort the cycle: %v", err)
	}
	if svc.Snapshot().FetchedAt.IsZero() {
		t.Fatal("snapshot was not replaced")
	}
}

func TestRunCycleFetchFailureKeepsStaleSnapshot(t *testing.T) {
	store := &fakeStore{
		invoices: []models.Invoice{{ID: "i1", Value: dec("10"), DueDate: day(2026, time.March, 1)}},
	}
	svc := newTestService(store, &fakeCache{}, day(2026, time.March, 15))
	if err := svc.RunCycle(context.Background()); err != nil {
		t.Fatalf("first cycle: %v", err)
	}
	before := svc.Snapshot()

	store.invoicesErr = errors.New("connection refused")
	if err := svc.RunCycle(context.Background()); err == nil {
		t.Fatal("expected error when invoices fetch fails")
	}
	if svc.Snapshot() != before {
		t.Fatal("snapshot was replaced despite fetch failure")
	}
}

func TestRunCyclePayablesFallBackToCache(t *testing.T) {
	store := &fakeStore{payablesErr: errors.New("relation does not exist")}
	cache := &fakeCache{
		payables: []models.Payable{
			{ID: "p1", Value: dec("500"), DueDate: day(2026, time.March, 10), Status: models.StatusNotPaid},
		},
	}
	svc := newTestService(store, cache, day(2026, time.March, 15))

	if err := svc.RunCycle(context.Background()); err != nil {
		t.Fatalf("cycle with cache fallback: %v", err)
	}

	snap := svc.Snapshot()
	if !snap.PayablesDegraded {
		t.Fatal("expected degraded payables mode")
	}
	if len(snap.Payables) != 1 || snap.Payables[0].Status != models.StatusOverdue {
		t.Fatalf("cached payable was not derived: %+v", snap.Payables)
	}
	if cache.saves != 0 {
		t.Fatal("cache must not be rewritten from its own degraded copy")
	}
}

func TestRunCyclePayablesAndCacheBothFailing(t *testing.T) {
	store := &fakeStore{payablesErr: errors.New("down")}
	cache := &fakeCache{loadErr: errors.New("corrupt file")}
	svc := newTestService(store, cache, day(2026, time.March, 15))

	if err := svc.RunCycle(context.Background()); err == nil {
		t.Fatal("expected error when both the store and the cache fail")
	}
}

func TestRunCycleWritesCacheOnSuccess(t *testing.T) {
	store := &fakeStore{
		payables: []models.Payable{
			{ID: "p1", Value: dec("500"), DueDate: day(2026, time.March, 10), Status: models.StatusNotPaid},
		},
	}
	cache := &fakeCache{}
	svc := newTestService(store, cache, day(2026, time.March, 15))

	if err := svc.RunCycle(context.Background()); err != nil {
		t.Fatalf("cycle: %v", err)
	}
	if cache.saves != 1 {
		t.Fatalf("expected one cache write, got %d", cache.saves)
	}
	// The cache holds the derived collection that was merged into memory.
	if len(cache.payables) != 1 || cache.payables[0].Status != models.StatusOverdue {
		t.Fatalf("cache diverged from memory: %+v", cache.payables)
	}
}

func TestMutateSwapsClone(t *testing.T) {
	svc := newTestService(&fakeStore{}, &fakeCache{}, day(2026, time.March, 15))
	if err := svc.RunCycle(context.Background()); err != nil {
		t.Fatalf("cycle: %v", err)
	}

	before := svc.Snapshot()
	svc.Mutate(func(s *Snapshot) {
		s.Clients = append(s.Clients, models.Client{ID: "c9", Name: "New"})
	})

	if len(before.Clients) != 0 {
		t.Fatal("mutation leaked into the previous snapshot")
	}
	if got := svc.Snapshot(); len(got.Clients) != 1 || got.Clients[0].ID != "c9" {
		t.Fatalf("mutation not visible in new snapshot: %+v", got.Clients)
	}
}
