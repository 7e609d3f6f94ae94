// Package sync owns the background refresh of the shared ledger. Every
// cycle asks the backend to recompute its stored invoice statuses, refetches
// the full working set, re-applies the derivation rules at today's date and
// swaps the in-memory snapshot in one step.
package sync

import (
	"context"
	"fmt"
	stdsync "sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"fenix_office/internal/derive"
	"fenix_office/internal/logger"
	"fenix_office/internal/models"
	"fenix_office/internal/ports"
)

const DefaultInterval = 45 * time.Second

type Service struct {
	store    ports.Store
	cache    ports.PayableCache
	interval time.Duration
	log      zerolog.Logger
	now      func() time.Time

	cron *cron.Cron

	mu   stdsync.RWMutex
	snap *Snapshot
}

func New(store ports.Store, cache ports.PayableCache, interval time.Duration) *Service {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Service{
		store:    store,
		cache:    cache,
		interval: interval,
		log:      logger.WithComponent("sync"),
		now:      time.Now,
		snap:     &Snapshot{},
	}
}

// Start runs one immediate cycle (the initial load) and schedules the
// periodic refresh. The returned error is the initial load's; the schedule
// is installed regardless, so a backend that is down at boot is retried on
// the next tick.
func (s *Service) Start(ctx context.Context) error {
	initialErr := s.RunCycle(ctx)

	s.cron = cron.New()
	_, err := s.cron.AddFunc(fmt.Sprintf("@every %s", s.interval), func() {
		cycleCtx, cancel := context.WithTimeout(context.Background(), s.interval)
		defer cancel()
		if err := s.RunCycle(cycleCtx); err != nil {
			s.log.Warn().Err(err).Msg("background cycle kept previous snapshot")
		}
	})
	if err != nil {
		return fmt.Errorf("schedule sync loop: %w", err)
	}
	s.cron.Start()

	return initialErr
}

// Stop cancels the periodic refresh deterministically and waits for a
// running cycle to finish.
func (s *Service) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

// RunCycle executes one full synchronization pass. Any fetch failure other
// than the payables table aborts the snapshot swap: stale data beats a
// blank screen. The backend recomputation is best-effort and never blocks
// the rest of the cycle.
func (s *Service) RunCycle(ctx context.Context) error {
	started := s.now()

	if err := s.store.RefreshInvoiceStatuses(ctx); err != nil {
		s.log.Warn().Err(err).Msg("backend status recomputation failed, continuing")
	}

	clients, err := s.store.ListClients(ctx)
	if err != nil {
		return fmt.Errorf("fetch clients: %w", err)
	}
	invoices, err := s.store.ListInvoices(ctx)
	if err != nil {
		return fmt.Errorf("fetch invoices: %w", err)
	}
	daily, err := s.store.ListDailyPayments(ctx)
	if err != nil {
		return fmt.Errorf("fetch daily payments: %w", err)
	}
	expenses, err := s.store.ListCardExpenses(ctx)
	if err != nil {
		return fmt.Errorf("fetch card expenses: %w", err)
	}
	cardPayments, err := s.store.ListCardPayments(ctx)
	if err != nil {
		return fmt.Errorf("fetch card payments: %w", err)
	}
	events, err := s.store.ListCalendarEvents(ctx)
	if err != nil {
		return fmt.Errorf("fetch calendar events: %w", err)
	}

	payables, degraded, err := s.fetchPayables(ctx)
	if err != nil {
		return err
	}

	today := s.now()

	byID := make(map[string]*models.Client, len(clients))
	for i := range clients {
		byID[clients[i].ID] = &clients[i]
	}
	for i := range invoices {
		var c *models.Client
		if invoices[i].ClientID != nil {
			c = byID[*invoices[i].ClientID]
		}
		invoices[i] = derive.Invoice(invoices[i], c, today)
	}
	for i := range payables {
		payables[i] = derive.Payable(payables[i], today)
	}

	// The cache mirrors whatever collection was merged into memory, so a
	// later outage resumes from exactly this state.
	if s.cache != nil && !degraded {
		if err := s.cache.Save(payables); err != nil {
			s.log.Warn().Err(err).Msg("payables cache write failed")
		}
	}

	s.replace(&Snapshot{
		Clients:          clients,
		Invoices:         invoices,
		Payables:         payables,
		DailyPayments:    daily,
		CardExpenses:     expenses,
		CardPayments:     cardPayments,
		CalendarEvents:   events,
		FetchedAt:        today,
		PayablesDegraded: degraded,
	})

	s.log.Debug().
		Int("clients", len(clients)).
		Int("invoices", len(invoices)).
		Int("payables", len(payables)).
		Bool("payables_degraded", degraded).
		Dur("took", s.now().Sub(started)).
		Msg("cycle complete")
	return nil
}

// fetchPayables reads the payables table, falling back to the local cache
// when the store is unreachable. An unreachable store with a healthy cache
// is degraded mode, not an error; only store plus cache failing aborts the
// cycle.
func (s *Service) fetchPayables(ctx context.Context) ([]models.Payable, bool, error) {
	payables, storeErr := s.store.ListPayables(ctx)
	if storeErr == nil {
		return payables, false, nil
	}

	s.log.Warn().Err(storeErr).Msg("payables store unreachable, reading local cache")
	if s.cache == nil {
		return nil, false, fmt.Errorf("fetch payables: %w", storeErr)
	}

	cached, cacheErr := s.cache.Load()
	if cacheErr != nil {
		return nil, false, fmt.Errorf("fetch payables: %w (cache: %v)", storeErr, cacheErr)
	}
	return cached, true, nil
}

// Snapshot returns the current consistent view. The pointee is shared and
// must not be mutated by callers.
func (s *Service) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Mutate applies fn to a clone of the current snapshot and swaps the clone
// in. Used by the write path to merge canonical backend rows without
// waiting for the next cycle.
func (s *Service) Mutate(fn func(*Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.snap.clone()
	fn(next)
	s.snap = next
}

func (s *Service) replace(next *Snapshot) {
	s.mu.Lock()
	s.snap = next
	s.mu.Unlock()
}
