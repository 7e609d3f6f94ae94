package ledger

import (
	"context"
	"strings"

	"fenix_office/internal/derive"
	"fenix_office/internal/models"
	"fenix_office/internal/services/sync"
)

func validatePayable(p models.Payable) error {
	if strings.TrimSpace(p.Description) == "" {
		return invalid("payable description is required")
	}
	if p.Value.IsNegative() {
		return invalid("payable value must be >= 0")
	}
	if p.DueDate.IsZero() {
		return invalid("payable due date is required")
	}
	return nil
}

// CreatePayable writes a new payable, degrading to the local cache when
// the backend rejects the write. Degraded mode is not an error the caller
// sees: the collection lives on locally and the next reachable cycle
// resumes from backend truth.
func (s *Service) CreatePayable(ctx context.Context, p models.Payable, userID string) (models.Payable, error) {
	if err := validatePayable(p); err != nil {
		return models.Payable{}, err
	}
	if p.ID == "" {
		p.ID = newID()
	}
	p = derive.Payable(p, s.now())

	canonical, err := s.store.InsertPayable(ctx, p)
	if err != nil {
		s.log.Warn().Err(err).Str("payable", p.ID).Msg("backend write failed, caching locally")
		return p, s.applyPayablesLocally(upsertPayable(s.state.Snapshot().Payables, p))
	}

	s.mergePayables(upsertPayable(s.state.Snapshot().Payables, canonical))
	s.record("create", "payable", canonical.ID, userID)
	return canonical, nil
}

// UpdatePayable recomputes the status from the (possibly new) due date
// before writing, unless the edit explicitly marks the payable PAID.
func (s *Service) UpdatePayable(ctx context.Context, p models.Payable, userID string) (models.Payable, error) {
	if err := validatePayable(p); err != nil {
		return models.Payable{}, err
	}

	if p.Status == models.StatusPaid {
		// Keep the stored overdue count and payment date: the DTO does
		// not carry them and a paid row's history must not reset.
		if stored := s.findPayable(p.ID); stored != nil {
			p.DaysOverdue = stored.DaysOverdue
			if p.PaymentDate == nil {
				p.PaymentDate = stored.PaymentDate
			}
		}
		if p.PaymentDate == nil {
			when := s.now()
			p.PaymentDate = &when
		}
	} else {
		p = derive.Payable(p, s.now())
	}

	canonical, err := s.store.UpdatePayable(ctx, p)
	if err != nil {
		s.log.Warn().Err(err).Str("payable", p.ID).Msg("backend write failed, caching locally")
		return p, s.applyPayablesLocally(upsertPayable(s.state.Snapshot().Payables, p))
	}

	s.mergePayables(upsertPayable(s.state.Snapshot().Payables, canonical))
	s.record("update", "payable", canonical.ID, userID)
	return canonical, nil
}

func (s *Service) findPayable(id string) *models.Payable {
	snap := s.state.Snapshot()
	for i := range snap.Payables {
		if snap.Payables[i].ID == id {
			return &snap.Payables[i]
		}
	}
	return nil
}

func (s *Service) DeletePayable(ctx context.Context, id, userID string) error {
	if err := s.store.DeletePayable(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("payable", id).Msg("backend delete failed, caching locally")
		return s.applyPayablesLocally(removePayable(s.state.Snapshot().Payables, id))
	}

	s.mergePayables(removePayable(s.state.Snapshot().Payables, id))
	s.record("delete", "payable", id, userID)
	return nil
}

// mergePayables installs the reconciled collection and keeps the cache
// byte-for-byte in step with what memory now holds.
func (s *Service) mergePayables(payables []models.Payable) {
	s.state.Mutate(func(snap *sync.Snapshot) {
		snap.Payables = payables
		snap.PayablesDegraded = false
	})
	if s.cache != nil {
		if err := s.cache.Save(payables); err != nil {
			s.log.Warn().Err(err).Msg("payables cache write failed")
		}
	}
}

// applyPayablesLocally is the degraded path: the full collection goes to
// the local cache first, then memory is updated from what was persisted.
func (s *Service) applyPayablesLocally(payables []models.Payable) error {
	if s.cache == nil {
		return invalid("payables store unavailable and no local cache configured")
	}
	if err := s.cache.Save(payables); err != nil {
		return err
	}
	s.state.Mutate(func(snap *sync.Snapshot) {
		snap.Payables = payables
		snap.PayablesDegraded = true
	})
	return nil
}
