package ledger

import (
	"context"

	"fenix_office/internal/derive"
	"fenix_office/internal/models"
	"fenix_office/internal/services/sync"
)

func validateInvoice(inv models.Invoice) error {
	if inv.Value.IsNegative() {
		return invalid("invoice value must be >= 0")
	}
	if inv.DueDate.IsZero() {
		return invalid("invoice due date is required")
	}
	hasClient := inv.ClientID != nil && *inv.ClientID != ""
	hasPayer := inv.PayerName != nil && *inv.PayerName != ""
	if hasClient == hasPayer {
		return invalid("exactly one of client or payer name must be set")
	}
	if inv.Category != "" && !inv.Category.Valid() {
		return invalid("unknown invoice category %q", inv.Category)
	}
	return nil
}

// CreateInvoice registers a new boleto. The category is fixed here, once,
// from the typed number when the caller does not pick one; it is never
// re-derived from the number later. The stored row starts NOT_PAID with
// zero derived values and is immediately derived for display.
func (s *Service) CreateInvoice(ctx context.Context, inv models.Invoice, userID string) (models.Invoice, error) {
	if err := validateInvoice(inv); err != nil {
		return models.Invoice{}, err
	}
	if inv.ID == "" {
		inv.ID = newID()
	}
	if inv.Category == "" {
		inv.Category = models.ClassifyNumber(inv.Number)
	}
	inv.Status = models.StatusNotPaid
	inv.DaysOverdue = 0
	inv.FinalValue = inv.Value
	inv.PaymentDate = nil

	canonical, err := s.store.InsertInvoice(ctx, inv)
	if err != nil {
		return models.Invoice{}, err
	}

	today := s.now()
	var merged models.Invoice
	s.state.Mutate(func(snap *sync.Snapshot) {
		merged = derive.Invoice(canonical, snap.ClientByID(canonical.ClientID), today)
		snap.Invoices = append(snap.Invoices, merged)
	})
	s.record("create", "invoice", canonical.ID, userID)
	return merged, nil
}

// UpdateInvoice edits a stored invoice. A PAID row is frozen: its stored
// final value, overdue count and payment date are carried over regardless
// of what the edit sends, so editing a paid invoice can only touch the
// descriptive fields. An edit that itself marks the row PAID freezes
// today's derivation and stamps the payment date, like PayInvoice. All
// other edits are re-derived from the (possibly new) due date before
// writing, so the backend never stores stale aging for an edited row.
func (s *Service) UpdateInvoice(ctx context.Context, inv models.Invoice, userID string) (models.Invoice, error) {
	if err := validateInvoice(inv); err != nil {
		return models.Invoice{}, err
	}

	stored := s.findInvoice(inv.ID)
	switch {
	case stored != nil && stored.Status == models.StatusPaid:
		inv.Status = models.StatusPaid
		inv.FinalValue = stored.FinalValue
		inv.DaysOverdue = stored.DaysOverdue
		inv.PaymentDate = stored.PaymentDate
	case inv.Status == models.StatusPaid:
		open := inv
		open.Status = models.StatusNotPaid
		open = derive.Invoice(open, s.state.Snapshot().ClientByID(inv.ClientID), s.now())
		inv.FinalValue = open.FinalValue
		inv.DaysOverdue = open.DaysOverdue
		if inv.PaymentDate == nil {
			when := s.now()
			inv.PaymentDate = &when
		}
	default:
		inv = derive.Invoice(inv, s.state.Snapshot().ClientByID(inv.ClientID), s.now())
	}

	canonical, err := s.store.UpdateInvoice(ctx, inv)
	if err != nil {
		return models.Invoice{}, err
	}

	s.state.Mutate(func(snap *sync.Snapshot) {
		for i := range snap.Invoices {
			if snap.Invoices[i].ID == canonical.ID {
				snap.Invoices[i] = canonical
				break
			}
		}
	})
	s.record("update", "invoice", canonical.ID, userID)
	return canonical, nil
}

func (s *Service) findInvoice(id string) *models.Invoice {
	snap := s.state.Snapshot()
	for i := range snap.Invoices {
		if snap.Invoices[i].ID == id {
			return &snap.Invoices[i]
		}
	}
	return nil
}

// PayInvoice is the only transition into PAID and it is terminal: the
// payment date is stamped and the final value and overdue count freeze at
// whatever the last derivation produced. Later cycles skip the row.
func (s *Service) PayInvoice(ctx context.Context, id string, userID string) (models.Invoice, error) {
	current := s.findInvoice(id)
	if current == nil {
		return models.Invoice{}, invalid("invoice %s not found", id)
	}
	if current.Status == models.StatusPaid {
		return *current, nil
	}

	paid := *current
	paid.Status = models.StatusPaid
	when := s.now()
	paid.PaymentDate = &when

	canonical, err := s.store.UpdateInvoice(ctx, paid)
	if err != nil {
		return models.Invoice{}, err
	}

	s.state.Mutate(func(sn *sync.Snapshot) {
		for i := range sn.Invoices {
			if sn.Invoices[i].ID == canonical.ID {
				sn.Invoices[i] = canonical
				break
			}
		}
	})
	s.record("pay", "invoice", canonical.ID, userID)
	return canonical, nil
}

func (s *Service) DeleteInvoice(ctx context.Context, id, userID string) error {
	if err := s.store.DeleteInvoice(ctx, id); err != nil {
		return err
	}

	s.state.Mutate(func(snap *sync.Snapshot) {
		invoices := snap.Invoices[:0]
		for _, inv := range snap.Invoices {
			if inv.ID != id {
				invoices = append(invoices, inv)
			}
		}
		snap.Invoices = invoices
	})
	s.record("delete", "invoice", id, userID)
	return nil
}
