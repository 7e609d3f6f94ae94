package ledger

import (
	"context"
	"strings"

	"fenix_office/internal/derive"
	"fenix_office/internal/models"
	"fenix_office/internal/services/sync"
)

func validateClient(c models.Client) error {
	if strings.TrimSpace(c.Name) == "" {
		return invalid("client name is required")
	}
	if c.InterestPercent.IsNegative() {
		return invalid("interest percent must be >= 0")
	}
	if c.FinePercent.IsNegative() {
		return invalid("fine percent must be >= 0")
	}
	return nil
}

func (s *Service) CreateClient(ctx context.Context, c models.Client, userID string) (models.Client, error) {
	if err := validateClient(c); err != nil {
		return models.Client{}, err
	}
	if c.ID == "" {
		c.ID = newID()
	}

	canonical, err := s.store.InsertClient(ctx, c)
	if err != nil {
		return models.Client{}, err
	}

	s.state.Mutate(func(snap *sync.Snapshot) {
		snap.Clients = append(snap.Clients, canonical)
	})
	s.record("create", "client", canonical.ID, userID)
	return canonical, nil
}

// UpdateClient writes the new terms and re-derives the client's unpaid
// invoices right away, so a changed interest rate is visible without
// waiting for the next cycle.
func (s *Service) UpdateClient(ctx context.Context, c models.Client, userID string) (models.Client, error) {
	if err := validateClient(c); err != nil {
		return models.Client{}, err
	}

	canonical, err := s.store.UpdateClient(ctx, c)
	if err != nil {
		return models.Client{}, err
	}

	today := s.now()
	s.state.Mutate(func(snap *sync.Snapshot) {
		for i := range snap.Clients {
			if snap.Clients[i].ID == canonical.ID {
				snap.Clients[i] = canonical
				break
			}
		}
		for i := range snap.Invoices {
			inv := snap.Invoices[i]
			if inv.ClientID != nil && *inv.ClientID == canonical.ID {
				snap.Invoices[i] = derive.Invoice(inv, &canonical, today)
			}
		}
	})
	s.record("update", "client", canonical.ID, userID)
	return canonical, nil
}

// DeleteClient removes the client; the persistence layer cascades to its
// invoices, so the snapshot drops them too.
func (s *Service) DeleteClient(ctx context.Context, id, userID string) error {
	if err := s.store.DeleteClient(ctx, id); err != nil {
		return err
	}

	s.state.Mutate(func(snap *sync.Snapshot) {
		clients := snap.Clients[:0]
		for _, c := range snap.Clients {
			if c.ID != id {
				clients = append(clients, c)
			}
		}
		snap.Clients = clients

		invoices := snap.Invoices[:0]
		for _, inv := range snap.Invoices {
			if inv.ClientID == nil || *inv.ClientID != id {
				invoices = append(invoices, inv)
			}
		}
		snap.Invoices = invoices
	})
	s.record("delete", "client", id, userID)
	return nil
}
