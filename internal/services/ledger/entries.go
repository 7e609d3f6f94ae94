package ledger

import (
	"context"
	"regexp"
	"strings"

	"fenix_office/internal/models"
	"fenix_office/internal/services/sync"
)

// CreateDailyPayment stores one day's ledger row. The total is always
// recomputed from the category fields; whatever the caller sent in Total
// is discarded.
func (s *Service) CreateDailyPayment(ctx context.Context, d models.DailyPayment, userID string) (models.DailyPayment, error) {
	if d.Date.IsZero() {
		return models.DailyPayment{}, invalid("daily payment date is required")
	}
	if d.ID == "" {
		d.ID = newID()
	}
	d.Recalc()

	canonical, err := s.store.InsertDailyPayment(ctx, d)
	if err != nil {
		return models.DailyPayment{}, err
	}

	s.state.Mutate(func(snap *sync.Snapshot) {
		snap.DailyPayments = append([]models.DailyPayment{canonical}, snap.DailyPayments...)
	})
	s.record("create", "daily_payment", canonical.ID, userID)
	return canonical, nil
}

func (s *Service) UpdateDailyPayment(ctx context.Context, d models.DailyPayment, userID string) (models.DailyPayment, error) {
	if d.Date.IsZero() {
		return models.DailyPayment{}, invalid("daily payment date is required")
	}
	d.Recalc()

	canonical, err := s.store.UpdateDailyPayment(ctx, d)
	if err != nil {
		return models.DailyPayment{}, err
	}

	s.state.Mutate(func(snap *sync.Snapshot) {
		for i := range snap.DailyPayments {
			if snap.DailyPayments[i].ID == canonical.ID {
				snap.DailyPayments[i] = canonical
				break
			}
		}
	})
	s.record("update", "daily_payment", canonical.ID, userID)
	return canonical, nil
}

func (s *Service) DeleteDailyPayment(ctx context.Context, id, userID string) error {
	if err := s.store.DeleteDailyPayment(ctx, id); err != nil {
		return err
	}

	s.state.Mutate(func(snap *sync.Snapshot) {
		rows := snap.DailyPayments[:0]
		for _, d := range snap.DailyPayments {
			if d.ID != id {
				rows = append(rows, d)
			}
		}
		snap.DailyPayments = rows
	})
	s.record("delete", "daily_payment", id, userID)
	return nil
}

func (s *Service) CreateCardExpense(ctx context.Context, e models.CreditCardExpense, userID string) (models.CreditCardExpense, error) {
	if strings.TrimSpace(e.Card) == "" {
		return models.CreditCardExpense{}, invalid("card name is required")
	}
	if e.TotalValue.IsNegative() {
		return models.CreditCardExpense{}, invalid("total value must be >= 0")
	}
	if e.Installments < 1 {
		return models.CreditCardExpense{}, invalid("installments must be >= 1")
	}
	if e.PurchaseDate.IsZero() {
		return models.CreditCardExpense{}, invalid("purchase date is required")
	}
	if e.ID == "" {
		e.ID = newID()
	}

	canonical, err := s.store.InsertCardExpense(ctx, e)
	if err != nil {
		return models.CreditCardExpense{}, err
	}

	s.state.Mutate(func(snap *sync.Snapshot) {
		snap.CardExpenses = append([]models.CreditCardExpense{canonical}, snap.CardExpenses...)
	})
	s.record("create", "card_expense", canonical.ID, userID)
	return canonical, nil
}

func (s *Service) DeleteCardExpense(ctx context.Context, id, userID string) error {
	if err := s.store.DeleteCardExpense(ctx, id); err != nil {
		return err
	}

	s.state.Mutate(func(snap *sync.Snapshot) {
		rows := snap.CardExpenses[:0]
		for _, e := range snap.CardExpenses {
			if e.ID != id {
				rows = append(rows, e)
			}
		}
		snap.CardExpenses = rows
	})
	s.record("delete", "card_expense", id, userID)
	return nil
}

var monthKeyRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// SetCardPayment flips the settlement marker for one card's bill in one
// month. The marker is the unit of payment for every installment active
// that month on that card.
func (s *Service) SetCardPayment(ctx context.Context, card, month string, paid bool, userID string) (models.CreditCardPayment, error) {
	if strings.TrimSpace(card) == "" {
		return models.CreditCardPayment{}, invalid("card name is required")
	}
	if !monthKeyRe.MatchString(month) {
		return models.CreditCardPayment{}, invalid("month must be YYYY-MM, got %q", month)
	}

	marker := models.CreditCardPayment{
		ID:    newID(),
		Card:  card,
		Month: month,
		Paid:  paid,
	}
	if paid {
		when := s.now()
		marker.PaidAt = &when
	}

	canonical, err := s.store.UpsertCardPayment(ctx, marker)
	if err != nil {
		return models.CreditCardPayment{}, err
	}

	s.state.Mutate(func(snap *sync.Snapshot) {
		for i := range snap.CardPayments {
			if snap.CardPayments[i].Card == canonical.Card && snap.CardPayments[i].Month == canonical.Month {
				snap.CardPayments[i] = canonical
				return
			}
		}
		snap.CardPayments = append(snap.CardPayments, canonical)
	})
	s.record("set_payment", "card_payment", canonical.ID, userID)
	return canonical, nil
}

func (s *Service) CreateCalendarEvent(ctx context.Context, e models.CalendarEvent, userID string) (models.CalendarEvent, error) {
	if strings.TrimSpace(e.Title) == "" {
		return models.CalendarEvent{}, invalid("event title is required")
	}
	if e.Date.IsZero() {
		return models.CalendarEvent{}, invalid("event date is required")
	}
	if e.ID == "" {
		e.ID = newID()
	}
	if e.CreatedBy == "" {
		e.CreatedBy = userID
	}

	canonical, err := s.store.InsertCalendarEvent(ctx, e)
	if err != nil {
		return models.CalendarEvent{}, err
	}

	s.state.Mutate(func(snap *sync.Snapshot) {
		snap.CalendarEvents = append(snap.CalendarEvents, canonical)
	})
	s.record("create", "calendar_event", canonical.ID, userID)
	return canonical, nil
}

func (s *Service) DeleteCalendarEvent(ctx context.Context, id, userID string) error {
	if err := s.store.DeleteCalendarEvent(ctx, id); err != nil {
		return err
	}

	s.state.Mutate(func(snap *sync.Snapshot) {
		rows := snap.CalendarEvents[:0]
		for _, e := range snap.CalendarEvents {
			if e.ID != id {
				rows = append(rows, e)
			}
		}
		snap.CalendarEvents = rows
	})
	s.record("delete", "calendar_event", id, userID)
	return nil
}
