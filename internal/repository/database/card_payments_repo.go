package database

import (
	"context"

	"fenix_office/internal/config/connections/postgres"
	"fenix_office/internal/models"
)

type CardPaymentsRepo struct {
	pg *postgres.Postgres
}

func NewCardPaymentsRepo(pg *postgres.Postgres) *CardPaymentsRepo {
	return &CardPaymentsRepo{pg: pg}
}

const cardPaymentColumns = `id, card, month, paid, paid_at`

func (r *CardPaymentsRepo) List(ctx context.Context) ([]models.CreditCardPayment, error) {
	rows, err := r.pg.Pool.Query(ctx, `
		SELECT `+cardPaymentColumns+`
		FROM card_payments
		ORDER BY month DESC, card
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.CreditCardPayment
	for rows.Next() {
		var p models.CreditCardPayment
		if err := rows.Scan(&p.ID, &p.Card, &p.Month, &p.Paid, &p.PaidAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Upsert keys the marker on (card, month): setting it paid settles every
// installment active that month on that card at once.
func (r *CardPaymentsRepo) Upsert(ctx context.Context, p models.CreditCardPayment) (models.CreditCardPayment, error) {
	row := r.pg.Pool.QueryRow(ctx, `
		INSERT INTO card_payments (id, card, month, paid, paid_at)
		VALUES ($1::uuid, $2, $3, $4, $5)
		ON CONFLICT (card, month) DO UPDATE SET
			paid = EXCLUDED.paid,
			paid_at = EXCLUDED.paid_at,
			updated_at = NOW()
		RETURNING `+cardPaymentColumns+`
	`, p.ID, p.Card, p.Month, p.Paid, p.PaidAt)

	var got models.CreditCardPayment
	err := row.Scan(&got.ID, &got.Card, &got.Month, &got.Paid, &got.PaidAt)
	return got, err
}
