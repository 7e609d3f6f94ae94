package database

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"fenix_office/internal/config/connections/postgres"
	"fenix_office/internal/models"
	"fenix_office/internal/ports"
)

type CardExpensesRepo struct {
	pg *postgres.Postgres
}

func NewCardExpensesRepo(pg *postgres.Postgres) *CardExpensesRepo {
	return &CardExpensesRepo{pg: pg}
}

const cardExpenseColumns = `id, card, description, purchase_date, total_value, installments`

func (r *CardExpensesRepo) List(ctx context.Context) ([]models.CreditCardExpense, error) {
	rows, err := r.pg.Pool.Query(ctx, `
		SELECT `+cardExpenseColumns+`
		FROM card_expenses
		ORDER BY purchase_date DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.CreditCardExpense
	for rows.Next() {
		var e models.CreditCardExpense
		if err := rows.Scan(&e.ID, &e.Card, &e.Description, &e.PurchaseDate, &e.TotalValue, &e.Installments); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *CardExpensesRepo) Insert(ctx context.Context, e models.CreditCardExpense) (models.CreditCardExpense, error) {
	row := r.pg.Pool.QueryRow(ctx, `
		INSERT INTO card_expenses (id, card, description, purchase_date, total_value, installments)
		VALUES ($1::uuid, $2, $3, $4::date, $5::numeric, $6)
		RETURNING `+cardExpenseColumns+`
	`, e.ID, e.Card, e.Description, e.PurchaseDate, e.TotalValue, e.Installments)

	var got models.CreditCardExpense
	err := row.Scan(&got.ID, &got.Card, &got.Description, &got.PurchaseDate, &got.TotalValue, &got.Installments)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.CreditCardExpense{}, ports.ErrNotFound
	}
	return got, err
}

func (r *CardExpensesRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pg.Pool.Exec(ctx, `DELETE FROM card_expenses WHERE id = $1::uuid`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrNotFound
	}
	return nil
}
