package database

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"fenix_office/internal/config/connections/postgres"
	"fenix_office/internal/models"
	"fenix_office/internal/ports"
)

type InvoicesRepo struct {
	pg *postgres.Postgres
}

func NewInvoicesRepo(pg *postgres.Postgres) *InvoicesRepo {
	return &InvoicesRepo{pg: pg}
}

const invoiceColumns = `id, number, category, client_id, payer_name, value, final_value,
	due_date, status, days_overdue, payment_date, created_at`

// RefreshStatuses runs the server-side bulk recomputation so aggregate
// reports are correct even for users who never open the app.
func (r *InvoicesRepo) RefreshStatuses(ctx context.Context) error {
	_, err := r.pg.Pool.Exec(ctx, `SELECT refresh_invoice_statuses()`)
	return err
}

func (r *InvoicesRepo) List(ctx context.Context) ([]models.Invoice, error) {
	rows, err := r.pg.Pool.Query(ctx, `
		SELECT `+invoiceColumns+`
		FROM invoices
		ORDER BY due_date DESC, created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Invoice
	for rows.Next() {
		var inv models.Invoice
		if err := rows.Scan(
			&inv.ID, &inv.Number, &inv.Category, &inv.ClientID, &inv.PayerName,
			&inv.Value, &inv.FinalValue, &inv.DueDate, &inv.Status,
			&inv.DaysOverdue, &inv.PaymentDate, &inv.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (r *InvoicesRepo) Insert(ctx context.Context, inv models.Invoice) (models.Invoice, error) {
	row := r.pg.Pool.QueryRow(ctx, `
		INSERT INTO invoices (
			id, number, category, client_id, payer_name, value, final_value,
			due_date, status, days_overdue, payment_date, created_at
		) VALUES (
			$1::uuid, $2, $3, $4::uuid, $5, $6::numeric, $7::numeric,
			$8::date, $9, $10, $11::date, NOW()
		)
		RETURNING `+invoiceColumns+`
	`,
		inv.ID, inv.Number, inv.Category, inv.ClientID, inv.PayerName,
		inv.Value, inv.FinalValue, inv.DueDate, inv.Status,
		inv.DaysOverdue, inv.PaymentDate,
	)
	return scanInvoice(row)
}

func (r *InvoicesRepo) Update(ctx context.Context, inv models.Invoice) (models.Invoice, error) {
	row := r.pg.Pool.QueryRow(ctx, `
		UPDATE invoices SET
			number = $2,
			category = $3,
			client_id = $4::uuid,
			payer_name = $5,
			value = $6::numeric,
			final_value = $7::numeric,
			due_date = $8::date,
			status = $9,
			days_overdue = $10,
			payment_date = $11::date,
			updated_at = NOW()
		WHERE id = $1::uuid
		RETURNING `+invoiceColumns+`
	`,
		inv.ID, inv.Number, inv.Category, inv.ClientID, inv.PayerName,
		inv.Value, inv.FinalValue, inv.DueDate, inv.Status,
		inv.DaysOverdue, inv.PaymentDate,
	)
	return scanInvoice(row)
}

func (r *InvoicesRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pg.Pool.Exec(ctx, `DELETE FROM invoices WHERE id = $1::uuid`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func scanInvoice(row pgx.Row) (models.Invoice, error) {
	var inv models.Invoice
	err := row.Scan(
		&inv.ID, &inv.Number, &inv.Category, &inv.ClientID, &inv.PayerName,
		&inv.Value, &inv.FinalValue, &inv.DueDate, &inv.Status,
		&inv.DaysOverdue, &inv.PaymentDate, &inv.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Invoice{}, ports.ErrNotFound
	}
	return inv, err
}
