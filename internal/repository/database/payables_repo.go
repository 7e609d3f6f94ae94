package database

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"fenix_office/internal/config/connections/postgres"
	"fenix_office/internal/models"
	"fenix_office/internal/ports"
)

type PayablesRepo struct {
	pg *postgres.Postgres
}

func NewPayablesRepo(pg *postgres.Postgres) *PayablesRepo {
	return &PayablesRepo{pg: pg}
}

const payableColumns = `id, description, value, due_date, status, days_overdue, payment_date`

func (r *PayablesRepo) List(ctx context.Context) ([]models.Payable, error) {
	rows, err := r.pg.Pool.Query(ctx, `
		SELECT `+payableColumns+`
		FROM payables
		ORDER BY due_date
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Payable
	for rows.Next() {
		var p models.Payable
		if err := rows.Scan(&p.ID, &p.Description, &p.Value, &p.DueDate, &p.Status, &p.DaysOverdue, &p.PaymentDate); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PayablesRepo) Insert(ctx context.Context, p models.Payable) (models.Payable, error) {
	row := r.pg.Pool.QueryRow(ctx, `
		INSERT INTO payables (id, description, value, due_date, status, days_overdue, payment_date)
		VALUES ($1::uuid, $2, $3::numeric, $4::date, $5, $6, $7::date)
		RETURNING `+payableColumns+`
	`, p.ID, p.Description, p.Value, p.DueDate, p.Status, p.DaysOverdue, p.PaymentDate)

	return scanPayable(row)
}

func (r *PayablesRepo) Update(ctx context.Context, p models.Payable) (models.Payable, error) {
	row := r.pg.Pool.QueryRow(ctx, `
		UPDATE payables SET
			description = $2,
			value = $3::numeric,
			due_date = $4::date,
			status = $5,
			days_overdue = $6,
			payment_date = $7::date,
			updated_at = NOW()
		WHERE id = $1::uuid
		RETURNING `+payableColumns+`
	`, p.ID, p.Description, p.Value, p.DueDate, p.Status, p.DaysOverdue, p.PaymentDate)

	return scanPayable(row)
}

func (r *PayablesRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pg.Pool.Exec(ctx, `DELETE FROM payables WHERE id = $1::uuid`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func scanPayable(row pgx.Row) (models.Payable, error) {
	var p models.Payable
	err := row.Scan(&p.ID, &p.Description, &p.Value, &p.DueDate, &p.Status, &p.DaysOverdue, &p.PaymentDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Payable{}, ports.ErrNotFound
	}
	return p, err
}
