package database

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"fenix_office/internal/config/connections/postgres"
	"fenix_office/internal/models"
	"fenix_office/internal/ports"
)

type DailyPaymentsRepo struct {
	pg *postgres.Postgres
}

func NewDailyPaymentsRepo(pg *postgres.Postgres) *DailyPaymentsRepo {
	return &DailyPaymentsRepo{pg: pg}
}

const dailyColumns = `id, day, fees, company_opening, company_closing, payroll, tax_forms,
	certificates, declarations, registrations, copies, notary, other, total`

func (r *DailyPaymentsRepo) List(ctx context.Context) ([]models.DailyPayment, error) {
	rows, err := r.pg.Pool.Query(ctx, `
		SELECT `+dailyColumns+`
		FROM daily_payments
		ORDER BY day DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.DailyPayment
	for rows.Next() {
		var d models.DailyPayment
		if err := rows.Scan(
			&d.ID, &d.Date, &d.Fees, &d.CompanyOpening, &d.CompanyClosing,
			&d.Payroll, &d.TaxForms, &d.Certificates, &d.Declarations,
			&d.Registrations, &d.Copies, &d.Notary, &d.Other, &d.Total,
		); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *DailyPaymentsRepo) Insert(ctx context.Context, d models.DailyPayment) (models.DailyPayment, error) {
	row := r.pg.Pool.QueryRow(ctx, `
		INSERT INTO daily_payments (
			id, day, fees, company_opening, company_closing, payroll, tax_forms,
			certificates, declarations, registrations, copies, notary, other, total
		) VALUES (
			$1::uuid, $2::date, $3::numeric, $4::numeric, $5::numeric, $6::numeric, $7::numeric,
			$8::numeric, $9::numeric, $10::numeric, $11::numeric, $12::numeric, $13::numeric, $14::numeric
		)
		RETURNING `+dailyColumns+`
	`,
		d.ID, d.Date, d.Fees, d.CompanyOpening, d.CompanyClosing, d.Payroll, d.TaxForms,
		d.Certificates, d.Declarations, d.Registrations, d.Copies, d.Notary, d.Other, d.Total,
	)
	return scanDaily(row)
}

func (r *DailyPaymentsRepo) Update(ctx context.Context, d models.DailyPayment) (models.DailyPayment, error) {
	row := r.pg.Pool.QueryRow(ctx, `
		UPDATE daily_payments SET
			day = $2::date,
			fees = $3::numeric,
			company_opening = $4::numeric,
			company_closing = $5::numeric,
			payroll = $6::numeric,
			tax_forms = $7::numeric,
			certificates = $8::numeric,
			declarations = $9::numeric,
			registrations = $10::numeric,
			copies = $11::numeric,
			notary = $12::numeric,
			other = $13::numeric,
			total = $14::numeric,
			updated_at = NOW()
		WHERE id = $1::uuid
		RETURNING `+dailyColumns+`
	`,
		d.ID, d.Date, d.Fees, d.CompanyOpening, d.CompanyClosing, d.Payroll, d.TaxForms,
		d.Certificates, d.Declarations, d.Registrations, d.Copies, d.Notary, d.Other, d.Total,
	)
	return scanDaily(row)
}

func (r *DailyPaymentsRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pg.Pool.Exec(ctx, `DELETE FROM daily_payments WHERE id = $1::uuid`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func scanDaily(row pgx.Row) (models.DailyPayment, error) {
	var d models.DailyPayment
	err := row.Scan(
		&d.ID, &d.Date, &d.Fees, &d.CompanyOpening, &d.CompanyClosing,
		&d.Payroll, &d.TaxForms, &d.Certificates, &d.Declarations,
		&d.Registrations, &d.Copies, &d.Notary, &d.Other, &d.Total,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.DailyPayment{}, ports.ErrNotFound
	}
	return d, err
}
