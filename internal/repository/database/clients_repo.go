package database

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"fenix_office/internal/config/connections/postgres"
	"fenix_office/internal/models"
	"fenix_office/internal/ports"
)

type ClientsRepo struct {
	pg *postgres.Postgres
}

func NewClientsRepo(pg *postgres.Postgres) *ClientsRepo {
	return &ClientsRepo{pg: pg}
}

const clientColumns = `id, name, tax_id, interest_percent, fine_percent, notes`

func (r *ClientsRepo) List(ctx context.Context) ([]models.Client, error) {
	rows, err := r.pg.Pool.Query(ctx, `
		SELECT `+clientColumns+`
		FROM clients
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Client
	for rows.Next() {
		var c models.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.TaxID, &c.InterestPercent, &c.FinePercent, &c.Notes); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *ClientsRepo) Insert(ctx context.Context, c models.Client) (models.Client, error) {
	c.Name = strings.TrimSpace(c.Name)

	row := r.pg.Pool.QueryRow(ctx, `
		INSERT INTO clients (id, name, tax_id, interest_percent, fine_percent, notes)
		VALUES ($1::uuid, $2, $3, $4::numeric, $5::numeric, $6)
		RETURNING `+clientColumns+`
	`, c.ID, c.Name, c.TaxID, c.InterestPercent, c.FinePercent, c.Notes)

	return scanClient(row)
}

func (r *ClientsRepo) Update(ctx context.Context, c models.Client) (models.Client, error) {
	row := r.pg.Pool.QueryRow(ctx, `
		UPDATE clients SET
			name = $2,
			tax_id = $3,
			interest_percent = $4::numeric,
			fine_percent = $5::numeric,
			notes = $6,
			updated_at = NOW()
		WHERE id = $1::uuid
		RETURNING `+clientColumns+`
	`, c.ID, strings.TrimSpace(c.Name), c.TaxID, c.InterestPercent, c.FinePercent, c.Notes)

	return scanClient(row)
}

// Delete removes the client; invoice cleanup cascades in the schema.
func (r *ClientsRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pg.Pool.Exec(ctx, `DELETE FROM clients WHERE id = $1::uuid`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func scanClient(row pgx.Row) (models.Client, error) {
	var c models.Client
	err := row.Scan(&c.ID, &c.Name, &c.TaxID, &c.InterestPercent, &c.FinePercent, &c.Notes)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Client{}, ports.ErrNotFound
	}
	return c, err
}
