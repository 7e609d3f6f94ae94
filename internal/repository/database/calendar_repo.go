package database

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"fenix_office/internal/config/connections/postgres"
	"fenix_office/internal/models"
	"fenix_office/internal/ports"
)

type CalendarRepo struct {
	pg *postgres.Postgres
}

func NewCalendarRepo(pg *postgres.Postgres) *CalendarRepo {
	return &CalendarRepo{pg: pg}
}

const calendarColumns = `id, title, description, day, event_time, created_by`

func (r *CalendarRepo) List(ctx context.Context) ([]models.CalendarEvent, error) {
	rows, err := r.pg.Pool.Query(ctx, `
		SELECT `+calendarColumns+`
		FROM calendar_events
		ORDER BY day, event_time
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.CalendarEvent
	for rows.Next() {
		var e models.CalendarEvent
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.Time, &e.CreatedBy); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *CalendarRepo) Insert(ctx context.Context, e models.CalendarEvent) (models.CalendarEvent, error) {
	row := r.pg.Pool.QueryRow(ctx, `
		INSERT INTO calendar_events (id, title, description, day, event_time, created_by)
		VALUES ($1::uuid, $2, $3, $4::date, $5, $6)
		RETURNING `+calendarColumns+`
	`, e.ID, e.Title, e.Description, e.Date, e.Time, e.CreatedBy)

	var got models.CalendarEvent
	err := row.Scan(&got.ID, &got.Title, &got.Description, &got.Date, &got.Time, &got.CreatedBy)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.CalendarEvent{}, ports.ErrNotFound
	}
	return got, err
}

func (r *CalendarRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pg.Pool.Exec(ctx, `DELETE FROM calendar_events WHERE id = $1::uuid`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrNotFound
	}
	return nil
}
