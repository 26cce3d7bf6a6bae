package postgres

import (
	"context"
	"database/sql"
	"errors"

	"campusevents/internal/domain"
)

type eventCatalog struct {
	DB *sql.DB
}

// NewEventCatalog returns the sql-backed event catalog. The registration core
// only reads from it; the mutating operations serve the catalog owner's admin
// workflows.
func NewEventCatalog(db *sql.DB) domain.EventCatalog {
	return &eventCatalog{
		DB: db,
	}
}

const eventColumns = `id, title, description, location, date_start, date_end,
	registration_required, registration_start, registration_end, capacity,
	created_at, updated_at`

func (c *eventCatalog) List(ctx context.Context) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		ORDER BY date_start, id
	`
	rows, err := c.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*domain.Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (c *eventCatalog) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE id = $1
	`
	ev, err := scanEvent(c.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return ev, nil
}

func (c *eventCatalog) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (title, description, location, date_start, date_end,
			registration_required, registration_start, registration_end, capacity,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`
	return c.DB.QueryRowContext(ctx, query,
		e.Title, e.Description, e.Location, e.DateStart, e.DateEnd,
		e.RegistrationRequired, e.RegistrationStart, e.RegistrationEnd, e.Capacity,
		e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
}

func (c *eventCatalog) Update(ctx context.Context, e *domain.Event) error {
	query := `
		UPDATE events
		SET title = $2, description = $3, location = $4, date_start = $5,
			date_end = $6, registration_required = $7, registration_start = $8,
			registration_end = $9, capacity = $10, updated_at = $11
		WHERE id = $1
	`
	res, err := c.DB.ExecContext(ctx, query,
		e.ID, e.Title, e.Description, e.Location, e.DateStart, e.DateEnd,
		e.RegistrationRequired, e.RegistrationStart, e.RegistrationEnd, e.Capacity,
		e.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (c *eventCatalog) Delete(ctx context.Context, id int64) error {
	res, err := c.DB.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var regStart, regEnd sql.NullTime
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Location, &e.DateStart, &e.DateEnd,
		&e.RegistrationRequired, &regStart, &regEnd, &e.Capacity,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if regStart.Valid {
		e.RegistrationStart = &regStart.Time
	}
	if regEnd.Valid {
		e.RegistrationEnd = &regEnd.Time
	}
	return e, nil
}
