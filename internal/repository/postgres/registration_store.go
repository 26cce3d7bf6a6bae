package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"campusevents/internal/domain"
)

type registrationStore struct {
	DB *sql.DB
}

// NewRegistrationStore returns a RegistrationStore that persists the ledger
// as a flat ordered list in the registrations table. Save replaces the whole
// list inside one transaction, so each mutation is a read-modify-write of the
// full ledger; concurrent writers are last-write-wins by design.
func NewRegistrationStore(db *sql.DB) domain.RegistrationStore {
	return &registrationStore{
		DB: db,
	}
}

func (s *registrationStore) Load(ctx context.Context) ([]domain.Registration, error) {
	query := `
		SELECT event_id, user_id, name, email, role, department,
			registered_at, ticket, checked_in, checked_in_at
		FROM registrations
		ORDER BY position
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seen := make(map[string]struct{})
	var regs []domain.Registration
	for rows.Next() {
		var r domain.Registration
		var department sql.NullString
		var checkedInAt sql.NullTime
		if err := rows.Scan(
			&r.EventID, &r.UserID, &r.Name, &r.Email, &r.Role, &department,
			&r.RegisteredAt, &r.Ticket, &r.CheckedIn, &checkedInAt,
		); err != nil {
			return nil, err
		}
		// Stored duplicates would break the one-record-per-pair invariant;
		// drop them instead of surfacing them.
		pair := fmt.Sprintf("%d/%s", r.EventID, r.UserID)
		if _, dup := seen[pair]; dup {
			continue
		}
		seen[pair] = struct{}{}
		if department.Valid {
			r.Department = department.String
		}
		if checkedInAt.Valid {
			r.CheckedInAt = &checkedInAt.Time
		}
		regs = append(regs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if regs == nil {
		regs = []domain.Registration{}
	}
	return regs, nil
}

func (s *registrationStore) Save(ctx context.Context, regs []domain.Registration) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM registrations`); err != nil {
		return err
	}

	query := `
		INSERT INTO registrations (position, event_id, user_id, name, email, role,
			department, registered_at, ticket, checked_in, checked_in_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	for i, r := range regs {
		var department sql.NullString
		if r.Department != "" {
			department = sql.NullString{String: r.Department, Valid: true}
		}
		var checkedInAt sql.NullTime
		if r.CheckedInAt != nil {
			checkedInAt = sql.NullTime{Time: *r.CheckedInAt, Valid: true}
		}
		if _, err := tx.ExecContext(ctx, query,
			i, r.EventID, r.UserID, r.Name, r.Email, r.Role,
			department, r.RegisteredAt, r.Ticket, r.CheckedIn, checkedInAt,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}
