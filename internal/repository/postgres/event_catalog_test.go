package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"campusevents/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

var eventRows = []string{
	"id", "title", "description", "location", "date_start", "date_end",
	"registration_required", "registration_start", "registration_end", "capacity",
	"created_at", "updated_at",
}

func TestEventCatalog_GetByID(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	regStart := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	regEnd := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		id      int64
		mock    func(mock sqlmock.Sqlmock)
		want    *domain.Event
		wantErr error
	}{
		{
			name: "success with registration window",
			id:   7,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM events WHERE id = \$1`).
					WithArgs(int64(7)).
					WillReturnRows(sqlmock.NewRows(eventRows).AddRow(
						7, "Career Fair", "Annual fair", "Main Hall",
						time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
						time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
						true, regStart, regEnd, 150, now, now,
					))
			},
			want: &domain.Event{
				ID:                   7,
				Title:                "Career Fair",
				Description:          "Annual fair",
				Location:             "Main Hall",
				DateStart:            time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
				DateEnd:              time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
				RegistrationRequired: true,
				RegistrationStart:    &regStart,
				RegistrationEnd:      &regEnd,
				Capacity:             150,
				CreatedAt:            now,
				UpdatedAt:            now,
			},
		},
		{
			name: "null window columns",
			id:   8,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM events WHERE id = \$1`).
					WithArgs(int64(8)).
					WillReturnRows(sqlmock.NewRows(eventRows).AddRow(
						8, "Open House", "", "",
						time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
						time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
						false, nil, nil, 0, now, now,
					))
			},
			want: &domain.Event{
				ID:        8,
				Title:     "Open House",
				DateStart: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
				DateEnd:   time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
				Capacity:  domain.CapacityUnlimited,
				CreatedAt: now,
				UpdatedAt: now,
			},
		},
		{
			name: "not found",
			id:   404,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM events WHERE id = \$1`).
					WithArgs(int64(404)).
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			catalog := NewEventCatalog(db)

			got, err := catalog.GetByID(ctx, tt.id)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventCatalog_List(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT (.+) FROM events ORDER BY date_start, id`).
		WillReturnRows(sqlmock.NewRows(eventRows).
			AddRow(1, "A", "", "", now, now, false, nil, nil, 10, now, now).
			AddRow(2, "B", "", "", now, now, false, nil, nil, 0, now, now))

	catalog := NewEventCatalog(db)
	events, err := catalog.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, int64(1), events[0].ID)
	require.True(t, events[1].Unlimited())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventCatalog_List_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT (.+) FROM events`).
		WillReturnRows(sqlmock.NewRows(eventRows))

	catalog := NewEventCatalog(db)
	events, err := catalog.List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, events)
	require.Empty(t, events)
}

func TestEventCatalog_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ev := domain.NewEvent("Career Fair",
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		150, now, now)

	mock.ExpectQuery(`INSERT INTO events`).
		WithArgs(ev.Title, ev.Description, ev.Location, ev.DateStart, ev.DateEnd,
			ev.RegistrationRequired, ev.RegistrationStart, ev.RegistrationEnd,
			ev.Capacity, ev.CreatedAt, ev.UpdatedAt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	catalog := NewEventCatalog(db)
	require.NoError(t, catalog.Create(context.Background(), ev))
	require.Equal(t, int64(42), ev.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventCatalog_Update_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE events`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	catalog := NewEventCatalog(db)
	err = catalog.Update(context.Background(), &domain.Event{ID: 404})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventCatalog_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	catalog := NewEventCatalog(db)
	require.NoError(t, catalog.Delete(context.Background(), 7))
	require.NoError(t, mock.ExpectationsWereMet())
}
