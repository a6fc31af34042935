package booking

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourBackoffice/internal/domain"
	"github.com/m04kA/SMC-TourBackoffice/pkg/dbmetrics"
)

func newRepository(t *testing.T) (*Repository, sqlmock.Sqlmock, *sqlmock.Rows) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db), mock, sqlmock.NewRows(bookingColumns)
}

func date(m time.Month, d int) time.Time {
	return time.Date(2024, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRepository_List_IncludeUndated(t *testing.T) {
	repo, mock, rows := newRepository(t)
	from, to := date(3, 1), date(3, 31)

	rows.
		AddRow(int64(1), "TR-1", date(3, 2), date(3, 9), 2, int64(4), nil, nil).
		AddRow(int64(2), "TR-2", nil, nil, 0, int64(0), nil, nil)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE (trip_start IS NULL OR (trip_start >= $1 AND trip_start <= $2))`)).
		WithArgs(from, to).
		WillReturnRows(rows)

	bookings, err := repo.List(context.Background(), domain.BookingsFilter{From: &from, To: &to, IncludeUndated: true})
	require.NoError(t, err)
	require.Len(t, bookings, 2)

	require.NotNil(t, bookings[0].TripStart)
	assert.Equal(t, date(3, 2), *bookings[0].TripStart)
	assert.Equal(t, 2, bookings[0].ExpectedFlightLegs)
	assert.Nil(t, bookings[1].TripStart)
	assert.Nil(t, bookings[1].TripEnd)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List_WindowOnly(t *testing.T) {
	repo, mock, rows := newRepository(t)
	from := date(3, 1)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM bookings WHERE (trip_start >= $1) ORDER BY`)).
		WithArgs(from).
		WillReturnRows(rows)

	bookings, err := repo.List(context.Background(), domain.BookingsFilter{From: &from})
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestRepository_List_NoFilter(t *testing.T) {
	repo, mock, rows := newRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM bookings ORDER BY trip_start ASC NULLS LAST, id ASC`)).
		WillReturnRows(rows.AddRow(int64(2), "TR-2", nil, nil, 0, int64(0), nil, nil))

	bookings, err := repo.List(context.Background(), domain.BookingsFilter{IncludeUndated: true})
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}

func TestRepository_GetByID_LocksInsideTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM bookings WHERE id = \$1 FOR UPDATE`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(bookingColumns).
			AddRow(int64(7), "TR-7", date(3, 1), date(3, 5), 2, int64(3), nil, nil))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)

	booking, err := repo.GetByID(dbmetrics.WithTx(context.Background(), tx), 7)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.Equal(t, int64(3), booking.ReservationsVersion)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock, rows := newRepository(t)

	mock.ExpectQuery(`SELECT .* FROM bookings WHERE id = \$1$`).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	_, err := repo.GetByID(context.Background(), 7)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_BumpReservationsVersion(t *testing.T) {
	repo, mock, _ := newRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE bookings SET reservations_version = reservations_version + 1`)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"reservations_version"}).AddRow(int64(4)))
	mock.ExpectQuery(`UPDATE bookings`).
		WithArgs(int64(8)).
		WillReturnRows(sqlmock.NewRows([]string{"reservations_version"}))

	version, err := repo.BumpReservationsVersion(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(4), version)

	_, err = repo.BumpReservationsVersion(context.Background(), 8)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
