package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TourBackoffice/internal/domain"
	"github.com/m04kA/SMC-TourBackoffice/pkg/dateutil"
	"github.com/m04kA/SMC-TourBackoffice/pkg/dbmetrics"
	"github.com/m04kA/SMC-TourBackoffice/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"reference",
	"trip_start",
	"trip_end",
	"expected_flight_legs",
	"reservations_version",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает бронирование по ID.
// Внутри транзакции строка блокируется (FOR UPDATE), чтобы версия списка
// размещений не изменилась до коммита перегенерации.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// List получает бронирования, дата начала поездки которых попадает в окно фильтра.
// Бронирования без даты начала попадают в выборку без границ окна или с IncludeUndated.
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("trip_start ASC NULLS LAST", "id ASC")

	window := squirrel.And{}
	if filter.From != nil {
		window = append(window, squirrel.GtOrEq{"trip_start": *filter.From})
	}
	if filter.To != nil {
		window = append(window, squirrel.LtOrEq{"trip_start": *filter.To})
	}

	if len(window) > 0 {
		if filter.IncludeUndated {
			selectBuilder = selectBuilder.Where(squirrel.Or{squirrel.Eq{"trip_start": nil}, window})
		} else {
			selectBuilder = selectBuilder.Where(window)
		}
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// BumpReservationsVersion увеличивает версию списка размещений и возвращает новое значение
func (r *Repository) BumpReservationsVersion(ctx context.Context, id int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("reservations_version", squirrel.Expr("reservations_version + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING reservations_version").
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: BumpReservationsVersion - build update query: %v", ErrBuildQuery, err)
	}

	var version int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrBookingNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%w: BumpReservationsVersion - execute update: %v", ErrExecQuery, err)
	}

	return version, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		booking              domain.Booking
		tripStart, tripEnd   sql.NullTime
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&booking.ID,
		&booking.Reference,
		&tripStart,
		&tripEnd,
		&booking.ExpectedFlightLegs,
		&booking.ReservationsVersion,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if tripStart.Valid {
		t := dateutil.DateOnly(tripStart.Time)
		booking.TripStart = &t
	}
	if tripEnd.Valid {
		t := dateutil.DateOnly(tripEnd.Time)
		booking.TripEnd = &t
	}
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}
