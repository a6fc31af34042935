package flight

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TourBackoffice/internal/domain"
	"github.com/m04kA/SMC-TourBackoffice/pkg/dateutil"
	"github.com/m04kA/SMC-TourBackoffice/pkg/dbmetrics"
	"github.com/m04kA/SMC-TourBackoffice/pkg/psqlbuilder"
)

// Repository репозиторий внутренних перелетов бронирования (только чтение:
// перелеты ведет другой модуль back-office, здесь они нужны для расчета статуса)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория перелетов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

func selectLegs() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"f.id",
		"f.booking_id",
		"f.flight_number",
		"f.flight_date",
		"f.from_city_id",
		"fc.name",
		"f.to_city_id",
		"tc.name",
		"f.created_at",
		"f.updated_at",
	).
		From("flight_legs f").
		LeftJoin("cities fc ON fc.id = f.from_city_id").
		LeftJoin("cities tc ON tc.id = f.to_city_id")
}

// ListByBooking получает перелеты бронирования в хронологическом порядке
func (r *Repository) ListByBooking(ctx context.Context, bookingID int64) ([]domain.FlightLeg, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectLegs().
		Where(squirrel.Eq{"f.booking_id": bookingID}).
		OrderBy("f.flight_date ASC NULLS LAST", "f.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanLegs(rows)
}

// ListByBookings получает перелеты нескольких бронирований одним запросом
func (r *Repository) ListByBookings(ctx context.Context, bookingIDs []int64) (map[int64][]domain.FlightLeg, error) {
	result := make(map[int64][]domain.FlightLeg, len(bookingIDs))
	if len(bookingIDs) == 0 {
		return result, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectLegs().
		Where(squirrel.Eq{"f.booking_id": bookingIDs}).
		OrderBy("f.booking_id ASC", "f.flight_date ASC NULLS LAST", "f.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByBookings - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBookings - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	legs, err := scanLegs(rows)
	if err != nil {
		return nil, err
	}

	for _, leg := range legs {
		result[leg.BookingID] = append(result[leg.BookingID], leg)
	}

	return result, nil
}

func scanLegs(rows *sql.Rows) ([]domain.FlightLeg, error) {
	legs := make([]domain.FlightLeg, 0)

	for rows.Next() {
		var (
			leg                  domain.FlightLeg
			flightNumber         sql.NullString
			flightDate           sql.NullTime
			fromID, toID         sql.NullInt64
			fromName, toName     sql.NullString
			createdAt, updatedAt sql.NullTime
		)

		err := rows.Scan(
			&leg.ID,
			&leg.BookingID,
			&flightNumber,
			&flightDate,
			&fromID,
			&fromName,
			&toID,
			&toName,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanLegs - scan row: %v", ErrScanRow, err)
		}

		leg.FlightNumber = flightNumber.String
		if flightDate.Valid {
			d := dateutil.DateOnly(flightDate.Time)
			leg.Date = &d
		}
		if fromID.Valid {
			leg.FromCity = &domain.City{ID: fromID.Int64, Name: fromName.String}
		}
		if toID.Valid {
			leg.ToCity = &domain.City{ID: toID.Int64, Name: toName.String}
		}
		leg.CreatedAt = createdAt.Time
		leg.UpdatedAt = updatedAt.Time

		legs = append(legs, leg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanLegs - rows error: %v", ErrScanRow, err)
	}

	return legs, nil
}
