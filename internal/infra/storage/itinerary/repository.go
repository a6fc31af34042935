package itinerary

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-TourBackoffice/internal/domain"
	"github.com/m04kA/SMC-TourBackoffice/pkg/dbmetrics"
	"github.com/m04kA/SMC-TourBackoffice/pkg/psqlbuilder"
)

var dayColumns = []string{
	"id",
	"booking_id",
	"day_index",
	"city_ids",
	"city_names",
	"activities",
	"optional_activities",
}

// Repository репозиторий дней маршрута.
// Города дня хранятся двумя параллельными массивами (id и название) в порядке посещения.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория маршрута
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListByBooking получает дни маршрута, отсортированные по day_index
func (r *Repository) ListByBooking(ctx context.Context, bookingID int64) ([]domain.ItineraryDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(dayColumns...).
		From("itinerary_days").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("day_index ASC")

	// Блокируем дни, чтобы параллельное перетаскивание не перемешало индексы
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	days := make([]domain.ItineraryDay, 0)
	for rows.Next() {
		day, err := scanDay(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByBooking - scan row: %v", ErrScanRow, err)
		}
		days = append(days, *day)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - rows error: %v", ErrScanRow, err)
	}

	return days, nil
}

// GetByID получает день маршрута по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ItineraryDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(dayColumns...).
		From("itinerary_days").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	day, err := scanDay(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan day: %v", ErrScanRow, err)
	}

	return day, nil
}

// Create создает день маршрута
func (r *Repository) Create(ctx context.Context, day *domain.ItineraryDay) (*domain.ItineraryDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	ids, names := splitCities(day.Cities)

	query, args, err := psqlbuilder.Insert("itinerary_days").
		Columns(
			"booking_id",
			"day_index",
			"city_ids",
			"city_names",
			"activities",
			"optional_activities",
		).
		Values(
			day.BookingID,
			day.DayIndex,
			pq.Int64Array(ids),
			pq.StringArray(names),
			pq.StringArray(fromActivities(day.Activities)),
			pq.StringArray(fromActivities(day.OptionalActivities)),
		).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&day.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return day, nil
}

// Update обновляет города и активности дня (day_index не трогает)
func (r *Repository) Update(ctx context.Context, day *domain.ItineraryDay) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	ids, names := splitCities(day.Cities)

	query, args, err := psqlbuilder.Update("itinerary_days").
		Set("city_ids", pq.Int64Array(ids)).
		Set("city_names", pq.StringArray(names)).
		Set("activities", pq.StringArray(fromActivities(day.Activities))).
		Set("optional_activities", pq.StringArray(fromActivities(day.OptionalActivities))).
		Where(squirrel.Eq{"id": day.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrDayNotFound
	}

	return nil
}

// UpdateIndexes сохраняет новые day_index для дней бронирования.
// Уникальность (booking_id, day_index) проверяется в конце транзакции
// (DEFERRABLE INITIALLY DEFERRED), поэтому промежуточные дубли допустимы.
func (r *Repository) UpdateIndexes(ctx context.Context, bookingID int64, days []domain.ItineraryDay) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	for _, day := range days {
		query, args, err := psqlbuilder.Update("itinerary_days").
			Set("day_index", day.DayIndex).
			Where(squirrel.Eq{"id": day.ID, "booking_id": bookingID}).
			ToSql()

		if err != nil {
			return fmt.Errorf("%w: UpdateIndexes - build update query: %v", ErrBuildQuery, err)
		}

		result, err := executor.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: UpdateIndexes - execute update: %v", ErrExecQuery, err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: UpdateIndexes - get rows affected: %v", ErrExecQuery, err)
		}
		if rowsAffected == 0 {
			return fmt.Errorf("%w: UpdateIndexes - day %d", ErrDayNotFound, day.ID)
		}
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDay(row rowScanner) (*domain.ItineraryDay, error) {
	var (
		day                       domain.ItineraryDay
		cityIDs                   pq.Int64Array
		cityNames                 pq.StringArray
		activities, optActivities pq.StringArray
	)

	err := row.Scan(
		&day.ID,
		&day.BookingID,
		&day.DayIndex,
		&cityIDs,
		&cityNames,
		&activities,
		&optActivities,
	)
	if err != nil {
		return nil, err
	}

	if len(cityIDs) != len(cityNames) {
		return nil, fmt.Errorf("%w: day %d", ErrCorruptedCities, day.ID)
	}

	day.Cities = make([]domain.City, len(cityIDs))
	for i := range cityIDs {
		day.Cities[i] = domain.City{ID: cityIDs[i], Name: cityNames[i]}
	}
	day.Activities = toActivities(activities)
	day.OptionalActivities = toActivities(optActivities)

	return &day, nil
}

func splitCities(cities []domain.City) ([]int64, []string) {
	ids := make([]int64, len(cities))
	names := make([]string, len(cities))
	for i, c := range cities {
		ids[i] = c.ID
		names[i] = c.Name
	}
	return ids, names
}

func fromActivities(activities []domain.Activity) []string {
	out := make([]string, len(activities))
	for i, a := range activities {
		out[i] = string(a)
	}
	return out
}

func toActivities(values []string) []domain.Activity {
	out := make([]domain.Activity, len(values))
	for i, v := range values {
		out[i] = domain.Activity(v)
	}
	return out
}
