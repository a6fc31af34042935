package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-TourBackoffice/internal/domain"
	"github.com/m04kA/SMC-TourBackoffice/pkg/dateutil"
	"github.com/m04kA/SMC-TourBackoffice/pkg/dbmetrics"
	"github.com/m04kA/SMC-TourBackoffice/pkg/psqlbuilder"
)

var reservationColumns = []string{
	"id",
	"booking_id",
	"city_id",
	"city_name",
	"start_date",
	"end_date",
	"hotels",
	"meal",
	"currency",
	"target_price",
	"final_price",
	"created_at",
	"updated_at",
}

// Repository репозиторий размещений (отелей) бронирования
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория размещений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListByBooking получает размещения бронирования, отсортированные по дате заезда и городу
func (r *Repository) ListByBooking(ctx context.Context, bookingID int64) ([]domain.ReservationStub, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("start_date ASC", "city_name ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// ListByBookings получает размещения нескольких бронирований одним запросом.
// Бронирования без размещений в результирующей карте отсутствуют.
func (r *Repository) ListByBookings(ctx context.Context, bookingIDs []int64) (map[int64][]domain.ReservationStub, error) {
	result := make(map[int64][]domain.ReservationStub, len(bookingIDs))
	if len(bookingIDs) == 0 {
		return result, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"booking_id": bookingIDs}).
		OrderBy("booking_id ASC", "start_date ASC", "city_name ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByBookings - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBookings - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations, err := scanReservations(rows)
	if err != nil {
		return nil, err
	}

	for _, res := range reservations {
		result[res.BookingID] = append(result[res.BookingID], res)
	}

	return result, nil
}

// GetByID получает размещение по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ReservationStub, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// Create создает размещение
func (r *Repository) Create(ctx context.Context, res *domain.ReservationStub) (*domain.ReservationStub, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := insertBuilder().
		Values(insertValues(res.BookingID, res)...).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// Update обновляет даты, город и операционные поля размещения
func (r *Repository) Update(ctx context.Context, res *domain.ReservationStub) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("city_id", res.City.ID).
		Set("city_name", res.City.Name).
		Set("start_date", dateutil.DateOnly(res.Start)).
		Set("end_date", dateutil.DateOnly(res.End)).
		Set("hotels", pq.StringArray(hotelsOrEmpty(res.Hotels))).
		Set("meal", res.Meal).
		Set("currency", res.Currency).
		Set("target_price", res.TargetPrice).
		Set("final_price", res.FinalPrice).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": res.ID}).
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
		return ErrReservationNotFound
	}

	return nil
}

// ReplaceForBooking удаляет все размещения бронирования и вставляет новый список.
// Должен вызываться внутри транзакции: при ошибке на любом шаге откатывается всё.
// Версию списка поднимает вызывающий код в той же транзакции.
func (r *Repository) ReplaceForBooking(ctx context.Context, bookingID int64, reservations []domain.ReservationStub) ([]domain.ReservationStub, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ReplaceForBooking - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: ReplaceForBooking - execute delete: %v", ErrExecQuery, err)
	}

	created := make([]domain.ReservationStub, len(reservations))
	copy(created, reservations)

	if len(created) == 0 {
		return created, nil
	}

	builder := insertBuilder()
	pending := make(map[stayKey][]int, len(created))
	for i := range created {
		created[i].BookingID = bookingID
		builder = builder.Values(insertValues(bookingID, &created[i])...)
		key := keyOf(created[i].City.ID, created[i].Start)
		pending[key] = append(pending[key], i)
	}

	// Порядок строк RETURNING не гарантирован: сопоставляем по городу и дате заезда
	query, args, err = builder.Suffix("RETURNING id, city_id, start_date, created_at, updated_at").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ReplaceForBooking - build insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ReplaceForBooking - execute insert: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	matched := 0
	for rows.Next() {
		var (
			id, cityID           int64
			start                time.Time
			createdAt, updatedAt sql.NullTime
		)
		if err := rows.Scan(&id, &cityID, &start, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: ReplaceForBooking - scan row: %v", ErrScanRow, err)
		}

		key := keyOf(cityID, start)
		idx := pending[key]
		if len(idx) == 0 {
			return nil, fmt.Errorf("%w: ReplaceForBooking - unexpected row city=%d start=%s",
				ErrScanRow, cityID, dateutil.Format(start))
		}
		pending[key] = idx[1:]

		created[idx[0]].ID = id
		created[idx[0]].CreatedAt = createdAt.Time
		created[idx[0]].UpdatedAt = updatedAt.Time
		matched++
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ReplaceForBooking - rows error: %v", ErrScanRow, err)
	}
	if matched != len(created) {
		return nil, fmt.Errorf("%w: ReplaceForBooking - inserted %d rows, returned %d",
			ErrScanRow, len(created), matched)
	}

	return created, nil
}

type stayKey struct {
	cityID int64
	start  string
}

func keyOf(cityID int64, start time.Time) stayKey {
	return stayKey{cityID: cityID, start: dateutil.Format(start)}
}

func insertBuilder() squirrel.InsertBuilder {
	return psqlbuilder.Insert("reservations").
		Columns(
			"booking_id",
			"city_id",
			"city_name",
			"start_date",
			"end_date",
			"hotels",
			"meal",
			"currency",
			"target_price",
			"final_price",
		)
}

func insertValues(bookingID int64, res *domain.ReservationStub) []interface{} {
	return []interface{}{
		bookingID,
		res.City.ID,
		res.City.Name,
		dateutil.DateOnly(res.Start),
		dateutil.DateOnly(res.End),
		pq.StringArray(hotelsOrEmpty(res.Hotels)),
		res.Meal,
		res.Currency,
		res.TargetPrice,
		res.FinalPrice,
	}
}

// hotelsOrEmpty nil-слайс превратился бы в NULL, а колонка NOT NULL DEFAULT '{}'
func hotelsOrEmpty(hotels []string) []string {
	if hotels == nil {
		return []string{}
	}
	return hotels
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.ReservationStub, error) {
	var (
		res                     domain.ReservationStub
		hotels                  pq.StringArray
		meal, currency          sql.NullString
		targetPrice, finalPrice sql.NullFloat64
		createdAt, updatedAt    sql.NullTime
	)

	err := row.Scan(
		&res.ID,
		&res.BookingID,
		&res.City.ID,
		&res.City.Name,
		&res.Start,
		&res.End,
		&hotels,
		&meal,
		&currency,
		&targetPrice,
		&finalPrice,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.Start = dateutil.DateOnly(res.Start)
	res.End = dateutil.DateOnly(res.End)
	res.Hotels = hotelsOrEmpty(hotels)
	if meal.Valid {
		res.Meal = &meal.String
	}
	if currency.Valid {
		res.Currency = &currency.String
	}
	if targetPrice.Valid {
		res.TargetPrice = &targetPrice.Float64
	}
	if finalPrice.Valid {
		res.FinalPrice = &finalPrice.Float64
	}
	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

func scanReservations(rows *sql.Rows) ([]domain.ReservationStub, error) {
	reservations := make([]domain.ReservationStub, 0)

	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, *res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
