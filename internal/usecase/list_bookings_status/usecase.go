package list_bookings_status

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TourBackoffice/internal/domain"
	"github.com/m04kA/SMC-TourBackoffice/internal/status"
	"github.com/m04kA/SMC-TourBackoffice/pkg/dateutil"
)

// UseCase сводная таблица бронирований с подсветкой статусов.
// Размещения и перелеты загружаются пачкой для всех бронирований окна.
type UseCase struct {
	bookingRepo     BookingRepository
	reservationRepo ReservationRepository
	flightRepo      FlightRepository
	metrics         Metrics
	windowDays      int
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case.
// windowDays - ширина окна по умолчанию, если границы не заданы.
func NewUseCase(
	bookingRepo BookingRepository,
	reservationRepo ReservationRepository,
	flightRepo FlightRepository,
	metrics Metrics,
	windowDays int,
	logger Logger,
) *UseCase {
	if windowDays <= 0 {
		windowDays = domain.DefaultStatusListWindowDays
	}
	return &UseCase{
		bookingRepo:     bookingRepo,
		reservationRepo: reservationRepo,
		flightRepo:      flightRepo,
		metrics:         metrics,
		windowDays:      windowDays,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	from, to, err := uc.window(req)
	if err != nil {
		uc.logger.Warn("ListBookingsStatus: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("ListBookingsStatus: from=%s to=%s", dateutil.Format(from), dateutil.Format(to))

	// Бронирования без даты начала самые неполные, их показываем в любом окне
	bookings, err := uc.bookingRepo.List(ctx, domain.BookingsFilter{From: &from, To: &to, IncludeUndated: true})
	if err != nil {
		uc.logger.Error("ListBookingsStatus: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	ids := make([]int64, len(bookings))
	for i, b := range bookings {
		ids[i] = b.ID
	}

	reservations, err := uc.reservationRepo.ListByBookings(ctx, ids)
	if err != nil {
		uc.logger.Error("ListBookingsStatus: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	legs, err := uc.flightRepo.ListByBookings(ctx, ids)
	if err != nil {
		uc.logger.Error("ListBookingsStatus: failed to list flight legs: %v", err)
		return nil, fmt.Errorf("%w: failed to list flight legs: %v", ErrInternal, err)
	}

	rows := make([]domain.BookingStatus, len(bookings))
	for i, b := range bookings {
		rows[i] = status.ForBooking(b, reservations[b.ID], legs[b.ID])
		uc.metrics.IncGrade("reservations", string(rows[i].ReservationGrade))
		uc.metrics.IncGrade("flights", string(rows[i].FlightGrade))
	}

	uc.logger.Info("ListBookingsStatus: %d bookings", len(rows))

	return &Response{From: from, To: to, Rows: rows}, nil
}

// window вычисляет окно: без границ - [сегодня, сегодня+windowDays],
// с одной границей - windowDays от нее
func (uc *UseCase) window(req *Request) (time.Time, time.Time, error) {
	var from, to time.Time

	switch {
	case req == nil || (req.From == nil && req.To == nil):
		from = dateutil.DateOnly(uc.timeProvider.Now())
		to = dateutil.AddDays(from, uc.windowDays)
	case req.To == nil:
		from = dateutil.DateOnly(*req.From)
		to = dateutil.AddDays(from, uc.windowDays)
	case req.From == nil:
		to = dateutil.DateOnly(*req.To)
		from = dateutil.AddDays(to, -uc.windowDays)
	default:
		from = dateutil.DateOnly(*req.From)
		to = dateutil.DateOnly(*req.To)
	}

	if to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: 'from' %s is after 'to' %s",
			ErrInvalidInput, dateutil.Format(from), dateutil.Format(to))
	}
	if dateutil.DaysBetween(from, to) > domain.MaxStatusListWindowDays {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: window exceeds %d days",
			ErrInvalidInput, domain.MaxStatusListWindowDays)
	}

	return from, to, nil
}
