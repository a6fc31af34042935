package get_booking_status

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/m04kA/SMC-TourBackoffice/internal/infra/storage/booking"
	"github.com/m04kA/SMC-TourBackoffice/internal/status"
)

// UseCase расчет статуса заполненности одного бронирования.
// Статус не хранится и пересчитывается при каждом чтении.
type UseCase struct {
	bookingRepo     BookingRepository
	reservationRepo ReservationRepository
	flightRepo      FlightRepository
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	reservationRepo ReservationRepository,
	flightRepo FlightRepository,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:     bookingRepo,
		reservationRepo: reservationRepo,
		flightRepo:      flightRepo,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || req.BookingID <= 0 {
		uc.logger.Warn("GetBookingStatus: invalid booking id")
		return nil, fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}

	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("GetBookingStatus: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("GetBookingStatus: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	reservations, err := uc.reservationRepo.ListByBooking(ctx, req.BookingID)
	if err != nil {
		uc.logger.Error("GetBookingStatus: failed to get reservations for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	legs, err := uc.flightRepo.ListByBooking(ctx, req.BookingID)
	if err != nil {
		uc.logger.Error("GetBookingStatus: failed to get flight legs for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get flight legs: %v", ErrInternal, err)
	}

	st := status.ForBooking(booking, reservations, legs)

	uc.metrics.IncGrade("reservations", string(st.ReservationGrade))
	uc.metrics.IncGrade("flights", string(st.FlightGrade))

	uc.logger.Info("GetBookingStatus: booking=%d reservations=%s flights=%s overall=%s",
		booking.ID, st.ReservationGrade, st.FlightGrade, st.Overall)

	return &Response{
		Status:       st,
		Reservations: reservations,
		FlightLegs:   legs,
	}, nil
}
