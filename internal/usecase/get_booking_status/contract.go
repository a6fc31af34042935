package get_booking_status

import (
	"context"

	"github.com/m04kA/SMC-TourBackoffice/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

// ReservationRepository интерфейс репозитория размещений
type ReservationRepository interface {
	ListByBooking(ctx context.Context, bookingID int64) ([]domain.ReservationStub, error)
}

// FlightRepository интерфейс репозитория перелетов
type FlightRepository interface {
	ListByBooking(ctx context.Context, bookingID int64) ([]domain.FlightLeg, error)
}

// Metrics интерфейс доменных метрик
type Metrics interface {
	IncGrade(kind, grade string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
