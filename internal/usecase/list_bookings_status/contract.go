package list_bookings_status

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TourBackoffice/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// ReservationRepository интерфейс репозитория размещений
type ReservationRepository interface {
	ListByBookings(ctx context.Context, bookingIDs []int64) (map[int64][]domain.ReservationStub, error)
}

// FlightRepository интерфейс репозитория перелетов
type FlightRepository interface {
	ListByBookings(ctx context.Context, bookingIDs []int64) (map[int64][]domain.FlightLeg, error)
}

// Metrics интерфейс доменных метрик
type Metrics interface {
	IncGrade(kind, grade string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
