package itinerary

import (
	"context"

	"github.com/m04kA/SMC-TourBackoffice/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	BumpReservationsVersion(ctx context.Context, id int64) (int64, error)
}

// ItineraryRepository интерфейс репозитория дней маршрута
type ItineraryRepository interface {
	ListByBooking(ctx context.Context, bookingID int64) ([]domain.ItineraryDay, error)
	GetByID(ctx context.Context, id int64) (*domain.ItineraryDay, error)
	Create(ctx context.Context, day *domain.ItineraryDay) (*domain.ItineraryDay, error)
	Update(ctx context.Context, day *domain.ItineraryDay) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
