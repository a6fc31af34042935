package reservations

import (
	"context"

	"github.com/m04kA/SMC-TourBackoffice/internal/domain"
	"github.com/m04kA/SMC-TourBackoffice/internal/infra/events"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	BumpReservationsVersion(ctx context.Context, id int64) (int64, error)
}

// ReservationRepository интерфейс репозитория размещений
type ReservationRepository interface {
	ListByBooking(ctx context.Context, bookingID int64) ([]domain.ReservationStub, error)
	GetByID(ctx context.Context, id int64) (*domain.ReservationStub, error)
	Create(ctx context.Context, res *domain.ReservationStub) (*domain.ReservationStub, error)
	Update(ctx context.Context, res *domain.ReservationStub) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher интерфейс публикации событий
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
