package reorder_itinerary

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TourBackoffice/internal/domain"
	"github.com/m04kA/SMC-TourBackoffice/internal/infra/events"
	"github.com/m04kA/SMC-TourBackoffice/internal/usecase/propose_regeneration"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	BumpReservationsVersion(ctx context.Context, id int64) (int64, error)
}

// ItineraryRepository интерфейс репозитория дней маршрута
type ItineraryRepository interface {
	ListByBooking(ctx context.Context, bookingID int64) ([]domain.ItineraryDay, error)
	UpdateIndexes(ctx context.Context, bookingID int64, days []domain.ItineraryDay) error
}

// Proposer расчет предложения перегенерации после перестановки
type Proposer interface {
	Execute(ctx context.Context, req *propose_regeneration.Request) (*propose_regeneration.Response, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher интерфейс публикации событий
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
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
