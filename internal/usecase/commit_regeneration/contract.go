package commit_regeneration

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TourBackoffice/internal/domain"
	"github.com/m04kA/SMC-TourBackoffice/internal/infra/events"
)

// ProposalStore интерфейс хранилища предложений перегенерации
type ProposalStore interface {
	Get(ctx context.Context, id string) (*domain.RegenerationProposal, error)
	Delete(ctx context.Context, id string) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	BumpReservationsVersion(ctx context.Context, id int64) (int64, error)
}

// ReservationRepository интерфейс репозитория размещений
type ReservationRepository interface {
	ReplaceForBooking(ctx context.Context, bookingID int64, reservations []domain.ReservationStub) ([]domain.ReservationStub, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher интерфейс публикации событий
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// Metrics интерфейс доменных метрик
type Metrics interface {
	IncRegeneration(outcome string)
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
