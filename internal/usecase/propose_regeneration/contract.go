package propose_regeneration

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TourBackoffice/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

// ItineraryRepository интерфейс репозитория дней маршрута
type ItineraryRepository interface {
	ListByBooking(ctx context.Context, bookingID int64) ([]domain.ItineraryDay, error)
}

// ReservationRepository интерфейс репозитория размещений
type ReservationRepository interface {
	ListByBooking(ctx context.Context, bookingID int64) ([]domain.ReservationStub, error)
}

// ProposalStore интерфейс хранилища предложений перегенерации
type ProposalStore interface {
	Save(ctx context.Context, p *domain.RegenerationProposal) error
}

// Metrics интерфейс доменных метрик
type Metrics interface {
	AddReservationsDerived(n int)
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
