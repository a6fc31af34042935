package propose_regeneration

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TourBackoffice/internal/derivation"
	"github.com/m04kA/SMC-TourBackoffice/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TourBackoffice/internal/infra/storage/booking"
)

// UseCase расчет нового списка размещений по маршруту без сохранения.
// Результат живет в хранилище предложений до коммита или истечения TTL.
type UseCase struct {
	bookingRepo     BookingRepository
	itineraryRepo   ItineraryRepository
	reservationRepo ReservationRepository
	store           ProposalStore
	metrics         Metrics
	ttl             time.Duration
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	itineraryRepo ItineraryRepository,
	reservationRepo ReservationRepository,
	store ProposalStore,
	metrics Metrics,
	ttl time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:     bookingRepo,
		itineraryRepo:   itineraryRepo,
		reservationRepo: reservationRepo,
		store:           store,
		metrics:         metrics,
		ttl:             ttl,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ProposeRegeneration: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("ProposeRegeneration: booking=%d", req.BookingID)

	// 1. Бронирование (дата начала и текущая версия списка)
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("ProposeRegeneration: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("ProposeRegeneration: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 2. Маршрут, отсортированный по day_index
	days, err := uc.itineraryRepo.ListByBooking(ctx, req.BookingID)
	if err != nil {
		uc.logger.Error("ProposeRegeneration: failed to get itinerary for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get itinerary: %v", ErrInternal, err)
	}

	// 3. Перегенерация блокируется, пока маршрут неполный
	if err := validateItinerary(days, booking.TripStart); err != nil {
		uc.logger.Warn("ProposeRegeneration: booking id=%d: %v", req.BookingID, err)
		return nil, err
	}

	// 4. Текущий список нужен, чтобы показать, что будет удалено
	existing, err := uc.reservationRepo.ListByBooking(ctx, req.BookingID)
	if err != nil {
		uc.logger.Error("ProposeRegeneration: failed to get reservations for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 5. Расчет
	reservations := derivation.DeriveReservations(days, booking.TripStart, &booking.ID)

	now := uc.timeProvider.Now()
	proposal := &domain.RegenerationProposal{
		ID:                   uuid.NewString(),
		BookingID:            booking.ID,
		BaseVersion:          booking.ReservationsVersion,
		Reservations:         reservations,
		ExistingCount:        len(existing),
		RequiresConfirmation: len(existing) > 0,
		CreatedAt:            now,
		ExpiresAt:            now.Add(uc.ttl),
	}

	// 6. Сохраняем предложение до подтверждения
	if err := uc.store.Save(ctx, proposal); err != nil {
		uc.logger.Error("ProposeRegeneration: failed to save proposal for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to save proposal: %v", ErrInternal, err)
	}

	uc.metrics.AddReservationsDerived(len(reservations))

	uc.logger.Info("ProposeRegeneration: booking=%d proposal=%s reservations=%d existing=%d version=%d",
		booking.ID, proposal.ID, len(reservations), len(existing), booking.ReservationsVersion)

	return &Response{
		ProposalID:           proposal.ID,
		BookingID:            proposal.BookingID,
		BaseVersion:          proposal.BaseVersion,
		Reservations:         reservations,
		Existing:             existing,
		RequiresConfirmation: proposal.RequiresConfirmation,
		ExpiresAt:            proposal.ExpiresAt,
	}, nil
}
