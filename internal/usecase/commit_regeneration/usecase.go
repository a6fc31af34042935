package commit_regeneration

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TourBackoffice/internal/domain"
	proposalStore "github.com/m04kA/SMC-TourBackoffice/internal/infra/cache/proposal"
	"github.com/m04kA/SMC-TourBackoffice/internal/infra/events"
	bookingRepo "github.com/m04kA/SMC-TourBackoffice/internal/infra/storage/booking"
	"github.com/m04kA/SMC-TourBackoffice/pkg/txmanager"
)

// UseCase применение предложения перегенерации: полная замена списка размещений
type UseCase struct {
	store           ProposalStore
	bookingRepo     BookingRepository
	reservationRepo ReservationRepository
	txManager       TransactionManager
	publisher       EventPublisher
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	store ProposalStore,
	bookingRepo BookingRepository,
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:           store,
		bookingRepo:     bookingRepo,
		reservationRepo: reservationRepo,
		txManager:       txManager,
		publisher:       publisher,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case.
// Замена выполняется в сериализуемой транзакции: либо новый список сохранен целиком,
// либо старый остался без изменений.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CommitRegeneration: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CommitRegeneration: booking=%d proposal=%s confirmed=%t",
		req.BookingID, req.ProposalID, req.Confirmed)

	// 1. Предложение
	proposal, err := uc.store.Get(ctx, req.ProposalID)
	if err != nil {
		if errors.Is(err, proposalStore.ErrProposalNotFound) {
			uc.logger.Warn("CommitRegeneration: proposal %s not found", req.ProposalID)
			return nil, ErrProposalNotFound
		}
		uc.logger.Error("CommitRegeneration: failed to get proposal %s: %v", req.ProposalID, err)
		return nil, fmt.Errorf("%w: failed to get proposal: %v", ErrInternal, err)
	}

	if proposal.BookingID != req.BookingID {
		uc.logger.Warn("CommitRegeneration: proposal %s belongs to booking %d, not %d",
			proposal.ID, proposal.BookingID, req.BookingID)
		return nil, ErrProposalMismatch
	}

	if proposal.IsExpired(uc.timeProvider.Now()) {
		uc.logger.Warn("CommitRegeneration: proposal %s expired at %s", proposal.ID, proposal.ExpiresAt)
		uc.discard(ctx, proposal.ID)
		uc.metrics.IncRegeneration(outcomeExpired)
		return nil, ErrProposalExpired
	}

	// 2. Удаление существующих размещений только с явного согласия
	if proposal.RequiresConfirmation && !req.Confirmed {
		uc.logger.Warn("CommitRegeneration: proposal %s would discard %d reservations, confirmation required",
			proposal.ID, proposal.ExistingCount)
		uc.metrics.IncRegeneration(outcomeRejected)
		return nil, ErrConfirmationRequired
	}

	var (
		saved   []domain.ReservationStub
		version int64
	)

	// 3. Замена списка
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// Ручная правка между расчетом и коммитом
		if booking.ReservationsVersion != proposal.BaseVersion {
			return fmt.Errorf("%w: version %d, proposal based on %d",
				ErrConcurrentModification, booking.ReservationsVersion, proposal.BaseVersion)
		}

		saved, err = uc.reservationRepo.ReplaceForBooking(txCtx, req.BookingID, proposal.Reservations)
		if err != nil {
			return fmt.Errorf("%w: failed to replace reservations: %v", ErrInternal, err)
		}

		version, err = uc.bookingRepo.BumpReservationsVersion(txCtx, req.BookingID)
		if err != nil {
			return fmt.Errorf("%w: failed to bump version: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrConcurrentModification), txmanager.IsConflict(err):
			uc.logger.Warn("CommitRegeneration: booking id=%d: %v", req.BookingID, err)
			uc.discard(ctx, proposal.ID)
			uc.metrics.IncRegeneration(outcomeConflict)
			return nil, ErrConcurrentModification
		case errors.Is(err, ErrBookingNotFound):
			uc.logger.Warn("CommitRegeneration: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		case errors.Is(err, ErrInternal):
			uc.logger.Error("CommitRegeneration: booking id=%d: %v", req.BookingID, err)
			return nil, err
		default:
			uc.logger.Error("CommitRegeneration: transaction failed for booking id=%d: %v", req.BookingID, err)
			return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
		}
	}

	// 4. Предложение использовано
	uc.discard(ctx, proposal.ID)
	uc.metrics.IncRegeneration(outcomeCommitted)

	event := events.Event{
		Type:              events.TypeReservationsRegenerated,
		BookingID:         req.BookingID,
		ReservationsCount: len(saved),
		Version:           version,
		OccurredAt:        uc.timeProvider.Now(),
	}
	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Warn("CommitRegeneration: failed to publish event for booking id=%d: %v", req.BookingID, err)
	}

	uc.logger.Info("CommitRegeneration: booking=%d saved=%d discarded=%d version=%d",
		req.BookingID, len(saved), proposal.ExistingCount, version)

	return &Response{
		BookingID:    req.BookingID,
		Reservations: saved,
		Discarded:    proposal.ExistingCount,
		Version:      version,
	}, nil
}

func (uc *UseCase) discard(ctx context.Context, proposalID string) {
	if err := uc.store.Delete(ctx, proposalID); err != nil {
		uc.logger.Warn("CommitRegeneration: failed to delete proposal %s: %v", proposalID, err)
	}
}
