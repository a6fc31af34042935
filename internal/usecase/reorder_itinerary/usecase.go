package reorder_itinerary

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TourBackoffice/internal/derivation"
	"github.com/m04kA/SMC-TourBackoffice/internal/domain"
	"github.com/m04kA/SMC-TourBackoffice/internal/infra/events"
	bookingRepo "github.com/m04kA/SMC-TourBackoffice/internal/infra/storage/booking"
	"github.com/m04kA/SMC-TourBackoffice/internal/usecase/propose_regeneration"
	"github.com/m04kA/SMC-TourBackoffice/pkg/txmanager"
)

// UseCase перестановка дней маршрута (drag-and-drop).
// Размещения не трогаются: новый список можно получить через предложение перегенерации.
type UseCase struct {
	bookingRepo   BookingRepository
	itineraryRepo ItineraryRepository
	proposer      Proposer
	txManager     TransactionManager
	publisher     EventPublisher
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	itineraryRepo ItineraryRepository,
	proposer Proposer,
	txManager TransactionManager,
	publisher EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		itineraryRepo: itineraryRepo,
		proposer:      proposer,
		txManager:     txManager,
		publisher:     publisher,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReorderItinerary: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("ReorderItinerary: booking=%d days=%d propose=%t", req.BookingID, len(req.DayIDs), req.Propose)

	var (
		reordered []domain.ItineraryDay
		version   int64
	)

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if _, err := uc.bookingRepo.GetByID(txCtx, req.BookingID); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		days, err := uc.itineraryRepo.ListByBooking(txCtx, req.BookingID)
		if err != nil {
			return fmt.Errorf("%w: failed to get itinerary: %v", ErrInternal, err)
		}

		var ok bool
		reordered, ok = derivation.ApplyOrder(days, req.DayIDs)
		if !ok {
			return fmt.Errorf("%w: got %d ids for %d days", ErrInvalidOrder, len(req.DayIDs), len(days))
		}

		if err := uc.itineraryRepo.UpdateIndexes(txCtx, req.BookingID, reordered); err != nil {
			return fmt.Errorf("%w: failed to update day indexes: %v", ErrInternal, err)
		}

		// Предложения, рассчитанные по старому порядку, больше нельзя применить
		version, err = uc.bookingRepo.BumpReservationsVersion(txCtx, req.BookingID)
		if err != nil {
			return fmt.Errorf("%w: failed to bump version: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			uc.logger.Warn("ReorderItinerary: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		case errors.Is(err, ErrInvalidOrder):
			uc.logger.Warn("ReorderItinerary: booking id=%d: %v", req.BookingID, err)
			return nil, err
		case txmanager.IsConflict(err):
			uc.logger.Warn("ReorderItinerary: booking id=%d: %v", req.BookingID, err)
			return nil, ErrConcurrentModification
		case errors.Is(err, ErrInternal):
			uc.logger.Error("ReorderItinerary: booking id=%d: %v", req.BookingID, err)
			return nil, err
		default:
			uc.logger.Error("ReorderItinerary: transaction failed for booking id=%d: %v", req.BookingID, err)
			return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
		}
	}

	event := events.Event{
		Type:       events.TypeItineraryReordered,
		BookingID:  req.BookingID,
		Version:    version,
		OccurredAt: uc.timeProvider.Now(),
	}
	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Warn("ReorderItinerary: failed to publish event for booking id=%d: %v", req.BookingID, err)
	}

	resp := &Response{Days: reordered}

	if req.Propose {
		proposal, err := uc.proposer.Execute(ctx, &propose_regeneration.Request{BookingID: req.BookingID})
		switch {
		case err == nil:
			resp.Proposal = proposal
		case errors.Is(err, propose_regeneration.ErrNothingToDerive),
			errors.Is(err, propose_regeneration.ErrInvalidItinerary):
			uc.logger.Warn("ReorderItinerary: proposal skipped for booking id=%d: %v", req.BookingID, err)
			resp.ProposalSkipped = err.Error()
		default:
			// Перестановка уже сохранена, ошибку расчета не пробрасываем
			uc.logger.Error("ReorderItinerary: failed to propose for booking id=%d: %v", req.BookingID, err)
			resp.ProposalSkipped = "proposal failed"
		}
	}

	uc.logger.Info("ReorderItinerary: booking=%d reordered, version=%d", req.BookingID, version)

	return resp, nil
}
