package itinerary

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TourBackoffice/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TourBackoffice/internal/infra/storage/booking"
	itineraryRepo "github.com/m04kA/SMC-TourBackoffice/internal/infra/storage/itinerary"
	"github.com/m04kA/SMC-TourBackoffice/internal/service/itinerary/models"
	"github.com/m04kA/SMC-TourBackoffice/pkg/txmanager"
)

// Service ведение дней маршрута.
// Любое изменение дня поднимает версию размещений бронирования,
// чтобы ранее рассчитанные предложения перегенерации стали неактуальны.
type Service struct {
	bookingRepo   BookingRepository
	itineraryRepo ItineraryRepository
	txManager     TransactionManager
	logger        Logger
}

// NewService создает новый сервис маршрута
func NewService(
	bookingRepo BookingRepository,
	itineraryRepo ItineraryRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:   bookingRepo,
		itineraryRepo: itineraryRepo,
		txManager:     txManager,
		logger:        logger,
	}
}

// List возвращает дни маршрута по порядку
func (s *Service) List(ctx context.Context, bookingID int64) (*models.DayListResponse, error) {
	if bookingID <= 0 {
		return nil, fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}

	s.logger.Info("List: booking_id=%d", bookingID)

	if err := s.checkBooking(ctx, bookingID); err != nil {
		return nil, err
	}

	days, err := s.itineraryRepo.ListByBooking(ctx, bookingID)
	if err != nil {
		s.logger.Error("List: failed to list days for booking %d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainList(bookingID, days), nil
}

// AddDay добавляет день в конец маршрута
func (s *Service) AddDay(ctx context.Context, bookingID int64, input *models.DayInput) (*models.DayResponse, error) {
	if bookingID <= 0 {
		return nil, fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}

	day := domain.ItineraryDay{BookingID: bookingID}
	if err := parseInput(input, &day); err != nil {
		s.logger.Warn("AddDay: validation failed for booking %d: %v", bookingID, err)
		return nil, err
	}

	s.logger.Info("AddDay: booking_id=%d, cities=%d", bookingID, len(day.Cities))

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := s.checkBooking(txCtx, bookingID); err != nil {
			return err
		}

		days, err := s.itineraryRepo.ListByBooking(txCtx, bookingID)
		if err != nil {
			return fmt.Errorf("%w: AddDay - repository error: %v", ErrInternal, err)
		}
		if len(days) >= domain.MaxItineraryDays {
			return fmt.Errorf("%w: itinerary already has %d days", ErrTooManyDays, len(days))
		}

		day.DayIndex = len(days)
		if _, err := s.itineraryRepo.Create(txCtx, &day); err != nil {
			return fmt.Errorf("%w: AddDay - failed to create day: %v", ErrInternal, err)
		}

		if _, err := s.bookingRepo.BumpReservationsVersion(txCtx, bookingID); err != nil {
			return fmt.Errorf("%w: AddDay - failed to bump version: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, s.txError("AddDay", bookingID, err)
	}

	resp := models.FromDomain(day)
	return &resp, nil
}

// UpdateDay заменяет города и активности дня, позиция дня не меняется
func (s *Service) UpdateDay(ctx context.Context, dayID int64, input *models.DayInput) (*models.DayResponse, error) {
	if dayID <= 0 {
		return nil, fmt.Errorf("%w: day id must be positive", ErrInvalidInput)
	}

	var changes domain.ItineraryDay
	if err := parseInput(input, &changes); err != nil {
		s.logger.Warn("UpdateDay: validation failed for day %d: %v", dayID, err)
		return nil, err
	}

	s.logger.Info("UpdateDay: day_id=%d, cities=%d", dayID, len(changes.Cities))

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		current, err := s.itineraryRepo.GetByID(txCtx, dayID)
		if err != nil {
			if errors.Is(err, itineraryRepo.ErrDayNotFound) {
				return ErrDayNotFound
			}
			return fmt.Errorf("%w: UpdateDay - repository error: %v", ErrInternal, err)
		}

		if err := s.checkBooking(txCtx, current.BookingID); err != nil {
			return err
		}

		changes.ID = current.ID
		changes.BookingID = current.BookingID
		changes.DayIndex = current.DayIndex

		if err := s.itineraryRepo.Update(txCtx, &changes); err != nil {
			if errors.Is(err, itineraryRepo.ErrDayNotFound) {
				return ErrDayNotFound
			}
			return fmt.Errorf("%w: UpdateDay - failed to update day: %v", ErrInternal, err)
		}

		if _, err := s.bookingRepo.BumpReservationsVersion(txCtx, current.BookingID); err != nil {
			return fmt.Errorf("%w: UpdateDay - failed to bump version: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, s.txError("UpdateDay", dayID, err)
	}

	resp := models.FromDomain(changes)
	return &resp, nil
}

func (s *Service) checkBooking(ctx context.Context, bookingID int64) error {
	if _, err := s.bookingRepo.GetByID(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}
	return nil
}

func (s *Service) txError(op string, id int64, err error) error {
	switch {
	case errors.Is(err, ErrBookingNotFound),
		errors.Is(err, ErrDayNotFound),
		errors.Is(err, ErrTooManyDays):
		s.logger.Warn("%s: id=%d: %v", op, id, err)
		return err
	case txmanager.IsConflict(err):
		s.logger.Warn("%s: id=%d: %v", op, id, err)
		return ErrConcurrentModification
	case errors.Is(err, ErrInternal):
		s.logger.Error("%s: id=%d: %v", op, id, err)
		return err
	default:
		s.logger.Error("%s: transaction failed for id=%d: %v", op, id, err)
		return fmt.Errorf("%w: %s - transaction failed: %v", ErrInternal, op, err)
	}
}
