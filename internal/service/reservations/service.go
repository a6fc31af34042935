package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TourBackoffice/internal/domain"
	"github.com/m04kA/SMC-TourBackoffice/internal/infra/events"
	bookingRepo "github.com/m04kA/SMC-TourBackoffice/internal/infra/storage/booking"
	reservationRepo "github.com/m04kA/SMC-TourBackoffice/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-TourBackoffice/internal/service/reservations/models"
	"github.com/m04kA/SMC-TourBackoffice/pkg/txmanager"
)

// Service ручное ведение размещений: по одному, без автоматического удаления
type Service struct {
	bookingRepo     BookingRepository
	reservationRepo ReservationRepository
	txManager       TransactionManager
	publisher       EventPublisher
	now             func() time.Time
	logger          Logger
}

// NewService создает новый сервис размещений
func NewService(
	bookingRepo BookingRepository,
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:     bookingRepo,
		reservationRepo: reservationRepo,
		txManager:       txManager,
		publisher:       publisher,
		now:             time.Now,
		logger:          logger,
	}
}

// List возвращает размещения бронирования, отсортированные по дате заезда и городу
func (s *Service) List(ctx context.Context, bookingID int64) (*models.ReservationListResponse, error) {
	if bookingID <= 0 {
		return nil, fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}

	s.logger.Info("List: booking_id=%d", bookingID)

	if _, err := s.getBooking(ctx, bookingID); err != nil {
		return nil, err
	}

	list, err := s.reservationRepo.ListByBooking(ctx, bookingID)
	if err != nil {
		s.logger.Error("List: failed to list reservations for booking %d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	sortReservations(list)
	return models.FromDomainList(bookingID, list), nil
}

// Add добавляет размещение вручную.
// Размещение не должно пересекаться по датам с существующими.
func (s *Service) Add(ctx context.Context, bookingID int64, input *models.ReservationInput) (*models.ReservationListResponse, error) {
	if bookingID <= 0 {
		return nil, fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}

	candidate := domain.ReservationStub{BookingID: bookingID}
	if err := parseInput(input, &candidate); err != nil {
		s.logger.Warn("Add: validation failed for booking %d: %v", bookingID, err)
		return nil, err
	}

	s.logger.Info("Add: booking_id=%d, city=%s, %s", bookingID, candidate.City.Name, candidate.Interval())

	var (
		list    []domain.ReservationStub
		version int64
	)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if _, err := s.getBooking(txCtx, bookingID); err != nil {
			return err
		}

		existing, err := s.reservationRepo.ListByBooking(txCtx, bookingID)
		if err != nil {
			return fmt.Errorf("%w: Add - repository error: %v", ErrInternal, err)
		}

		if other, ok := findOverlap(existing, candidate, 0); ok {
			return fmt.Errorf("%w: %s in %s overlaps reservation %d (%s)",
				ErrOverlap, candidate.Interval(), candidate.City.Name, other.ID, other.Interval())
		}

		created, err := s.reservationRepo.Create(txCtx, &candidate)
		if err != nil {
			return fmt.Errorf("%w: Add - failed to create reservation: %v", ErrInternal, err)
		}

		version, err = s.bookingRepo.BumpReservationsVersion(txCtx, bookingID)
		if err != nil {
			return fmt.Errorf("%w: Add - failed to bump version: %v", ErrInternal, err)
		}

		list = append(existing, *created)
		return nil
	})
	if err != nil {
		return nil, s.txError("Add", bookingID, err)
	}

	sortReservations(list)
	s.publish(ctx, "Add", bookingID, len(list), version)

	return models.FromDomainList(bookingID, list), nil
}

// Update редактирует размещение: отели, питание, валюту, цены и даты
func (s *Service) Update(ctx context.Context, reservationID int64, input *models.ReservationInput) (*models.ReservationResponse, error) {
	if reservationID <= 0 {
		return nil, fmt.Errorf("%w: reservation id must be positive", ErrInvalidInput)
	}

	var changes domain.ReservationStub
	if err := parseInput(input, &changes); err != nil {
		s.logger.Warn("Update: validation failed for reservation %d: %v", reservationID, err)
		return nil, err
	}

	s.logger.Info("Update: reservation_id=%d", reservationID)

	var (
		updated domain.ReservationStub
		count   int
		version int64
	)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		current, err := s.reservationRepo.GetByID(txCtx, reservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		if _, err := s.getBooking(txCtx, current.BookingID); err != nil {
			return err
		}

		existing, err := s.reservationRepo.ListByBooking(txCtx, current.BookingID)
		if err != nil {
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		changes.ID = current.ID
		changes.BookingID = current.BookingID
		changes.CreatedAt = current.CreatedAt

		if other, ok := findOverlap(existing, changes, current.ID); ok {
			return fmt.Errorf("%w: %s in %s overlaps reservation %d (%s)",
				ErrOverlap, changes.Interval(), changes.City.Name, other.ID, other.Interval())
		}

		if err := s.reservationRepo.Update(txCtx, &changes); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: Update - failed to update reservation: %v", ErrInternal, err)
		}

		version, err = s.bookingRepo.BumpReservationsVersion(txCtx, current.BookingID)
		if err != nil {
			return fmt.Errorf("%w: Update - failed to bump version: %v", ErrInternal, err)
		}

		updated = changes
		count = len(existing)
		return nil
	})
	if err != nil {
		return nil, s.txError("Update", reservationID, err)
	}

	s.publish(ctx, "Update", updated.BookingID, count, version)

	resp := models.FromDomain(updated)
	return &resp, nil
}

func (s *Service) getBooking(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("booking %d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("failed to get booking %d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}
	return booking, nil
}

// txError приводит ошибку транзакции к ошибкам сервиса
func (s *Service) txError(op string, id int64, err error) error {
	switch {
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrOverlap),
		errors.Is(err, ErrBookingNotFound),
		errors.Is(err, ErrReservationNotFound):
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

func (s *Service) publish(ctx context.Context, op string, bookingID int64, count int, version int64) {
	event := events.Event{
		Type:              events.TypeReservationChanged,
		BookingID:         bookingID,
		ReservationsCount: count,
		Version:           version,
		OccurredAt:        s.now(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("%s: failed to publish event for booking id=%d: %v", op, bookingID, err)
	}
}
