package reorder_itinerary

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourBackoffice/internal/domain"
	"github.com/m04kA/SMC-TourBackoffice/internal/infra/events"
	bookingRepo "github.com/m04kA/SMC-TourBackoffice/internal/infra/storage/booking"
	"github.com/m04kA/SMC-TourBackoffice/internal/usecase/propose_regeneration"
	"github.com/m04kA/SMC-TourBackoffice/pkg/txmanager"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) BumpReservationsVersion(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type MockItineraryRepository struct {
	mock.Mock
}

func (m *MockItineraryRepository) ListByBooking(ctx context.Context, bookingID int64) ([]domain.ItineraryDay, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).([]domain.ItineraryDay), args.Error(1)
}

func (m *MockItineraryRepository) UpdateIndexes(ctx context.Context, bookingID int64, days []domain.ItineraryDay) error {
	args := m.Called(ctx, bookingID, days)
	return args.Error(0)
}

type MockProposer struct {
	mock.Mock
}

func (m *MockProposer) Execute(ctx context.Context, req *propose_regeneration.Request) (*propose_regeneration.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*propose_regeneration.Response), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, event events.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type inlineTx struct{}

func (inlineTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// conflictTx транзакция, которую так и не удалось провести из-за параллельных изменений
type conflictTx struct{}

func (conflictTx) DoSerializable(context.Context, func(ctx context.Context) error) error {
	return fmt.Errorf("%w: could not serialize access", txmanager.ErrSerialization)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	bookings  *MockBookingRepository
	itinerary *MockItineraryRepository
	proposer  *MockProposer
	publisher *MockPublisher
	uc        *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		bookings:  &MockBookingRepository{},
		itinerary: &MockItineraryRepository{},
		proposer:  &MockProposer{},
		publisher: &MockPublisher{},
	}
	f.uc = NewUseCase(f.bookings, f.itinerary, f.proposer, inlineTx{}, f.publisher, nopLogger{})
	return f
}

func currentDays() []domain.ItineraryDay {
	return []domain.ItineraryDay{
		{ID: 10, BookingID: 7, DayIndex: 0, Cities: []domain.City{{ID: 1, Name: "Cairo"}}},
		{ID: 11, BookingID: 7, DayIndex: 1, Cities: []domain.City{{ID: 2, Name: "Luxor"}}},
		{ID: 12, BookingID: 7, DayIndex: 2, Cities: []domain.City{{ID: 3, Name: "Aswan"}}},
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	f := newFixture()

	f.bookings.On("GetByID", mock.Anything, int64(7)).Return(&domain.Booking{ID: 7}, nil)
	f.itinerary.On("ListByBooking", mock.Anything, int64(7)).Return(currentDays(), nil)
	f.itinerary.On("UpdateIndexes", mock.Anything, int64(7), mock.MatchedBy(func(days []domain.ItineraryDay) bool {
		return len(days) == 3 &&
			days[0].ID == 12 && days[0].DayIndex == 0 &&
			days[1].ID == 10 && days[1].DayIndex == 1 &&
			days[2].ID == 11 && days[2].DayIndex == 2
	})).Return(nil).Once()
	f.bookings.On("BumpReservationsVersion", mock.Anything, int64(7)).Return(int64(5), nil).Once()
	f.publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e events.Event) bool {
		return e.Type == events.TypeItineraryReordered && e.BookingID == 7 && e.Version == 5
	})).Return(nil).Once()

	resp, err := f.uc.Execute(context.Background(), &Request{BookingID: 7, DayIDs: []int64{12, 10, 11}})
	require.NoError(t, err)

	require.Len(t, resp.Days, 3)
	assert.Equal(t, "Aswan", resp.Days[0].Cities[0].Name)
	assert.Nil(t, resp.Proposal)
	f.itinerary.AssertExpectations(t)
	f.bookings.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
	f.proposer.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestUseCase_Execute_WithProposal(t *testing.T) {
	f := newFixture()
	proposal := &propose_regeneration.Response{ProposalID: "p-1", BookingID: 7}

	f.bookings.On("GetByID", mock.Anything, int64(7)).Return(&domain.Booking{ID: 7}, nil)
	f.itinerary.On("ListByBooking", mock.Anything, int64(7)).Return(currentDays(), nil)
	f.itinerary.On("UpdateIndexes", mock.Anything, int64(7), mock.Anything).Return(nil)
	f.bookings.On("BumpReservationsVersion", mock.Anything, int64(7)).Return(int64(5), nil)
	f.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)
	f.proposer.On("Execute", mock.Anything, &propose_regeneration.Request{BookingID: 7}).Return(proposal, nil).Once()

	resp, err := f.uc.Execute(context.Background(), &Request{BookingID: 7, DayIDs: []int64{11, 10, 12}, Propose: true})
	require.NoError(t, err)
	assert.Equal(t, proposal, resp.Proposal)
	assert.Empty(t, resp.ProposalSkipped)
}

func TestUseCase_Execute_ProposalBlockedStillReorders(t *testing.T) {
	f := newFixture()

	f.bookings.On("GetByID", mock.Anything, int64(7)).Return(&domain.Booking{ID: 7}, nil)
	f.itinerary.On("ListByBooking", mock.Anything, int64(7)).Return(currentDays(), nil)
	f.itinerary.On("UpdateIndexes", mock.Anything, int64(7), mock.Anything).Return(nil)
	f.bookings.On("BumpReservationsVersion", mock.Anything, int64(7)).Return(int64(5), nil)
	f.publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down"))
	f.proposer.On("Execute", mock.Anything, mock.Anything).Return(nil, propose_regeneration.ErrNothingToDerive)

	resp, err := f.uc.Execute(context.Background(), &Request{BookingID: 7, DayIDs: []int64{11, 10, 12}, Propose: true})
	require.NoError(t, err)
	assert.Nil(t, resp.Proposal)
	assert.NotEmpty(t, resp.ProposalSkipped)
	assert.Len(t, resp.Days, 3)
}

func TestUseCase_Execute_InvalidOrder(t *testing.T) {
	orders := map[string][]int64{
		"missing day":   {10, 11},
		"duplicate day": {10, 10, 11},
		"foreign day":   {10, 11, 99},
	}

	for name, order := range orders {
		t.Run(name, func(t *testing.T) {
			f := newFixture()
			f.bookings.On("GetByID", mock.Anything, int64(7)).Return(&domain.Booking{ID: 7}, nil)
			f.itinerary.On("ListByBooking", mock.Anything, int64(7)).Return(currentDays(), nil)

			_, err := f.uc.Execute(context.Background(), &Request{BookingID: 7, DayIDs: order})
			assert.ErrorIs(t, err, ErrInvalidOrder)

			f.itinerary.AssertNotCalled(t, "UpdateIndexes", mock.Anything, mock.Anything, mock.Anything)
			f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
		})
	}
}

func TestUseCase_Execute_BookingNotFound(t *testing.T) {
	f := newFixture()
	f.bookings.On("GetByID", mock.Anything, int64(7)).Return(nil, bookingRepo.ErrBookingNotFound)

	_, err := f.uc.Execute(context.Background(), &Request{BookingID: 7, DayIDs: []int64{1}})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{BookingID: 7})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_Execute_ConcurrentModification(t *testing.T) {
	f := newFixture()
	f.uc.txManager = conflictTx{}

	_, err := f.uc.Execute(context.Background(), &Request{BookingID: 7, DayIDs: []int64{12, 10, 11}, Propose: true})

	assert.ErrorIs(t, err, ErrConcurrentModification)
	assert.NotErrorIs(t, err, ErrInternal)
	f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	f.proposer.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}
