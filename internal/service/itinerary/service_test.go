package itinerary

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourBackoffice/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TourBackoffice/internal/infra/storage/booking"
	itineraryRepo "github.com/m04kA/SMC-TourBackoffice/internal/infra/storage/itinerary"
	"github.com/m04kA/SMC-TourBackoffice/internal/service/itinerary/models"
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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ItineraryDay), args.Error(1)
}

func (m *MockItineraryRepository) GetByID(ctx context.Context, id int64) (*domain.ItineraryDay, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItineraryDay), args.Error(1)
}

func (m *MockItineraryRepository) Create(ctx context.Context, day *domain.ItineraryDay) (*domain.ItineraryDay, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItineraryDay), args.Error(1)
}

func (m *MockItineraryRepository) Update(ctx context.Context, day *domain.ItineraryDay) error {
	args := m.Called(ctx, day)
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

var (
	cairo = domain.City{ID: 1, Name: "Cairo"}
	luxor = domain.City{ID: 2, Name: "Luxor"}
)

func newService() (*Service, *MockBookingRepository, *MockItineraryRepository) {
	bookings := &MockBookingRepository{}
	days := &MockItineraryRepository{}
	return NewService(bookings, days, inlineTx{}, nopLogger{}), bookings, days
}

func dayInput(cities ...domain.City) *models.DayInput {
	in := &models.DayInput{Activities: []string{"Pyramids", "  "}}
	for _, c := range cities {
		in.Cities = append(in.Cities, models.CityDTO{ID: c.ID, Name: c.Name})
	}
	return in
}

func TestService_List(t *testing.T) {
	svc, bookings, days := newService()
	ctx := context.Background()

	bookings.On("GetByID", ctx, int64(7)).Return(&domain.Booking{ID: 7}, nil)
	days.On("ListByBooking", ctx, int64(7)).Return([]domain.ItineraryDay{
		{ID: 10, BookingID: 7, DayIndex: 0, Cities: []domain.City{cairo}},
		{ID: 11, BookingID: 7, DayIndex: 1, Cities: []domain.City{cairo, luxor}},
	}, nil)

	resp, err := svc.List(ctx, 7)

	require.NoError(t, err)
	require.Equal(t, 2, resp.Total)
	require.NotNil(t, resp.Days[1].OvernightCity)
	assert.Equal(t, "Luxor", resp.Days[1].OvernightCity.Name)
	assert.Equal(t, []string{}, resp.Days[0].Activities)
}

func TestService_AddDay_AppendsAtEnd(t *testing.T) {
	svc, bookings, days := newService()
	ctx := context.Background()

	bookings.On("GetByID", ctx, int64(7)).Return(&domain.Booking{ID: 7}, nil)
	days.On("ListByBooking", ctx, int64(7)).Return([]domain.ItineraryDay{
		{ID: 10, BookingID: 7, DayIndex: 0, Cities: []domain.City{cairo}},
		{ID: 11, BookingID: 7, DayIndex: 1, Cities: []domain.City{cairo}},
	}, nil)
	days.On("Create", ctx, mock.MatchedBy(func(d *domain.ItineraryDay) bool {
		return d.BookingID == 7 && d.DayIndex == 2 && len(d.Cities) == 2 && len(d.Activities) == 1
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.ItineraryDay).ID = 12
	}).Return(&domain.ItineraryDay{ID: 12}, nil)
	bookings.On("BumpReservationsVersion", ctx, int64(7)).Return(int64(5), nil)

	resp, err := svc.AddDay(ctx, 7, dayInput(cairo, luxor))

	require.NoError(t, err)
	assert.Equal(t, int64(12), resp.ID)
	assert.Equal(t, 2, resp.DayIndex)
	assert.Equal(t, []string{"Pyramids"}, resp.Activities)
	days.AssertExpectations(t)
	bookings.AssertExpectations(t)
}

func TestService_AddDay_RequiresCity(t *testing.T) {
	svc, bookings, _ := newService()

	_, err := svc.AddDay(context.Background(), 7, dayInput())

	assert.ErrorIs(t, err, ErrInvalidInput)
	bookings.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestService_AddDay_RejectsUnnamedCity(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.AddDay(context.Background(), 7, dayInput(domain.City{ID: 3, Name: " "}))

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_AddDay_TooManyDays(t *testing.T) {
	svc, bookings, days := newService()
	ctx := context.Background()

	full := make([]domain.ItineraryDay, domain.MaxItineraryDays)
	bookings.On("GetByID", ctx, int64(7)).Return(&domain.Booking{ID: 7}, nil)
	days.On("ListByBooking", ctx, int64(7)).Return(full, nil)

	_, err := svc.AddDay(ctx, 7, dayInput(cairo))

	assert.ErrorIs(t, err, ErrTooManyDays)
	days.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_AddDay_BookingNotFound(t *testing.T) {
	svc, bookings, _ := newService()
	ctx := context.Background()

	bookings.On("GetByID", ctx, int64(7)).Return(nil, bookingRepo.ErrBookingNotFound)

	_, err := svc.AddDay(ctx, 7, dayInput(cairo))

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_UpdateDay_KeepsIndex(t *testing.T) {
	svc, bookings, days := newService()
	ctx := context.Background()

	days.On("GetByID", ctx, int64(11)).Return(&domain.ItineraryDay{
		ID: 11, BookingID: 7, DayIndex: 1, Cities: []domain.City{cairo},
	}, nil)
	bookings.On("GetByID", ctx, int64(7)).Return(&domain.Booking{ID: 7}, nil)
	days.On("Update", ctx, mock.MatchedBy(func(d *domain.ItineraryDay) bool {
		return d.ID == 11 && d.DayIndex == 1 && d.Cities[0] == luxor
	})).Return(nil)
	bookings.On("BumpReservationsVersion", ctx, int64(7)).Return(int64(6), nil)

	resp, err := svc.UpdateDay(ctx, 11, dayInput(luxor))

	require.NoError(t, err)
	assert.Equal(t, 1, resp.DayIndex)
	assert.Equal(t, int64(7), resp.BookingID)
	bookings.AssertExpectations(t)
}

func TestService_UpdateDay_NotFound(t *testing.T) {
	svc, _, days := newService()
	ctx := context.Background()

	days.On("GetByID", ctx, int64(11)).Return(nil, itineraryRepo.ErrDayNotFound)

	_, err := svc.UpdateDay(ctx, 11, dayInput(cairo))

	assert.ErrorIs(t, err, ErrDayNotFound)
}

func TestService_UpdateDay_RequiresCity(t *testing.T) {
	svc, _, days := newService()

	_, err := svc.UpdateDay(context.Background(), 11, &models.DayInput{})

	assert.ErrorIs(t, err, ErrInvalidInput)
	days.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestService_UpdateDay_BumpFailure(t *testing.T) {
	svc, bookings, days := newService()
	ctx := context.Background()

	days.On("GetByID", ctx, int64(11)).Return(&domain.ItineraryDay{ID: 11, BookingID: 7}, nil)
	bookings.On("GetByID", ctx, int64(7)).Return(&domain.Booking{ID: 7}, nil)
	days.On("Update", ctx, mock.Anything).Return(nil)
	bookings.On("BumpReservationsVersion", ctx, int64(7)).Return(int64(0), errors.New("deadlock"))

	_, err := svc.UpdateDay(ctx, 11, dayInput(cairo))

	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_ConcurrentModification(t *testing.T) {
	_, bookings, days := newService()
	svc := NewService(bookings, days, conflictTx{}, nopLogger{})
	ctx := context.Background()

	_, err := svc.AddDay(ctx, 7, dayInput(cairo))
	assert.ErrorIs(t, err, ErrConcurrentModification)
	assert.NotErrorIs(t, err, ErrInternal)

	_, err = svc.UpdateDay(ctx, 10, dayInput(luxor))
	assert.ErrorIs(t, err, ErrConcurrentModification)
}
