package list_bookings_status

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourBackoffice/internal/domain"
	listBookingsStatus "github.com/m04kA/SMC-TourBackoffice/internal/usecase/list_bookings_status"
)

type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) Execute(ctx context.Context, req *listBookingsStatus.Request) (*listBookingsStatus.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listBookingsStatus.Response), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func get(uc *MockUseCase, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestHandler_PassesWindow(t *testing.T) {
	uc := &MockUseCase{}
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *listBookingsStatus.Request) bool {
		return req.From != nil && req.From.Equal(from) && req.To != nil && req.To.Equal(to)
	})).Return(&listBookingsStatus.Response{
		From: from,
		To:   to,
		Rows: []domain.BookingStatus{
			{BookingID: 7, Reference: "EG-7", Overall: domain.GradeSuccess},
		},
	}, nil)

	w := get(uc, "/bookings/status?from=2024-03-01&to=2024-03-31")

	require.Equal(t, http.StatusOK, w.Code)

	var body ListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "2024-03-01", body.From)
	assert.Equal(t, 1, body.Total)
	assert.Equal(t, "success", body.Rows[0].Overall)
	assert.Nil(t, body.Rows[0].TripStart)
}

func TestHandler_NoBounds(t *testing.T) {
	uc := &MockUseCase{}
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	uc.On("Execute", mock.Anything, &listBookingsStatus.Request{}).Return(&listBookingsStatus.Response{
		From: now, To: now.AddDate(0, 0, 31), Rows: []domain.BookingStatus{},
	}, nil)

	w := get(uc, "/bookings/status")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"rows":[]`)
}

func TestHandler_BadRequests(t *testing.T) {
	tests := []struct {
		name   string
		target string
		ucErr  error
	}{
		{"bad from", "/bookings/status?from=01.03.2024", nil},
		{"bad to", "/bookings/status?to=2024-13-01", nil},
		{"window rejected", "/bookings/status?from=2024-03-31&to=2024-03-01", listBookingsStatus.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &MockUseCase{}
			if tt.ucErr != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.ucErr)
			}

			w := get(uc, tt.target)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHandler_InternalError(t *testing.T) {
	uc := &MockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	assert.Equal(t, http.StatusInternalServerError, get(uc, "/bookings/status").Code)
}
