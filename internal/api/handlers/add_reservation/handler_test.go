package add_reservation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourBackoffice/internal/api/handlers"
	"github.com/m04kA/SMC-TourBackoffice/internal/service/reservations"
	"github.com/m04kA/SMC-TourBackoffice/internal/service/reservations/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Add(ctx context.Context, bookingID int64, input *models.ReservationInput) (*models.ReservationListResponse, error) {
	args := m.Called(ctx, bookingID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReservationListResponse), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const body = `{"cityId":3,"cityName":"Aswan","startDate":"2024-03-03","endDate":"2024-03-05","hotels":["Old Cataract"],"meal":"BB"}`

func serve(svc *MockService, payload string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/bookings/{bookingId}/reservations", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodPost)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/bookings/7/reservations", strings.NewReader(payload)))
	return w
}

func TestHandler_Created(t *testing.T) {
	svc := &MockService{}
	svc.On("Add", mock.Anything, int64(7), mock.MatchedBy(func(in *models.ReservationInput) bool {
		return in.CityID == 3 && in.StartDate == "2024-03-03" && in.Meal != nil && *in.Meal == "BB"
	})).Return(&models.ReservationListResponse{BookingID: 7, Total: 1,
		Reservations: []models.ReservationResponse{{ID: 2, CityName: "Aswan"}}}, nil)

	w := serve(svc, body)

	assert.Equal(t, http.StatusCreated, w.Code)
	svc.AssertExpectations(t)
}

func TestHandler_ValidationMessage(t *testing.T) {
	svc := &MockService{}
	svc.On("Add", mock.Anything, int64(7), mock.Anything).
		Return(nil, fmt.Errorf("%w: startDate must be before endDate", reservations.ErrInvalidInput))

	w := serve(svc, body)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "startDate must be before endDate", resp.Message)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"booking not found", reservations.ErrBookingNotFound, http.StatusNotFound},
		{"overlap", fmt.Errorf("%w: details", reservations.ErrOverlap), http.StatusConflict},
		{"concurrent modification", reservations.ErrConcurrentModification, http.StatusConflict},
		{"internal", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockService{}
			svc.On("Add", mock.Anything, int64(7), mock.Anything).Return(nil, tt.err)

			assert.Equal(t, tt.code, serve(svc, body).Code)
		})
	}
}

func TestHandler_UnknownField(t *testing.T) {
	svc := &MockService{}

	assert.Equal(t, http.StatusBadRequest, serve(svc, `{"cityId":3,"hotel":"x"}`).Code)
	svc.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
}
