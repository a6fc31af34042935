package reorder_itinerary

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourBackoffice/internal/domain"
	proposeRegeneration "github.com/m04kA/SMC-TourBackoffice/internal/usecase/propose_regeneration"
	reorderItinerary "github.com/m04kA/SMC-TourBackoffice/internal/usecase/reorder_itinerary"
)

type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) Execute(ctx context.Context, req *reorderItinerary.Request) (*reorderItinerary.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reorderItinerary.Response), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(uc *MockUseCase, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/bookings/{bookingId}/itinerary/order", NewHandler(uc, nopLogger{}).Handle).Methods(http.MethodPut)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/bookings/7/itinerary/order", strings.NewReader(body)))
	return w
}

var (
	cairo = domain.City{ID: 1, Name: "Cairo"}
	luxor = domain.City{ID: 2, Name: "Luxor"}
)

func TestHandler_ReorderWithProposal(t *testing.T) {
	uc := &MockUseCase{}

	uc.On("Execute", mock.Anything, &reorderItinerary.Request{BookingID: 7, DayIDs: []int64{11, 10}, Propose: true}).
		Return(&reorderItinerary.Response{
			Days: []domain.ItineraryDay{
				{ID: 11, BookingID: 7, DayIndex: 0, Cities: []domain.City{luxor}},
				{ID: 10, BookingID: 7, DayIndex: 1, Cities: []domain.City{cairo}},
			},
			Proposal: &proposeRegeneration.Response{
				ProposalID: "p-1",
				BookingID:  7,
				ExpiresAt:  time.Date(2024, 2, 10, 9, 15, 0, 0, time.UTC),
			},
		}, nil)

	w := serve(uc, `{"dayIds":[11,10],"propose":true}`)

	require.Equal(t, http.StatusOK, w.Code)

	var body ReorderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Days, 2)
	assert.Equal(t, int64(11), body.Days[0].ID)
	assert.Equal(t, 0, body.Days[0].DayIndex)
	require.NotNil(t, body.Proposal)
	assert.Equal(t, "p-1", body.Proposal.ProposalID)
	assert.Empty(t, body.ProposalSkipped)
}

func TestHandler_ProposalSkipped(t *testing.T) {
	uc := &MockUseCase{}

	uc.On("Execute", mock.Anything, mock.Anything).Return(&reorderItinerary.Response{
		Days:            []domain.ItineraryDay{{ID: 10, BookingID: 7, Cities: []domain.City{cairo}}},
		ProposalSkipped: "trip start date is not set",
	}, nil)

	w := serve(uc, `{"dayIds":[10],"propose":true}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `"proposal":`)
	assert.Contains(t, w.Body.String(), `"proposalSkipped":"trip start date is not set"`)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"booking not found", reorderItinerary.ErrBookingNotFound, http.StatusNotFound},
		{"invalid order", reorderItinerary.ErrInvalidOrder, http.StatusBadRequest},
		{"concurrent modification", reorderItinerary.ErrConcurrentModification, http.StatusConflict},
		{"internal", errors.New("deadlock"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &MockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			assert.Equal(t, tt.code, serve(uc, `{"dayIds":[10]}`).Code)
		})
	}
}

func TestHandler_InvalidBody(t *testing.T) {
	uc := &MockUseCase{}

	assert.Equal(t, http.StatusBadRequest, serve(uc, `{"dayIds":"10"}`).Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}
