package reorder_itinerary

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TourBackoffice/internal/api/handlers"
	reorderItinerary "github.com/m04kA/SMC-TourBackoffice/internal/usecase/reorder_itinerary"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgBookingNotFound    = "бронирование не найдено"
	msgConcurrentChange   = "бронирование изменено параллельно, повторите запрос"
	msgInvalidOrder       = "новый порядок должен содержать каждый день маршрута ровно один раз"
)

type Handler struct {
	useCase ReorderItineraryUseCase
	logger  Logger
}

func NewHandler(useCase ReorderItineraryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}/itinerary/order
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("PUT /bookings/{id}/itinerary/order - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req ReorderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id}/itinerary/order - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &reorderItinerary.Request{
		BookingID: bookingID,
		DayIDs:    req.DayIDs,
		Propose:   req.Propose,
	})
	if err != nil {
		switch {
		case errors.Is(err, reorderItinerary.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id}/itinerary/order - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, reorderItinerary.ErrConcurrentModification):
			h.logger.Warn("PUT /bookings/{id}/itinerary/order - Concurrent modification: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgConcurrentChange)

		case errors.Is(err, reorderItinerary.ErrInvalidOrder),
			errors.Is(err, reorderItinerary.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/{id}/itinerary/order - Invalid order: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidOrder)

		default:
			h.logger.Error("PUT /bookings/{id}/itinerary/order - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id}/itinerary/order - Reordered: booking_id=%d, days=%d, proposal=%t",
		bookingID, len(result.Days), result.Proposal != nil)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(bookingID, result))
}
