package add_itinerary_day

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TourBackoffice/internal/api/handlers"
	"github.com/m04kA/SMC-TourBackoffice/internal/service/itinerary"
	"github.com/m04kA/SMC-TourBackoffice/internal/service/itinerary/models"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgBookingNotFound    = "бронирование не найдено"
	msgConcurrentChange   = "бронирование изменено параллельно, повторите запрос"
	msgTooManyDays        = "достигнута максимальная длина маршрута"
)

type Handler struct {
	service ItineraryService
	logger  Logger
}

func NewHandler(service ItineraryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/itinerary/days
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("POST /bookings/{id}/itinerary/days - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req models.DayInput
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/itinerary/days - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	day, err := h.service.AddDay(r.Context(), bookingID, &req)
	if err != nil {
		switch {
		case errors.Is(err, itinerary.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/itinerary/days - Validation failed: %v", err)
			handlers.RespondBadRequest(w, handlers.TrimSentinel(err, itinerary.ErrInvalidInput))

		case errors.Is(err, itinerary.ErrConcurrentModification):
			h.logger.Warn("POST /bookings/{id}/itinerary/days - Concurrent modification: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgConcurrentChange)

		case errors.Is(err, itinerary.ErrTooManyDays):
			h.logger.Warn("POST /bookings/{id}/itinerary/days - Too many days: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgTooManyDays)

		case errors.Is(err, itinerary.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/itinerary/days - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("POST /bookings/{id}/itinerary/days - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/itinerary/days - Day added: booking_id=%d, day_id=%d, day_index=%d",
		bookingID, day.ID, day.DayIndex)
	handlers.RespondJSON(w, http.StatusCreated, day)
}
