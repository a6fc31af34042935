package list_itinerary_days

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TourBackoffice/internal/api/handlers"
	"github.com/m04kA/SMC-TourBackoffice/internal/service/itinerary"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgBookingNotFound  = "бронирование не найдено"
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

// Handle GET /api/v1/bookings/{bookingId}/itinerary/days
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("GET /bookings/{id}/itinerary/days - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	days, err := h.service.List(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, itinerary.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id}/itinerary/days - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("GET /bookings/{id}/itinerary/days - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{id}/itinerary/days - booking_id=%d, total=%d", bookingID, days.Total)
	handlers.RespondJSON(w, http.StatusOK, days)
}
