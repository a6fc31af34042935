package add_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TourBackoffice/internal/api/handlers"
	"github.com/m04kA/SMC-TourBackoffice/internal/service/reservations"
	"github.com/m04kA/SMC-TourBackoffice/internal/service/reservations/models"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgBookingNotFound    = "бронирование не найдено"
	msgConcurrentChange   = "бронирование изменено параллельно, повторите запрос"
	msgOverlap            = "размещение пересекается по датам с существующим"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("POST /bookings/{id}/reservations - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req models.ReservationInput
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	list, err := h.service.Add(r.Context(), bookingID, &req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/reservations - Validation failed: %v", err)
			handlers.RespondBadRequest(w, handlers.TrimSentinel(err, reservations.ErrInvalidInput))

		case errors.Is(err, reservations.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/reservations - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, reservations.ErrConcurrentModification):
			h.logger.Warn("POST /bookings/{id}/reservations - Concurrent modification: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgConcurrentChange)

		case errors.Is(err, reservations.ErrOverlap):
			h.logger.Warn("POST /bookings/{id}/reservations - Overlap: %v", err)
			handlers.RespondConflict(w, msgOverlap)

		default:
			h.logger.Error("POST /bookings/{id}/reservations - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/reservations - Reservation added: booking_id=%d, total=%d", bookingID, list.Total)
	handlers.RespondJSON(w, http.StatusCreated, list)
}
