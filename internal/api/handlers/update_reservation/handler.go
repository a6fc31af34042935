package update_reservation

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
	msgInvalidReservationID = "некорректный ID размещения"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgReservationNotFound  = "размещение не найдено"
	msgConcurrentChange     = "бронирование изменено параллельно, повторите запрос"
	msgOverlap              = "размещение пересекается по датам с существующим"
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

// Handle PUT /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil || reservationID <= 0 {
		h.logger.Warn("PUT /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req models.ReservationInput
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.Update(r.Context(), reservationID, &req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("PUT /reservations/{id} - Validation failed: %v", err)
			handlers.RespondBadRequest(w, handlers.TrimSentinel(err, reservations.ErrInvalidInput))

		case errors.Is(err, reservations.ErrReservationNotFound),
			errors.Is(err, reservations.ErrBookingNotFound):
			h.logger.Warn("PUT /reservations/{id} - Not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservations.ErrConcurrentModification):
			h.logger.Warn("PUT /reservations/{id} - Concurrent modification: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgConcurrentChange)

		case errors.Is(err, reservations.ErrOverlap):
			h.logger.Warn("PUT /reservations/{id} - Overlap: %v", err)
			handlers.RespondConflict(w, msgOverlap)

		default:
			h.logger.Error("PUT /reservations/{id} - Failed: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /reservations/{id} - Reservation updated: reservation_id=%d, complete=%t", reservationID, updated.Complete)
	handlers.RespondJSON(w, http.StatusOK, updated)
}
