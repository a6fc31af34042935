package update_itinerary_day

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
	msgInvalidDayID       = "некорректный ID дня маршрута"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgConcurrentChange   = "бронирование изменено параллельно, повторите запрос"
	msgDayNotFound        = "день маршрута не найден"
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

// Handle PUT /api/v1/itinerary/days/{dayId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dayID, err := strconv.ParseInt(mux.Vars(r)["dayId"], 10, 64)
	if err != nil || dayID <= 0 {
		h.logger.Warn("PUT /itinerary/days/{id} - Invalid day ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDayID)
		return
	}

	var req models.DayInput
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /itinerary/days/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	day, err := h.service.UpdateDay(r.Context(), dayID, &req)
	if err != nil {
		switch {
		case errors.Is(err, itinerary.ErrInvalidInput):
			h.logger.Warn("PUT /itinerary/days/{id} - Validation failed: %v", err)
			handlers.RespondBadRequest(w, handlers.TrimSentinel(err, itinerary.ErrInvalidInput))

		case errors.Is(err, itinerary.ErrConcurrentModification):
			h.logger.Warn("PUT /itinerary/days/{id} - Concurrent modification: day_id=%d", dayID)
			handlers.RespondConflict(w, msgConcurrentChange)

		case errors.Is(err, itinerary.ErrDayNotFound),
			errors.Is(err, itinerary.ErrBookingNotFound):
			h.logger.Warn("PUT /itinerary/days/{id} - Not found: day_id=%d", dayID)
			handlers.RespondNotFound(w, msgDayNotFound)

		default:
			h.logger.Error("PUT /itinerary/days/{id} - Failed: day_id=%d, error=%v", dayID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /itinerary/days/{id} - Day updated: day_id=%d, booking_id=%d", dayID, day.BookingID)
	handlers.RespondJSON(w, http.StatusOK, day)
}
