package propose_regeneration

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TourBackoffice/internal/api/handlers"
	proposeRegeneration "github.com/m04kA/SMC-TourBackoffice/internal/usecase/propose_regeneration"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgBookingNotFound  = "бронирование не найдено"
	msgNothingToDerive  = "не задана дата начала поездки или маршрут пуст"
	msgInvalidItinerary = "в маршруте есть дни без городов"
)

type Handler struct {
	useCase ProposeRegenerationUseCase
	logger  Logger
}

func NewHandler(useCase ProposeRegenerationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/reservations/proposals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("POST /bookings/{id}/reservations/proposals - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &proposeRegeneration.Request{BookingID: bookingID})
	if err != nil {
		switch {
		case errors.Is(err, proposeRegeneration.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/reservations/proposals - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, proposeRegeneration.ErrNothingToDerive):
			h.logger.Warn("POST /bookings/{id}/reservations/proposals - Nothing to derive: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgNothingToDerive)

		case errors.Is(err, proposeRegeneration.ErrInvalidItinerary):
			h.logger.Warn("POST /bookings/{id}/reservations/proposals - Invalid itinerary: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgInvalidItinerary)

		case errors.Is(err, proposeRegeneration.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		default:
			h.logger.Error("POST /bookings/{id}/reservations/proposals - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/reservations/proposals - Proposal created: booking_id=%d, proposal_id=%s, reservations=%d",
		bookingID, result.ProposalID, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
