package commit_regeneration

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TourBackoffice/internal/api/handlers"
	commitRegeneration "github.com/m04kA/SMC-TourBackoffice/internal/usecase/commit_regeneration"
)

const (
	msgInvalidBookingID       = "некорректный ID бронирования"
	msgInvalidProposalID      = "некорректный ID предложения"
	msgInvalidRequestBody     = "некорректное тело запроса"
	msgBookingNotFound        = "бронирование не найдено"
	msgProposalNotFound       = "предложение не найдено"
	msgProposalExpired        = "срок действия предложения истек, рассчитайте его заново"
	msgConfirmationRequired   = "существующие размещения будут удалены, требуется подтверждение"
	msgConcurrentModification = "размещения изменились после расчета предложения, рассчитайте его заново"
)

type Handler struct {
	useCase CommitRegenerationUseCase
	logger  Logger
}

func NewHandler(useCase CommitRegenerationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/reservations/proposals/{proposalId}/commit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("POST /proposals/{id}/commit - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req CommitRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /proposals/{id}/commit - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &commitRegeneration.Request{
		BookingID:  bookingID,
		ProposalID: vars["proposalId"],
		Confirmed:  req.Confirmed,
	})
	if err != nil {
		switch {
		case errors.Is(err, commitRegeneration.ErrInvalidInput):
			h.logger.Warn("POST /proposals/{id}/commit - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidProposalID)

		case errors.Is(err, commitRegeneration.ErrProposalNotFound),
			errors.Is(err, commitRegeneration.ErrProposalMismatch):
			h.logger.Warn("POST /proposals/{id}/commit - Proposal not found: booking_id=%d, proposal_id=%s", bookingID, vars["proposalId"])
			handlers.RespondNotFound(w, msgProposalNotFound)

		case errors.Is(err, commitRegeneration.ErrBookingNotFound):
			h.logger.Warn("POST /proposals/{id}/commit - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, commitRegeneration.ErrProposalExpired):
			h.logger.Warn("POST /proposals/{id}/commit - Proposal expired: proposal_id=%s", vars["proposalId"])
			handlers.RespondGone(w, msgProposalExpired)

		case errors.Is(err, commitRegeneration.ErrConfirmationRequired):
			h.logger.Warn("POST /proposals/{id}/commit - Confirmation required: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgConfirmationRequired)

		case errors.Is(err, commitRegeneration.ErrConcurrentModification):
			h.logger.Warn("POST /proposals/{id}/commit - Concurrent modification: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgConcurrentModification)

		default:
			h.logger.Error("POST /proposals/{id}/commit - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /proposals/{id}/commit - Reservations replaced: booking_id=%d, saved=%d, discarded=%d",
		bookingID, len(result.Reservations), result.Discarded)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
