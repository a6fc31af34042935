package list_bookings_status

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TourBackoffice/internal/api/handlers"
	listBookingsStatus "github.com/m04kA/SMC-TourBackoffice/internal/usecase/list_bookings_status"
	"github.com/m04kA/SMC-TourBackoffice/pkg/dateutil"
)

const (
	msgInvalidFrom   = "некорректный параметр from, ожидается YYYY-MM-DD"
	msgInvalidTo     = "некорректный параметр to, ожидается YYYY-MM-DD"
	msgInvalidWindow = "некорректный период: from позже to или период слишком длинный"
)

type Handler struct {
	useCase ListBookingsStatusUseCase
	logger  Logger
}

func NewHandler(useCase ListBookingsStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/status?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	from, err := parseDate(query.Get("from"))
	if err != nil {
		h.logger.Warn("GET /bookings/status - Invalid from: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFrom)
		return
	}

	to, err := parseDate(query.Get("to"))
	if err != nil {
		h.logger.Warn("GET /bookings/status - Invalid to: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTo)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &listBookingsStatus.Request{From: from, To: to})
	if err != nil {
		switch {
		case errors.Is(err, listBookingsStatus.ErrInvalidInput):
			h.logger.Warn("GET /bookings/status - Invalid window: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		default:
			h.logger.Error("GET /bookings/status - Failed: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/status - from=%s, to=%s, rows=%d",
		dateutil.Format(result.From), dateutil.Format(result.To), len(result.Rows))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
