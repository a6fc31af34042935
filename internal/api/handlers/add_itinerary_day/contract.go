package add_itinerary_day

import (
	"context"

	"github.com/m04kA/SMC-TourBackoffice/internal/service/itinerary/models"
)

type ItineraryService interface {
	AddDay(ctx context.Context, bookingID int64, input *models.DayInput) (*models.DayResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
