package list_itinerary_days

import (
	"context"

	"github.com/m04kA/SMC-TourBackoffice/internal/service/itinerary/models"
)

type ItineraryService interface {
	List(ctx context.Context, bookingID int64) (*models.DayListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
