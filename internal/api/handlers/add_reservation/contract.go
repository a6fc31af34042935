package add_reservation

import (
	"context"

	"github.com/m04kA/SMC-TourBackoffice/internal/service/reservations/models"
)

type ReservationService interface {
	Add(ctx context.Context, bookingID int64, input *models.ReservationInput) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
