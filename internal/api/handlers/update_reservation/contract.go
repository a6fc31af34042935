package update_reservation

import (
	"context"

	"github.com/m04kA/SMC-TourBackoffice/internal/service/reservations/models"
)

type ReservationService interface {
	Update(ctx context.Context, reservationID int64, input *models.ReservationInput) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
