package get_booking_status

import (
	"context"

	getBookingStatus "github.com/m04kA/SMC-TourBackoffice/internal/usecase/get_booking_status"
)

type GetBookingStatusUseCase interface {
	Execute(ctx context.Context, req *getBookingStatus.Request) (*getBookingStatus.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
