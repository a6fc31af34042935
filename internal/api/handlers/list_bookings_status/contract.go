package list_bookings_status

import (
	"context"

	listBookingsStatus "github.com/m04kA/SMC-TourBackoffice/internal/usecase/list_bookings_status"
)

type ListBookingsStatusUseCase interface {
	Execute(ctx context.Context, req *listBookingsStatus.Request) (*listBookingsStatus.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
