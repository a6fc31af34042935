package reorder_itinerary

import (
	"context"

	reorderItinerary "github.com/m04kA/SMC-TourBackoffice/internal/usecase/reorder_itinerary"
)

type ReorderItineraryUseCase interface {
	Execute(ctx context.Context, req *reorderItinerary.Request) (*reorderItinerary.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
