package reorder_itinerary

import (
	"fmt"

	"github.com/m04kA/SMC-TourBackoffice/internal/domain"
)

func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}
	if len(req.DayIDs) == 0 {
		return fmt.Errorf("%w: day ids are required", ErrInvalidInput)
	}
	if len(req.DayIDs) > domain.MaxItineraryDays {
		return fmt.Errorf("%w: at most %d days", ErrInvalidInput, domain.MaxItineraryDays)
	}
	return nil
}
