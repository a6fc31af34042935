package propose_regeneration

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TourBackoffice/internal/derivation"
	"github.com/m04kA/SMC-TourBackoffice/internal/domain"
)

func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}
	return nil
}

// validateItinerary переводит ошибки движка в ошибки usecase
func validateItinerary(days []domain.ItineraryDay, tripStart *time.Time) error {
	err := derivation.Validate(days, tripStart)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, derivation.ErrMissingTripStart), errors.Is(err, derivation.ErrEmptyItinerary):
		return fmt.Errorf("%w: %v", ErrNothingToDerive, err)
	default:
		return fmt.Errorf("%w: %v", ErrInvalidItinerary, err)
	}
}
