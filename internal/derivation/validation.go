package derivation

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-TourBackoffice/internal/domain"
)

// Validate проверяет предусловия DeriveReservations.
// Сам движок на некорректном входе просто возвращает пустой список,
// Validate нужен вызывающему коду, чтобы заблокировать перегенерацию и объяснить причину.
func Validate(itinerary []domain.ItineraryDay, tripStart *time.Time) error {
	if tripStart == nil || tripStart.IsZero() {
		return ErrMissingTripStart
	}

	if len(itinerary) == 0 {
		return ErrEmptyItinerary
	}

	for i := range itinerary {
		if !itinerary[i].HasCities() {
			return fmt.Errorf("%w: day index %d", ErrDayWithoutCities, itinerary[i].DayIndex)
		}
		if i > 0 && itinerary[i].DayIndex <= itinerary[i-1].DayIndex {
			return fmt.Errorf("%w: day index %d after %d", ErrNotSorted, itinerary[i].DayIndex, itinerary[i-1].DayIndex)
		}
	}

	return nil
}
