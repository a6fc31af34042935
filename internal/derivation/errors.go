package derivation

import "errors"

var (
	// ErrEmptyItinerary возвращается, когда в маршруте нет ни одного дня
	ErrEmptyItinerary = errors.New("derivation: itinerary is empty")

	// ErrMissingTripStart возвращается, когда не указана дата начала поездки
	ErrMissingTripStart = errors.New("derivation: trip start date is missing")

	// ErrDayWithoutCities возвращается, когда у дня маршрута нет ни одного города
	ErrDayWithoutCities = errors.New("derivation: itinerary day has no cities")

	// ErrNotSorted возвращается, когда дни маршрута не отсортированы по dayIndex
	ErrNotSorted = errors.New("derivation: itinerary is not sorted by day index")
)
