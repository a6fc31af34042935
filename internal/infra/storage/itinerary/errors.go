package itinerary

import "errors"

var (
	// ErrDayNotFound возвращается, когда день маршрута не найден
	ErrDayNotFound = errors.New("itinerary.repository: itinerary day not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("itinerary.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("itinerary.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("itinerary.repository: failed to scan row")

	// ErrCorruptedCities возвращается, когда массивы id и названий городов разной длины
	ErrCorruptedCities = errors.New("itinerary.repository: city ids and names differ in length")
)
