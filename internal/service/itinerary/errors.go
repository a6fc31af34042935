package itinerary

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("itinerary: booking not found")

	// ErrDayNotFound возвращается, когда день маршрута не найден
	ErrDayNotFound = errors.New("itinerary: day not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("itinerary: invalid input data")

	// ErrTooManyDays возвращается, когда маршрут достиг максимальной длины
	ErrTooManyDays = errors.New("itinerary: too many days")

	// ErrConcurrentModification возвращается, когда параллельное изменение бронирования не дало завершить операцию
	ErrConcurrentModification = errors.New("itinerary: booking was modified concurrently")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("itinerary: internal error")
)
