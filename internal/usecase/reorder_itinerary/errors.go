package reorder_itinerary

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("reorder_itinerary: booking not found")

	// ErrInvalidOrder возвращается, когда порядок не является перестановкой текущих дней
	ErrInvalidOrder = errors.New("reorder_itinerary: order must list every itinerary day exactly once")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reorder_itinerary: invalid input data")

	// ErrConcurrentModification возвращается, когда параллельное изменение бронирования не дало завершить операцию
	ErrConcurrentModification = errors.New("reorder_itinerary: booking was modified concurrently")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reorder_itinerary: internal error")
)
