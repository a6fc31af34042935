package reservations

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("reservations: booking not found")

	// ErrReservationNotFound возвращается, когда размещение не найдено
	ErrReservationNotFound = errors.New("reservations: reservation not found")

	// ErrOverlap возвращается, когда размещение пересекается по датам с другим размещением бронирования
	ErrOverlap = errors.New("reservations: reservation overlaps another stay")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reservations: invalid input data")

	// ErrConcurrentModification возвращается, когда параллельное изменение бронирования не дало завершить операцию
	ErrConcurrentModification = errors.New("reservations: booking was modified concurrently")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reservations: internal error")
)
