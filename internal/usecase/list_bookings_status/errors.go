package list_bookings_status

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном окне дат
	ErrInvalidInput = errors.New("list_bookings_status: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("list_bookings_status: internal error")
)
