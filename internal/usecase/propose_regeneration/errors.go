package propose_regeneration

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("propose_regeneration: booking not found")

	// ErrNothingToDerive возвращается, когда нет даты начала поездки или маршрут пуст
	ErrNothingToDerive = errors.New("propose_regeneration: nothing to derive")

	// ErrInvalidItinerary возвращается, когда в маршруте есть день без городов
	ErrInvalidItinerary = errors.New("propose_regeneration: invalid itinerary")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("propose_regeneration: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("propose_regeneration: internal error")
)
