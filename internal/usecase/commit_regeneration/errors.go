package commit_regeneration

import "errors"

var (
	// ErrProposalNotFound возвращается, когда предложение не найдено
	ErrProposalNotFound = errors.New("commit_regeneration: proposal not found")

	// ErrProposalExpired возвращается, когда срок жизни предложения истек
	ErrProposalExpired = errors.New("commit_regeneration: proposal expired")

	// ErrProposalMismatch возвращается, когда предложение относится к другому бронированию
	ErrProposalMismatch = errors.New("commit_regeneration: proposal belongs to another booking")

	// ErrConfirmationRequired возвращается, когда коммит удалит существующие размещения без подтверждения
	ErrConfirmationRequired = errors.New("commit_regeneration: confirmation required to discard existing reservations")

	// ErrConcurrentModification возвращается, когда список размещений изменился после расчета предложения
	ErrConcurrentModification = errors.New("commit_regeneration: reservations changed since the proposal was made")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("commit_regeneration: booking not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("commit_regeneration: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("commit_regeneration: internal error")
)
