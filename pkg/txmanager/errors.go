package txmanager

import (
	"errors"

	"github.com/m04kA/SMC-TourBackoffice/pkg/dbmetrics"
)

var (
	// ErrTransaction возвращается при ошибках начала/фиксации транзакции
	ErrTransaction = errors.New("txmanager: transaction error")

	// ErrSerialization возвращается, когда транзакция так и не прошла из-за конкурентных изменений
	ErrSerialization = errors.New("txmanager: concurrent modification")
)

// IsConflict true, если транзакция не прошла из-за конкурентных изменений:
// после повторов (ErrSerialization) или сразу с ошибкой Postgres 40001/40P01
func IsConflict(err error) bool {
	return errors.Is(err, ErrSerialization) || dbmetrics.IsSerializationFailure(err)
}
