package commit_regeneration

import "github.com/m04kA/SMC-TourBackoffice/internal/domain"

// Request запрос на применение предложения
type Request struct {
	BookingID  int64
	ProposalID string
	Confirmed  bool // пользователь подтвердил удаление существующих размещений
}

// Response сохраненный список размещений
type Response struct {
	BookingID    int64
	Reservations []domain.ReservationStub
	Discarded    int   // сколько размещений было удалено
	Version      int64 // новая версия списка
}

// Значения метки outcome для метрики перегенераций
const (
	outcomeCommitted = "committed"
	outcomeConflict  = "conflict"
	outcomeExpired   = "expired"
	outcomeRejected  = "rejected"
)
