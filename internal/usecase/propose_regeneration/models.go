package propose_regeneration

import (
	"time"

	"github.com/m04kA/SMC-TourBackoffice/internal/domain"
)

// Request запрос на расчет нового списка размещений
type Request struct {
	BookingID int64
}

// Response предложение перегенерации и текущий список, который будет заменен
type Response struct {
	ProposalID           string
	BookingID            int64
	BaseVersion          int64
	Reservations         []domain.ReservationStub // новый список (еще не сохранен)
	Existing             []domain.ReservationStub // текущий список, будет удален при коммите
	RequiresConfirmation bool                     // true, если коммит удалит существующие размещения
	ExpiresAt            time.Time
}
