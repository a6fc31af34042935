package proposal

import (
	"time"

	"github.com/m04kA/SMC-TourBackoffice/internal/domain"
)

// record формат хранения предложения в Redis
type record struct {
	ID                   string              `json:"id"`
	BookingID            int64               `json:"bookingId"`
	BaseVersion          int64               `json:"baseVersion"`
	Reservations         []reservationRecord `json:"reservations"`
	ExistingCount        int                 `json:"existingCount"`
	RequiresConfirmation bool                `json:"requiresConfirmation"`
	CreatedAt            time.Time           `json:"createdAt"`
	ExpiresAt            time.Time           `json:"expiresAt"`
}

type reservationRecord struct {
	CityID   int64     `json:"cityId"`
	CityName string    `json:"cityName"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

// Предложение содержит только заготовки: отели, питание и цены заполняются
// вручную уже после коммита, поэтому в Redis они не сохраняются.
func toRecord(p *domain.RegenerationProposal) record {
	reservations := make([]reservationRecord, len(p.Reservations))
	for i, r := range p.Reservations {
		reservations[i] = reservationRecord{
			CityID:   r.City.ID,
			CityName: r.City.Name,
			Start:    r.Start,
			End:      r.End,
		}
	}

	return record{
		ID:                   p.ID,
		BookingID:            p.BookingID,
		BaseVersion:          p.BaseVersion,
		Reservations:         reservations,
		ExistingCount:        p.ExistingCount,
		RequiresConfirmation: p.RequiresConfirmation,
		CreatedAt:            p.CreatedAt,
		ExpiresAt:            p.ExpiresAt,
	}
}

func (r record) toDomain() *domain.RegenerationProposal {
	reservations := make([]domain.ReservationStub, len(r.Reservations))
	for i, res := range r.Reservations {
		reservations[i] = domain.ReservationStub{
			BookingID: r.BookingID,
			City:      domain.City{ID: res.CityID, Name: res.CityName},
			Start:     res.Start.UTC(),
			End:       res.End.UTC(),
			Hotels:    []string{},
		}
	}

	return &domain.RegenerationProposal{
		ID:                   r.ID,
		BookingID:            r.BookingID,
		BaseVersion:          r.BaseVersion,
		Reservations:         reservations,
		ExistingCount:        r.ExistingCount,
		RequiresConfirmation: r.RequiresConfirmation,
		CreatedAt:            r.CreatedAt,
		ExpiresAt:            r.ExpiresAt,
	}
}
