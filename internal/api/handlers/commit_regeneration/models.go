package commit_regeneration

import (
	"github.com/m04kA/SMC-TourBackoffice/internal/service/reservations/models"
	commitRegeneration "github.com/m04kA/SMC-TourBackoffice/internal/usecase/commit_regeneration"
)

// CommitRequest HTTP request model
type CommitRequest struct {
	Confirmed bool `json:"confirmed"`
}

// CommitResponse HTTP response model
type CommitResponse struct {
	BookingID    int64                        `json:"bookingId"`
	Reservations []models.ReservationResponse `json:"reservations"`
	Discarded    int                          `json:"discarded"`
	Version      int64                        `json:"version"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *commitRegeneration.Response) *CommitResponse {
	list := models.FromDomainList(resp.BookingID, resp.Reservations)
	return &CommitResponse{
		BookingID:    resp.BookingID,
		Reservations: list.Reservations,
		Discarded:    resp.Discarded,
		Version:      resp.Version,
	}
}
