package propose_regeneration

import (
	"time"

	"github.com/m04kA/SMC-TourBackoffice/internal/domain"
	"github.com/m04kA/SMC-TourBackoffice/internal/service/reservations/models"
	proposeRegeneration "github.com/m04kA/SMC-TourBackoffice/internal/usecase/propose_regeneration"
)

// ProposalResponse HTTP response model
type ProposalResponse struct {
	ProposalID           string                       `json:"proposalId"`
	BookingID            int64                        `json:"bookingId"`
	BaseVersion          int64                        `json:"baseVersion"`
	Reservations         []models.ReservationResponse `json:"reservations"`
	Existing             []models.ReservationResponse `json:"existing"`
	RequiresConfirmation bool                         `json:"requiresConfirmation"`
	ExpiresAt            string                       `json:"expiresAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *proposeRegeneration.Response) *ProposalResponse {
	return &ProposalResponse{
		ProposalID:           resp.ProposalID,
		BookingID:            resp.BookingID,
		BaseVersion:          resp.BaseVersion,
		Reservations:         toReservations(resp.Reservations),
		Existing:             toReservations(resp.Existing),
		RequiresConfirmation: resp.RequiresConfirmation,
		ExpiresAt:            resp.ExpiresAt.Format(time.RFC3339),
	}
}

func toReservations(list []domain.ReservationStub) []models.ReservationResponse {
	out := make([]models.ReservationResponse, len(list))
	for i, r := range list {
		out[i] = models.FromDomain(r)
	}
	return out
}
