package reorder_itinerary

import (
	proposeRegeneration "github.com/m04kA/SMC-TourBackoffice/internal/api/handlers/propose_regeneration"
	"github.com/m04kA/SMC-TourBackoffice/internal/service/itinerary/models"
	reorderItinerary "github.com/m04kA/SMC-TourBackoffice/internal/usecase/reorder_itinerary"
)

// ReorderRequest HTTP request model
type ReorderRequest struct {
	DayIDs  []int64 `json:"dayIds"`
	Propose bool    `json:"propose"`
}

// ReorderResponse HTTP response model
type ReorderResponse struct {
	Days            []models.DayResponse                  `json:"days"`
	Proposal        *proposeRegeneration.ProposalResponse `json:"proposal,omitempty"`
	ProposalSkipped string                                `json:"proposalSkipped,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(bookingID int64, resp *reorderItinerary.Response) *ReorderResponse {
	out := &ReorderResponse{
		Days:            models.FromDomainList(bookingID, resp.Days).Days,
		ProposalSkipped: resp.ProposalSkipped,
	}
	if resp.Proposal != nil {
		out.Proposal = proposeRegeneration.FromUseCaseResponse(resp.Proposal)
	}
	return out
}
