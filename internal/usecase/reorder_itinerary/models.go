package reorder_itinerary

import (
	"github.com/m04kA/SMC-TourBackoffice/internal/domain"
	"github.com/m04kA/SMC-TourBackoffice/internal/usecase/propose_regeneration"
)

// Request результат перетаскивания дней в UI
type Request struct {
	BookingID int64
	DayIDs    []int64 // новый порядок дней (ID всех дней бронирования)
	Propose   bool    // сразу рассчитать предложение перегенерации
}

// Response маршрут с новыми индексами
type Response struct {
	Days []domain.ItineraryDay
	// Предложение (если запрошено и маршрут позволяет расчет)
	Proposal *propose_regeneration.Response
	// Причина, по которой предложение не рассчитано
	ProposalSkipped string
}
