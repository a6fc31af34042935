package list_bookings_status

import (
	"time"

	getBookingStatus "github.com/m04kA/SMC-TourBackoffice/internal/api/handlers/get_booking_status"
	listBookingsStatus "github.com/m04kA/SMC-TourBackoffice/internal/usecase/list_bookings_status"
	"github.com/m04kA/SMC-TourBackoffice/pkg/dateutil"
)

// ListResponse HTTP response model
type ListResponse struct {
	From  string                            `json:"from"`
	To    string                            `json:"to"`
	Rows  []getBookingStatus.StatusResponse `json:"rows"`
	Total int                               `json:"total"`
}

// parseDate разбирает необязательный параметр запроса
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := dateutil.Parse(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *listBookingsStatus.Response) *ListResponse {
	rows := make([]getBookingStatus.StatusResponse, len(resp.Rows))
	for i, s := range resp.Rows {
		rows[i] = getBookingStatus.FromDomainStatus(s)
	}
	return &ListResponse{
		From:  dateutil.Format(resp.From),
		To:    dateutil.Format(resp.To),
		Rows:  rows,
		Total: len(rows),
	}
}
