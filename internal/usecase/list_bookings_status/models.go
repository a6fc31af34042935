package list_bookings_status

import (
	"time"

	"github.com/m04kA/SMC-TourBackoffice/internal/domain"
)

// Request окно дат начала поездки (обе границы включительно, опционально)
type Request struct {
	From *time.Time
	To   *time.Time
}

// Response строки сводной таблицы со статусами
type Response struct {
	From time.Time
	To   time.Time
	Rows []domain.BookingStatus
}
