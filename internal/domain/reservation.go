package domain

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-TourBackoffice/pkg/dateutil"
)

// UnassignedBookingID is used for reservation stubs derived before the booking is persisted
const UnassignedBookingID int64 = 0

// ReservationStub represents one hotel stay, derived from an itinerary or added manually.
// Dates form a half-open interval [Start, End): End is the checkout date.
type ReservationStub struct {
	ID        int64
	BookingID int64
	City      City
	Start     time.Time
	End       time.Time

	// Operational data, filled in manually after derivation
	Hotels      []string
	Meal        *string
	Currency    *string
	TargetPrice *float64
	FinalPrice  *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval returns the stay as a date interval
func (r ReservationStub) Interval() dateutil.Interval {
	return dateutil.NewInterval(r.Start, r.End)
}

// Nights returns the number of nights of the stay
func (r ReservationStub) Nights() int {
	return r.Interval().Days()
}

// IsValid returns true if the stay has a city and Start < End
func (r ReservationStub) IsValid() bool {
	return r.City.ID > 0 && r.Start.Before(r.End)
}

// HasHotel returns true if at least one non-blank hotel name is set
func (r ReservationStub) HasHotel() bool {
	for _, h := range r.Hotels {
		if strings.TrimSpace(h) != "" {
			return true
		}
	}
	return false
}

// HasMeal returns true if the meal plan is set
func (r ReservationStub) HasMeal() bool {
	return r.Meal != nil && strings.TrimSpace(*r.Meal) != ""
}

// IsComplete returns true if every field required for dispatch is filled in
func (r ReservationStub) IsComplete() bool {
	return r.HasHotel() && r.HasMeal()
}
