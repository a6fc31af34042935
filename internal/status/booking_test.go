package status

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-TourBackoffice/internal/domain"
	"github.com/m04kA/SMC-TourBackoffice/pkg/ptr"
)

func TestForBooking(t *testing.T) {
	booking := &domain.Booking{
		ID:        7,
		Reference: "EG-7",
		TripStart: ptr.Ptr(date("2024-03-01")),
		TripEnd:   ptr.Ptr(date("2024-03-04")),
	}
	reservations := []domain.ReservationStub{
		stay(cairo, "2024-03-01", "2024-03-03", true),
		stay(luxor, "2024-03-03", "2024-03-04", true),
	}

	complete := ForBooking(booking, reservations, []domain.FlightLeg{
		leg("MS051", "2024-03-03", true),
		leg("MS052", "2024-03-04", true),
	})
	assert.Equal(t, domain.GradeSuccess, complete.ReservationGrade)
	assert.Equal(t, domain.GradeSuccess, complete.FlightGrade)
	assert.Equal(t, domain.GradeSuccess, complete.Overall)
	assert.Equal(t, 2, complete.ReservationsCount)
	assert.Equal(t, "EG-7", complete.Reference)

	noFlights := ForBooking(booking, reservations, nil)
	assert.Equal(t, domain.GradeSuccess, noFlights.ReservationGrade)
	assert.Equal(t, domain.GradeDanger, noFlights.FlightGrade)
	assert.Equal(t, domain.GradeDanger, noFlights.Overall)
}

func TestForBooking_UnknownTripEnd(t *testing.T) {
	booking := &domain.Booking{ID: 7, TripStart: ptr.Ptr(date("2024-03-01")), ExpectedFlightLegs: 1}

	st := ForBooking(booking, []domain.ReservationStub{stay(cairo, "2024-03-01", "2024-03-03", true)},
		[]domain.FlightLeg{leg("MS051", "2024-03-03", true)})

	assert.Equal(t, domain.GradeWarning, st.ReservationGrade)
	assert.Equal(t, domain.GradeSuccess, st.FlightGrade)
	assert.Equal(t, domain.GradeWarning, st.Overall)
}
