package status

import (
	"github.com/m04kA/SMC-TourBackoffice/internal/domain"
	"github.com/m04kA/SMC-TourBackoffice/pkg/dateutil"
)

// ClassifyReservations grades hotel stays against the expected stay span.
//
// A zero span (trip dates unknown) can never be fully covered, so any stays
// grade at most Warning. Stays with no city or with Start >= End cover nothing.
func ClassifyReservations(reservations []domain.ReservationStub, span domain.DateSpan) domain.StatusGrade {
	return Classify(reservations, reservationCoverage(span))
}

func reservationCoverage(span domain.DateSpan) CoverageFunc[domain.ReservationStub] {
	return func(records []domain.ReservationStub) Coverage {
		intervals := make([]dateutil.Interval, 0, len(records))
		invalid := false
		for _, r := range records {
			if !r.IsValid() {
				invalid = true
				continue
			}
			intervals = append(intervals, r.Interval())
		}

		overlap := dateutil.HasOverlap(intervals)

		if span.Days <= 0 {
			return Coverage{Covered: len(intervals), Full: false, Overlap: overlap}
		}

		target := span.Interval()
		covered := dateutil.CoveredDays(intervals, target)

		return Coverage{
			Covered: covered,
			Full:    covered == target.Days() && !invalid,
			Overlap: overlap,
		}
	}
}
