package status

import (
	"strings"

	"github.com/m04kA/SMC-TourBackoffice/internal/domain"
	"github.com/m04kA/SMC-TourBackoffice/pkg/dateutil"
)

// ClassifyFlightLegs grades the domestic flight legs of a booking.
// expectedLegs <= 0 falls back to domain.DefaultExpectedFlightLegs.
// Two legs with the same flight number on the same date count once and mark an overlap.
func ClassifyFlightLegs(legs []domain.FlightLeg, expectedLegs int) domain.StatusGrade {
	if expectedLegs <= 0 {
		expectedLegs = domain.DefaultExpectedFlightLegs
	}
	return Classify(legs, flightCoverage(expectedLegs))
}

func flightCoverage(expected int) CoverageFunc[domain.FlightLeg] {
	return func(records []domain.FlightLeg) Coverage {
		seen := make(map[string]struct{}, len(records))
		distinct := 0
		duplicate := false

		for _, l := range records {
			key, ok := legKey(l)
			if !ok {
				distinct++
				continue
			}
			if _, dup := seen[key]; dup {
				duplicate = true
				continue
			}
			seen[key] = struct{}{}
			distinct++
		}

		return Coverage{
			Covered: distinct,
			Full:    distinct >= expected,
			Overlap: duplicate,
		}
	}
}

// legKey identifies a leg by flight number and date; ok is false when either is unset
func legKey(l domain.FlightLeg) (string, bool) {
	number := strings.ToUpper(strings.TrimSpace(l.FlightNumber))
	if number == "" || l.Date == nil {
		return "", false
	}
	return number + "@" + dateutil.Format(dateutil.DateOnly(*l.Date)), true
}
